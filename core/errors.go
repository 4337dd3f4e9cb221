// SPDX-License-Identifier: MIT
// Package: wsp/core
//
// errors.go — sentinel errors for the core package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context using %w wrapping at call sites.

package core

import "errors"

var (
	// ErrInvalidDimensions indicates numSteps or numUsers is non-positive.
	ErrInvalidDimensions = errors.New("core: numSteps and numUsers must be positive")

	// ErrAuthDimensionMismatch indicates the auth matrix shape does not
	// match numUsers x numSteps.
	ErrAuthDimensionMismatch = errors.New("core: auth matrix dimensions do not match numUsers/numSteps")

	// ErrStepOutOfRange indicates a constraint referenced a step id outside [0,numSteps).
	ErrStepOutOfRange = errors.New("core: step id out of range")

	// ErrUserOutOfRange indicates a constraint referenced a user id outside [0,numUsers).
	ErrUserOutOfRange = errors.New("core: user id out of range")

	// ErrDuplicateStep indicates a constraint repeated the same step id where
	// distinct steps are required (SoD/BoD pairs, AtMostK/OneTeam/SUAL/WangLi lists).
	ErrDuplicateStep = errors.New("core: duplicate step id in constraint")

	// ErrEmptyStepList indicates a constraint's step list has fewer entries
	// than its kind requires (AtMostK needs >= 2 steps; OneTeam/SUAL/WangLi
	// need >= 1).
	ErrEmptyStepList = errors.New("core: constraint step list too short")

	// ErrEmptyTeamList indicates OneTeam/WangLi was given zero teams/departments.
	ErrEmptyTeamList = errors.New("core: constraint team/department list is empty")

	// ErrBadK indicates AtMostK's k is smaller than 1.
	ErrBadK = errors.New("core: at-most-k requires k >= 1")
)
