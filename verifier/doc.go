// Package verifier is an independent, second, from-scratch check of a
// candidate Assignment against an Instance, for a caller validating a
// back-end's output. It never consults how the assignment was produced --
// only package constraint's per-family Verify and VerifyAuthorization
// functions, the same ones package solver's own Sat safety net calls
// (package backend's leaf check uses Verify alone).
package verifier
