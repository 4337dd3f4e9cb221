// Package parser is a line-oriented, case-insensitive-keyword reader that
// turns the WSP text instance format into a core.Instance, or rejects it
// outright with a categorized ParseError (or, for input that parses but
// fails core.NewInstance's structural validation, such as a repeated step
// in a pair, the core sentinel error wrapped with a "parser:" prefix).
// There is no partial-instance result -- either
// Parse returns a fully validated *core.Instance, or it returns nil and an
// error, mirroring lvlath/builder's "never panic, return sentinel errors"
// discipline applied to parsing instead of topology construction.
//
// Grammar (case-insensitive keywords, 1-based s<k>/u<k> tokens converted
// to 0-based before reaching package core):
//
//	#Steps: <int>
//	#Users: <int>
//	#Constraints: <int>
//	Authorisations u<i> (s<j>)*
//	Separation-of-duty s<i> s<j>
//	Binding-of-duty s<i> s<j>
//	At-most-k <k> (s<j>)+
//	One-team (s<j>)+ ( ( u<j>+ ) )+
//	Super-user-at-least <h> (s<j>)+ ( u<j>+ )
//	Wang-li (s<j>)+ ( ( u<j>+ ) )+
//	Assignment-dependent s<i> s<j> ( u<j>+ ) ( u<j>+ )
//
// Parentheses are always their own whitespace-separated tokens; a team or
// department list is "(" followed by one or more u<j> tokens followed by
// ")". The #Constraints header is read but the count is not enforced
// exactly against the constraints that follow; any line that fails to
// match one of the keywords above is rejected.
package parser
