// Package errors provides structured, coded errors for quill.
//
// Each error carries a unique code (e.g. "Q001") mapping to a short
// message, a detailed explanation, and a documentation URL, plus an
// optional fix suggestion and wrapped cause.
//
// Usage:
//
//	err := errors.New("Q020").
//	    WithDetail("slot 3 declared but slots 0..1 in use").
//	    WithSuggestion("Number dynamic slots densely starting at 0")
package errors
