// Package eid allocates stable element identifiers for live render
// instances.
//
// Identifier 0 is the reserved root identity: always alive, never
// handed out, never freed. All other identifiers are assigned from 1
// upward, reusing freed slots before growing the counter.
package eid
