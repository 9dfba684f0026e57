// Package inspect serves a read-only HTTP API over a template
// registry for debugging. It exposes the compiled template list,
// per-template node tables, and a WebSocket feed of compile events.
package inspect
