// Package quill provides the public API for the Quill template core.
//
// This is the recommended import for most applications:
//
//	import "github.com/quill-ui/quill"
//
// Usage:
//
//	rt := quill.New()
//	id, err := rt.Templates.Compile(ctx, "card",
//		el.Div(el.Class("card"), el.Span(el.DynText(0))))
//	eid := rt.Elements.Allocate()
package quill

import (
	"github.com/quill-ui/quill/pkg/eid"
	"github.com/quill-ui/quill/pkg/template"
	"github.com/quill-ui/quill/pkg/vdom"
)

// Version is the quill release version.
const Version = "0.1.0"

// =============================================================================
// Core types (re-exported from pkg/vdom and pkg/template)
// =============================================================================

// Node is a virtual tree node under construction.
type Node = vdom.Node

// Kind identifies a node's variant.
type Kind = vdom.Kind

// TemplateID identifies a compiled template within a Runtime.
type TemplateID = template.ID

// ElementID identifies a live element within a Runtime.
type ElementID = eid.ID

// RootElement is the ID of the always-alive root element.
const RootElement = eid.Root

// =============================================================================
// Runtime
// =============================================================================

// Runtime bundles the template registry and element allocator that
// together form one independent instance of the core. Instances do not
// share state: IDs from one Runtime are meaningless in another.
type Runtime struct {
	// Templates owns compiled templates.
	Templates *template.Registry

	// Elements allocates and recycles element IDs.
	Elements *eid.Allocator
}

// Option configures a Runtime.
type Option func(*runtimeConfig)

type runtimeConfig struct {
	registryOpts []template.Option
}

// WithRegistryOptions forwards options to the template registry.
func WithRegistryOptions(opts ...template.Option) Option {
	return func(c *runtimeConfig) {
		c.registryOpts = append(c.registryOpts, opts...)
	}
}

// New creates an independent Runtime.
func New(opts ...Option) *Runtime {
	var cfg runtimeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runtime{
		Templates: template.NewRegistry(cfg.registryOpts...),
		Elements:  eid.New(),
	}
}
