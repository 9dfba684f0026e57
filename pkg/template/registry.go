package template

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quill-ui/quill/internal/errors"
	"github.com/quill-ui/quill/pkg/vdom"
)

// Default tracer name for quill registries.
const defaultTracerName = "quill"

// Event describes one template registration, delivered to watchers.
type Event struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Nodes int    `json:"nodes"`
	Roots int    `json:"roots"`
}

// Info summarizes a registered template.
type Info struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Nodes int    `json:"nodes"`
	Roots int    `json:"roots"`
}

// Registry owns compiled templates for one runtime instance.
//
// The registry carries its own lock; it is the single point of mutual
// exclusion the runtime imposes over template state.
type Registry struct {
	mu        sync.RWMutex
	next      ID
	templates map[ID]*Template
	byName    map[string]ID

	validateSlots bool
	tracer        trace.Tracer
	metrics       *registryMetrics

	watchMu   sync.Mutex
	watchers  map[int]func(Event)
	nextWatch int
}

// Option configures a Registry.
type Option func(*Registry)

// WithSlotValidation makes Compile reject trees whose dynamic slot
// indices are not dense starting at 0.
func WithSlotValidation() Option {
	return func(r *Registry) {
		r.validateSlots = true
	}
}

// WithTracerName sets the OpenTelemetry tracer name (default "quill").
func WithTracerName(name string) Option {
	return func(r *Registry) {
		r.tracer = otel.Tracer(name)
	}
}

// NewRegistry creates an empty template registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		next:      1,
		templates: make(map[ID]*Template),
		byName:    make(map[string]ID),
		tracer:    otel.Tracer(defaultTracerName),
		watchers:  make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Compile flattens the supplied root trees into a template and
// registers it under a fresh ID.
//
// Compile consumes the roots: the trees are detached as part of the
// flatten and the handles must not be reused afterwards. The node
// table is pre-order with one shared index counter; root indices are
// recorded in supply order; dynamic slot indices pass through
// unchanged unless WithSlotValidation was set.
func (r *Registry) Compile(ctx context.Context, name string, roots ...*vdom.Node) (ID, error) {
	_, span := r.tracer.Start(ctx, "quill.template.compile",
		trace.WithAttributes(
			attribute.String("template.name", name),
			attribute.Int("template.roots", len(roots)),
		))
	defer span.End()

	if r.validateSlots {
		if err := validateSlots(roots); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return 0, err
		}
	}

	tpl, err := flatten(name, roots)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	for _, root := range roots {
		root.Release()
	}

	r.mu.Lock()
	id := r.next
	r.next++
	r.templates[id] = tpl
	if name != "" {
		r.byName[name] = id
	}
	r.mu.Unlock()

	span.SetAttributes(attribute.Int("template.nodes", tpl.NodeCount()))
	r.metrics.observeCompile(tpl)
	r.notify(Event{ID: id, Name: name, Nodes: tpl.NodeCount(), Roots: tpl.RootCount()})

	return id, nil
}

// Lookup returns the template registered under id.
func (r *Registry) Lookup(id ID) (*Template, error) {
	r.mu.RLock()
	tpl, ok := r.templates[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New("Q001")
	}
	return tpl, nil
}

// LookupName returns the ID last registered under name.
func (r *Registry) LookupName(name string) (ID, bool) {
	r.mu.RLock()
	id, ok := r.byName[name]
	r.mu.RUnlock()
	return id, ok
}

// NodeCount returns the node-table length of the template.
func (r *Registry) NodeCount(id ID) (int, error) {
	tpl, err := r.Lookup(id)
	if err != nil {
		return 0, err
	}
	return tpl.NodeCount(), nil
}

// RootCount returns the number of roots of the template.
func (r *Registry) RootCount(id ID) (int, error) {
	tpl, err := r.Lookup(id)
	if err != nil {
		return 0, err
	}
	return tpl.RootCount(), nil
}

// Node returns row idx of the template's node table.
func (r *Registry) Node(id ID, idx int) (Node, error) {
	tpl, err := r.Lookup(id)
	if err != nil {
		return Node{}, err
	}
	if idx < 0 || idx >= tpl.NodeCount() {
		return Node{}, errors.New("Q002")
	}
	return tpl.Node(idx), nil
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// List returns summaries of all registered templates in ID order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.templates))
	for id := ID(1); id < r.next; id++ {
		if tpl, ok := r.templates[id]; ok {
			out = append(out, Info{ID: id, Name: tpl.Name(), Nodes: tpl.NodeCount(), Roots: tpl.RootCount()})
		}
	}
	return out
}

// Watch registers fn to be called for every subsequent registration.
// The returned cancel function removes the watcher.
func (r *Registry) Watch(fn func(Event)) (cancel func()) {
	r.watchMu.Lock()
	key := r.nextWatch
	r.nextWatch++
	r.watchers[key] = fn
	r.watchMu.Unlock()

	return func() {
		r.watchMu.Lock()
		delete(r.watchers, key)
		r.watchMu.Unlock()
	}
}

func (r *Registry) notify(ev Event) {
	r.watchMu.Lock()
	fns := make([]func(Event), 0, len(r.watchers))
	for _, fn := range r.watchers {
		fns = append(fns, fn)
	}
	r.watchMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
