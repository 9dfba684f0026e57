package template

import (
	"context"
	"errors"
	"testing"

	qerrors "github.com/quill-ui/quill/internal/errors"
	"github.com/quill-ui/quill/pkg/vdom"
)

func compileOne(t *testing.T, name string, roots ...*vdom.Node) (*Registry, ID) {
	t.Helper()
	r := NewRegistry()
	id, err := r.Compile(context.Background(), name, roots...)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	return r, id
}

func TestCompileSingleTextRoot(t *testing.T) {
	r, id := compileOne(t, "title", vdom.Element("h1", vdom.Text("Title")))

	tpl, err := r.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if got := tpl.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	if got := tpl.RootCount(); got != 1 {
		t.Errorf("RootCount() = %d, want 1", got)
	}

	h1 := tpl.Node(0)
	if h1.Kind != vdom.KindElement || h1.Tag != "h1" {
		t.Errorf("node 0 = %+v, want h1 element", h1)
	}
	if len(h1.Children) != 1 || h1.Children[0] != 1 {
		t.Errorf("node 0 children = %v, want [1]", h1.Children)
	}

	text := tpl.Node(1)
	if text.Kind != vdom.KindText || text.Text != "Title" {
		t.Errorf("node 1 = %+v, want text %q", text, "Title")
	}
}

func TestCompilePreOrderIndices(t *testing.T) {
	// div[ span[text], button[dyn_text(0), dyn_attr(0)] ]
	tree := vdom.Element("div",
		vdom.Element("span", vdom.Text("inner")),
		vdom.Element("button", vdom.DynamicText(0), vdom.DynamicAttr(0)),
	)
	if got := tree.CountNodes(); got != 5 {
		t.Fatalf("CountNodes() = %d, want 5", got)
	}

	r, id := compileOne(t, "card", tree)
	tpl, _ := r.Lookup(id)

	if got := tpl.NodeCount(); got != 5 {
		t.Fatalf("NodeCount() = %d, want 5 (attrs are not table rows)", got)
	}

	wantKinds := []vdom.Kind{
		vdom.KindElement,     // 0: div
		vdom.KindElement,     // 1: span
		vdom.KindText,        // 2: "inner"
		vdom.KindElement,     // 3: button
		vdom.KindDynamicText, // 4: slot 0
	}
	for i, k := range wantKinds {
		if got := tpl.Node(i).Kind; got != k {
			t.Errorf("node %d kind = %v, want %v", i, got, k)
		}
	}

	div := tpl.Node(0)
	if len(div.Children) != 2 || div.Children[0] != 1 || div.Children[1] != 3 {
		t.Errorf("div children = %v, want [1 3]", div.Children)
	}

	button := tpl.Node(3)
	if len(button.Children) != 1 || button.Children[0] != 4 {
		t.Errorf("button children = %v, want [4]", button.Children)
	}
	if len(button.DynamicAttrSlots) != 1 || button.DynamicAttrSlots[0] != 0 {
		t.Errorf("button dynamic attr slots = %v, want [0]", button.DynamicAttrSlots)
	}
}

func TestCompileAttrsFoldInSourceOrder(t *testing.T) {
	tree := vdom.Element("input",
		vdom.StaticAttr("type", "text"),
		vdom.DynamicAttr(1),
		vdom.StaticAttr("placeholder", "name"),
		vdom.DynamicAttr(0),
	)

	r, id := compileOne(t, "field", tree)
	tpl, _ := r.Lookup(id)

	if got := tpl.NodeCount(); got != 1 {
		t.Fatalf("NodeCount() = %d, want 1", got)
	}
	input := tpl.Node(0)
	wantStatic := []Attr{{"type", "text"}, {"placeholder", "name"}}
	if len(input.StaticAttrs) != 2 {
		t.Fatalf("static attrs = %v", input.StaticAttrs)
	}
	for i, want := range wantStatic {
		if input.StaticAttrs[i] != want {
			t.Errorf("static attr %d = %v, want %v", i, input.StaticAttrs[i], want)
		}
	}
	if len(input.DynamicAttrSlots) != 2 || input.DynamicAttrSlots[0] != 1 || input.DynamicAttrSlots[1] != 0 {
		t.Errorf("dynamic attr slots = %v, want [1 0]", input.DynamicAttrSlots)
	}
}

func TestCompileMultiRoot(t *testing.T) {
	r, id := compileOne(t, "rows",
		vdom.Element("li", vdom.Text("one")),
		vdom.Element("li", vdom.Text("two")),
		vdom.Text("tail"),
	)
	tpl, _ := r.Lookup(id)

	if got := tpl.RootCount(); got != 3 {
		t.Errorf("RootCount() = %d, want 3", got)
	}
	if got := tpl.NodeCount(); got != 5 {
		t.Errorf("NodeCount() = %d, want 5", got)
	}
	roots := tpl.Roots()
	want := []int{0, 2, 4}
	for i, idx := range want {
		if roots[i] != idx {
			t.Errorf("roots[%d] = %d, want %d", i, roots[i], idx)
		}
	}
}

func TestCompileStructuralPreservation(t *testing.T) {
	trees := []*vdom.Node{
		vdom.Element("section",
			vdom.StaticAttr("class", "hero"),
			vdom.Element("h1", vdom.DynamicText(0)),
			vdom.DynamicNode(1),
		),
		vdom.Element("footer", vdom.Text("fin")),
	}
	var wantNodes uint
	for _, tr := range trees {
		wantNodes += tr.CountNodes()
	}

	r, id := compileOne(t, "page", trees...)
	tpl, _ := r.Lookup(id)
	if got := tpl.NodeCount(); uint(got) != wantNodes {
		t.Errorf("NodeCount() = %d, want %d", got, wantNodes)
	}
	if got := tpl.RootCount(); got != len(trees) {
		t.Errorf("RootCount() = %d, want %d", got, len(trees))
	}
}

func TestCompileSlotPassthrough(t *testing.T) {
	// Slots are not renumbered, even when sparse.
	r, id := compileOne(t, "sparse",
		vdom.Element("div", vdom.DynamicText(7), vdom.DynamicAttr(4)),
	)
	tpl, _ := r.Lookup(id)
	if got := tpl.Node(1).Slot; got != 7 {
		t.Errorf("dynamic text slot = %d, want 7", got)
	}
	if got := tpl.Node(0).DynamicAttrSlots[0]; got != 4 {
		t.Errorf("dynamic attr slot = %d, want 4", got)
	}
}

func TestCompileConsumesRoots(t *testing.T) {
	tree := vdom.Element("div", vdom.Element("span", vdom.Text("x")))
	compileOne(t, "consumed", tree)

	if got := tree.ItemCount(); got != 0 {
		t.Errorf("root ItemCount() after Compile = %d, want 0 (tree consumed)", got)
	}
}

func TestCompileRejectsAttrRoot(t *testing.T) {
	r := NewRegistry()
	_, err := r.Compile(context.Background(), "bad", vdom.StaticAttr("a", "b"))
	if err == nil {
		t.Fatal("Compile() with attribute root succeeded, want error")
	}
	var qe *qerrors.QuillError
	if !errors.As(err, &qe) || qe.Code != "Q021" {
		t.Errorf("error = %v, want Q021", err)
	}
}

func TestCompileSlotValidation(t *testing.T) {
	tests := []struct {
		name    string
		roots   []*vdom.Node
		wantErr bool
	}{
		{
			name: "dense node and attr slots",
			roots: []*vdom.Node{vdom.Element("div",
				vdom.DynamicText(0), vdom.DynamicNode(1), vdom.DynamicAttr(0),
			)},
			wantErr: false,
		},
		{
			name: "node and attr arrays are independent",
			roots: []*vdom.Node{vdom.Element("div",
				vdom.DynamicText(0), vdom.DynamicAttr(0),
			)},
			wantErr: false,
		},
		{
			name: "duplicate slot references allowed",
			roots: []*vdom.Node{vdom.Element("div",
				vdom.DynamicText(0), vdom.DynamicText(0), vdom.DynamicText(1),
			)},
			wantErr: false,
		},
		{
			name: "sparse node slots",
			roots: []*vdom.Node{vdom.Element("div",
				vdom.DynamicText(0), vdom.DynamicText(2),
			)},
			wantErr: true,
		},
		{
			name: "node slots not starting at zero",
			roots: []*vdom.Node{vdom.Element("div", vdom.DynamicNode(1))},
			wantErr: true,
		},
		{
			name: "sparse attr slots",
			roots: []*vdom.Node{vdom.Element("div",
				vdom.DynamicAttr(0), vdom.DynamicAttr(3),
			)},
			wantErr: true,
		},
		{
			name:    "no dynamic slots at all",
			roots:   []*vdom.Node{vdom.Element("div", vdom.Text("static"))},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(WithSlotValidation())
			_, err := r.Compile(context.Background(), "v", tt.roots...)
			if tt.wantErr {
				var qe *qerrors.QuillError
				if err == nil || !errors.As(err, &qe) || qe.Code != "Q020" {
					t.Errorf("Compile() error = %v, want Q020", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Compile() error = %v, want nil", err)
			}
		})
	}
}

func TestCompileEmptyCall(t *testing.T) {
	r, id := compileOne(t, "empty")
	tpl, _ := r.Lookup(id)
	if tpl.NodeCount() != 0 || tpl.RootCount() != 0 {
		t.Errorf("empty compile: nodes=%d roots=%d, want 0/0", tpl.NodeCount(), tpl.RootCount())
	}
}
