package archive

import (
	"context"
	"strconv"
	"time"

	"github.com/quill-ui/quill/pkg/template"
)

// Snapshot is a point-in-time export of a registry's templates.
type Snapshot struct {
	Project   string             `json:"project,omitempty"`
	TakenAt   time.Time          `json:"takenAt"`
	Templates []TemplateSnapshot `json:"templates"`
}

// TemplateSnapshot holds one template's full node table.
type TemplateSnapshot struct {
	ID    template.ID     `json:"id"`
	Name  string          `json:"name"`
	Roots []int           `json:"roots"`
	Nodes []template.Node `json:"nodes"`
}

// Store persists snapshots. Write returns the location the snapshot
// was written to: a file path for disk stores, an object key for S3.
type Store interface {
	Write(ctx context.Context, snap *Snapshot) (string, error)
}

// Capture builds a snapshot of every template in the registry.
func Capture(reg *template.Registry, project string) *Snapshot {
	infos := reg.List()
	snap := &Snapshot{
		Project:   project,
		TakenAt:   time.Now().UTC(),
		Templates: make([]TemplateSnapshot, 0, len(infos)),
	}
	for _, info := range infos {
		tpl, err := reg.Lookup(info.ID)
		if err != nil {
			// Removed between List and Lookup; skip.
			continue
		}
		ts := TemplateSnapshot{
			ID:    info.ID,
			Name:  tpl.Name(),
			Roots: tpl.Roots(),
			Nodes: make([]template.Node, tpl.NodeCount()),
		}
		for i := range ts.Nodes {
			ts.Nodes[i] = tpl.Node(i)
		}
		snap.Templates = append(snap.Templates, ts)
	}
	return snap
}

// Export captures the registry and writes it to store in one step.
func Export(ctx context.Context, reg *template.Registry, project string, store Store) (string, error) {
	return store.Write(ctx, Capture(reg, project))
}

// snapshotName derives a stable, sortable object name for a snapshot.
func snapshotName(snap *Snapshot) string {
	return "quill-" + snap.TakenAt.Format("20060102T150405Z") + ".json"
}

func sizeString(n int64) string {
	return strconv.FormatInt(n, 10) + " bytes"
}
