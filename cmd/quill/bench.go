package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quill-ui/quill/pkg/archive"
	"github.com/quill-ui/quill/pkg/template"
	"github.com/quill-ui/quill/pkg/vdom"
)

func benchCmd() *cobra.Command {
	var (
		count    int
		width    int
		depth    int
		snapshot bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark template compilation",
		Long: `Compile synthetic templates and report throughput.

Each template is a tree of the given depth where every element has
the given number of children, half static text and half dynamic.

Examples:
  quill bench
  quill bench --count=10000 --width=8 --depth=4
  quill bench --snapshot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(count, width, depth, snapshot)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1000, "Number of templates to compile")
	cmd.Flags().IntVarP(&width, "width", "w", 4, "Children per element")
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "Tree depth")
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "Export the compiled registry to the configured archive dir")

	return cmd
}

func runBench(count, width, depth int, snapshot bool) error {
	reg := template.NewRegistry()
	ctx := context.Background()

	printBanner()
	info("bench")
	info(fmt.Sprintf("count=%d width=%d depth=%d", count, width, depth))
	fmt.Println()

	var nodes int
	start := time.Now()
	for i := 0; i < count; i++ {
		id, err := reg.Compile(ctx, fmt.Sprintf("bench-%d", i), benchTree(width, depth))
		if err != nil {
			return err
		}
		n, err := reg.NodeCount(id)
		if err != nil {
			return err
		}
		nodes += n
	}
	elapsed := time.Since(start)

	perTemplate := elapsed / time.Duration(count)
	info(fmt.Sprintf("compiled %d templates (%d nodes) in %s", count, nodes, elapsed.Round(time.Millisecond)))
	info(fmt.Sprintf("%.0f templates/sec, %s/template", float64(count)/elapsed.Seconds(), perTemplate))
	fmt.Println()

	if snapshot {
		cfg := loadConfigOrDefault()
		store, err := archive.NewDiskStore(cfg.ArchiveDir(), 0)
		if err != nil {
			return err
		}
		path, err := archive.Export(ctx, reg, cfg.Name, store)
		if err != nil {
			return err
		}
		info("snapshot written to " + path)
		fmt.Println()
	}
	return nil
}

// benchTree builds a uniform tree: elements down to the given depth,
// leaves alternating between static and dynamic text.
func benchTree(width, depth int) *vdom.Node {
	if depth <= 0 {
		return vdom.Text("leaf")
	}
	root := vdom.Element("div", vdom.StaticAttr("class", "bench"))
	for i := 0; i < width; i++ {
		if depth == 1 {
			if i%2 == 0 {
				root.AddItem(vdom.Text("leaf"))
			} else {
				root.AddItem(vdom.DynamicText(uint(i / 2)))
			}
			continue
		}
		root.AddItem(benchTree(width, depth-1))
	}
	return root
}
