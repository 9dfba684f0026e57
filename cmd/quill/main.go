package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐ ┬ ┬┬┬  ┬
  │─┼┐│ │││  │
  └─┘└└─┘┴┴─┘┴─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "quill",
		Short: "UI template core tooling",
		Long: `Quill is a template core for server-driven UIs.

It compiles virtual node trees into flat template node tables and
manages element identity with recycled IDs. The CLI provides:

  • An inspect server exposing registry state over HTTP
  • A compile benchmark for template tables`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		inspectCmd(),
		benchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Quill ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
