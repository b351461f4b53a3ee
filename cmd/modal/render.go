package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/modal/internal/descriptor"
	"github.com/mark3labs/modal/internal/tui"
	"github.com/spf13/cobra"
)

var renderFlags struct {
	descriptorFlags
	tree  bool
	plain bool
}

var renderCmd = &cobra.Command{
	Use:   "render [descriptor.yml]",
	Short: "Print one frame of a dialog",
	Long: `Print one frame of a dialog without starting an interactive program.

Colors are downsampled to what the terminal supports. Use --plain for text
only, or --tree to print the accessibility tree instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderFlags.register(renderCmd)
	renderCmd.Flags().Bool("markdown", false, "Render the message as markdown")
	renderCmd.Flags().BoolVar(&renderFlags.tree, "tree", false, "Print the accessibility tree")
	renderCmd.Flags().BoolVar(&renderFlags.plain, "plain", false, "Strip colors and styles")
}

func runRender(cmd *cobra.Command, args []string) error {
	d, err := renderFlags.load(cmd, args)
	if err != nil {
		return err
	}

	noop := func() tea.Cmd { return nil }
	m, _, err := tui.NewDialog(d, cfg, noop, func(descriptor.Action) tea.Cmd { return nil })
	if err != nil {
		return err
	}
	m.Init()

	if renderFlags.tree {
		fmt.Fprint(cmd.OutOrStdout(), m.Tree().String())
		return nil
	}

	view := m.View()
	if renderFlags.plain {
		fmt.Fprintln(cmd.OutOrStdout(), ansi.Strip(view))
		return nil
	}

	w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
	_, err = fmt.Fprintln(w, view)
	return err
}
