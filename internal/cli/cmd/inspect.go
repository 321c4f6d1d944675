package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/cli/styles"
)

var inspectFlags selectionFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect <value>...",
	Short: "Show how each value resolves and which variants are requested",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectFlags.register(inspectCmd, true)
}

func runInspect(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	// Unresolved values show up in the tree, no need for warnings.
	c, err := inspectFlags.collect(a, args, io.Discard)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewFontRenderer(a.Theme).RenderTree(c))
	return nil
}

