package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/cli/styles"
)

const suggestionLimit = 3

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <value>",
	Short: "Resolve a slug, family name or family URL to a catalog entry",
	Long: `Resolve a single font reference and show the matched catalog entry.

When nothing matches, the closest families are suggested and the command
exits with an error.`,
	Example: `  fontpicker resolve roboto
  fontpicker resolve "Open Sans"
  fontpicker resolve https://fonts.bunny.net/family/fira-code --json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the entry as JSON")
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := styles.NewFontRenderer(a.Theme)
	value := args[0]

	sel := a.Fonts.Select(a.Ctx(), value)
	if !sel.IsValid() {
		suggestions := a.Fonts.SearchFonts(a.Ctx(), value, suggestionLimit)
		fmt.Fprintln(out, renderer.RenderMiss(value, suggestions))
		return fmt.Errorf("no family matches %q", value)
	}

	if resolveJSON {
		data, err := json.MarshalIndent(sel.Entry(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode entry: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderResolved(value, sel.Entry(), a.Store.Source()))
	return nil
}
