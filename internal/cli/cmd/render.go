package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	renderFlags        selectionFlags
	renderNoPreconnect bool
	renderOnlyLink     bool
	renderOnlyVars     bool
)

var renderCmd = &cobra.Command{
	Use:   "render <value>...",
	Short: "Render <link> tags and CSS variables for one or more families",
	Long: `Render the markup for a set of families: preconnect hints, one stylesheet
<link> covering every family, and a <style> block defining CSS custom
properties for the families bound to a variable.

Variables are bound by position with --var, or by value with --bind:

  fontpicker render inter "Fira Code" --var --font-sans --var --font-mono
  fontpicker render inter --bind "inter=--font-sans,system-ui,sans-serif"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderFlags.register(renderCmd, true)
	renderCmd.Flags().BoolVar(&renderNoPreconnect, "no-preconnect", false, "omit the preconnect <link> tags")
	renderCmd.Flags().BoolVar(&renderOnlyLink, "link-only", false, "render only the stylesheet <link>")
	renderCmd.Flags().BoolVar(&renderOnlyVars, "vars-only", false, "render only the CSS variables block")
	renderCmd.MarkFlagsMutuallyExclusive("link-only", "vars-only")
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	c, err := renderFlags.collect(a, args, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	preconnect := !renderNoPreconnect
	var (
		markup string
		ok     bool
	)
	switch {
	case renderOnlyLink:
		markup, ok = c.RenderStylesheetLink(preconnect)
	case renderOnlyVars:
		markup, ok = c.RenderCSSVariables()
	default:
		markup, ok = c.Render(preconnect)
	}
	if !ok {
		return errNothingResolved
	}

	fmt.Fprintln(cmd.OutOrStdout(), markup)
	return nil
}
