package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/cli"
	"github.com/bnema/fontpicker/internal/domain/font"
)

// selectionFlags are the per-invocation overrides shared by url, render and inspect.
type selectionFlags struct {
	weights   []int
	italics   bool
	noItalics bool
	vars      []string
	binds     []string
}

func (f *selectionFlags) register(cmd *cobra.Command, withVariables bool) {
	cmd.Flags().IntSliceVarP(&f.weights, "weights", "w", nil, "weight allowlist, overrides the configured weights (e.g. 400,700)")
	cmd.Flags().BoolVar(&f.italics, "italics", false, "request italic variants")
	cmd.Flags().BoolVar(&f.noItalics, "no-italics", false, "never request italic variants")
	cmd.MarkFlagsMutuallyExclusive("italics", "no-italics")

	if withVariables {
		cmd.Flags().StringArrayVar(&f.vars, "var", nil, "CSS variable for the value at the same position (repeatable)")
		cmd.Flags().StringArrayVar(&f.binds, "bind", nil, "bind a value to a CSS variable with fallbacks: value=--name,fallback,... (repeatable)")
	}
}

func (f *selectionFlags) overrides() (cli.Overrides, error) {
	o := cli.Overrides{Weights: f.weights, Variables: f.vars}
	switch {
	case f.italics:
		o.Italics = new(bool)
		*o.Italics = true
	case f.noItalics:
		o.Italics = new(bool)
	}

	for _, raw := range f.binds {
		b, err := cli.ParseBinding(raw)
		if err != nil {
			return cli.Overrides{}, err
		}
		o.Bindings = append(o.Bindings, b)
	}
	return o, nil
}

// collect resolves values with the flag overrides. Unresolved values are
// reported on warn but do not stop the command.
func (f *selectionFlags) collect(a *cli.App, values []string, warn io.Writer) (*font.Collection, error) {
	o, err := f.overrides()
	if err != nil {
		return nil, err
	}

	c, unresolved := a.Collect(values, o)
	for _, v := range unresolved {
		fmt.Fprintf(warn, "warning: %q did not match any family\n", v)
	}
	return c, nil
}
