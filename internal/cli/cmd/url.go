package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	errNothingResolved = errors.New("none of the values matched a catalog family")
	urlFlags           selectionFlags
)

var urlCmd = &cobra.Command{
	Use:   "url <value>...",
	Short: "Print the combined stylesheet URL for one or more families",
	Example: `  fontpicker url roboto "Open Sans"
  fontpicker url inter --weights 400,700 --no-italics`,
	Args: cobra.MinimumNArgs(1),
	RunE: runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
	urlFlags.register(urlCmd, false)
}

func runURL(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	c, err := urlFlags.collect(a, args, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	href, ok := c.StylesheetURL()
	if !ok {
		return errNothingResolved
	}
	fmt.Fprintln(cmd.OutOrStdout(), href)
	return nil
}
