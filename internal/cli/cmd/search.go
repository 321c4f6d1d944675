package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/cli/styles"
)

const defaultSearchLimit = 10

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search the catalog by slug and family name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", defaultSearchLimit, "maximum number of results (0 = unlimited)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	hits := a.Fonts.SearchFonts(a.Ctx(), query, searchLimit)
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewFontRenderer(a.Theme).RenderSearch(query, hits))
	return nil
}
