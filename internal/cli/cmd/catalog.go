package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/application/port"
	"github.com/bnema/fontpicker/internal/cli/styles"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the font catalog",
}

var catalogInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where the catalog was loaded from and cache settings",
	Args:  cobra.NoArgs,
	RunE:  runCatalogInfo,
}

var catalogRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the catalog from the provider and update the cache",
	Args:  cobra.NoArgs,
	RunE:  runCatalogRefresh,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every slug in the catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached catalog",
	Args:  cobra.NoArgs,
	RunE:  runCatalogClear,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogInfoCmd)
	catalogCmd.AddCommand(catalogRefreshCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogClearCmd)
}

func runCatalogInfo(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	// Loading first so that source and generation reflect this process.
	families := len(a.Store.All(a.Ctx()))

	info := styles.CatalogInfo{
		Source:      a.Store.Source(),
		Generation:  a.Store.Generation(),
		Families:    families,
		CacheDriver: string(a.Config.Cache.Driver),
		CacheTTL:    a.Config.CacheTTL,
		RemoteURL:   a.Config.Catalog.RemoteURL,
		Memo:        a.Memo.Stats(),
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewCatalogRenderer(a.Theme).RenderInfo(info))
	return nil
}

func runCatalogRefresh(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	catalog, source := a.Store.Refresh(a.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewCatalogRenderer(a.Theme).RenderRefresh(source, len(catalog)))
	return nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	slugs := a.Store.All(a.Ctx()).Slugs()
	if len(slugs) == 0 {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(slugs, "\n"))
	return nil
}

// expiredPurger is implemented by caches that keep expired rows around.
type expiredPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func runCatalogClear(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	renderer := styles.NewCatalogRenderer(a.Theme)
	driver := string(a.Config.Cache.Driver)
	if a.CatalogCache == nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCleared(driver, 0))
		return nil
	}

	ctx := a.Ctx()
	if err := a.CatalogCache.Delete(ctx, port.CatalogCacheKey); err != nil {
		return fmt.Errorf("clear catalog cache: %w", err)
	}

	var purged int64
	if p, ok := a.CatalogCache.(expiredPurger); ok {
		if purged, err = p.PurgeExpired(ctx); err != nil {
			return fmt.Errorf("purge expired cache rows: %w", err)
		}
	}
	a.Store.Invalidate()

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCleared(driver, purged))
	return nil
}
