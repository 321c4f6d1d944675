package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontpicker/internal/cli"
	"github.com/bnema/fontpicker/internal/domain/build"
	"github.com/bnema/fontpicker/internal/domain/entity"
	"github.com/bnema/fontpicker/internal/infrastructure/config"
)

// isolateEnv points the XDG directories at a temp dir and runs offline on
// the bundled catalog unless the test overrides the variables afterwards.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("FONTPICKER_CACHE_DRIVER", "none")
	t.Setenv("FONTPICKER_DISABLE_REMOTE_CATALOG", "true")
	t.Setenv("FONTPICKER_LOG_LEVEL", "disabled")
	return dir
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	urlFlags = selectionFlags{}
	renderFlags = selectionFlags{}
	inspectFlags = selectionFlags{}
	renderNoPreconnect, renderOnlyLink, renderOnlyVars = false, false, false
	resolveJSON = false
	searchLimit = defaultSearchLimit
	configSchemaOutput, configKeysSection, configKeysJSON = "", "", false
	serveAddr = ""
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	closeApp()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	isolateEnv(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
	assert.Nil(t, GetApp(), "version must not initialize the app")
}

func TestResolve(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "resolve", "Open Sans")
	require.NoError(t, err)
	assert.Contains(t, out, "Open Sans")
	assert.Contains(t, out, "(open-sans)")
	assert.Contains(t, out, "fallback")
	assert.Nil(t, GetApp(), "app is closed after the command")
}

func TestResolve_JSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "resolve", "https://fonts.bunny.net/family/fira-code", "--json")
	require.NoError(t, err)

	var entry entity.FontEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "Fira Code", entry.FamilyName)
	assert.Equal(t, []int{300, 400, 500, 600, 700}, entry.Weights)
}

func TestResolve_MissSuggests(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "resolve", "robto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "robto")
	assert.Contains(t, out, "not found in catalog")
	assert.Contains(t, out, "did you mean")
	assert.Contains(t, out, "roboto")
}

func TestURL(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "url", "roboto", "Open Sans", "--weights", "700,400", "--no-italics")
	require.NoError(t, err)
	assert.Equal(t, "https://fonts.bunny.net/css?family=roboto:400,700|open-sans:400,700\n", out)
}

func TestURL_ConfiguredDefaults(t *testing.T) {
	isolateEnv(t)
	t.Setenv("FONTPICKER_INCLUDE_ITALIC", "false")

	out, _, err := execute(t, "url", "lato")
	require.NoError(t, err)
	assert.Equal(t, "https://fonts.bunny.net/css?family=lato:100,300,400,700,900\n", out)

	out, _, err = execute(t, "url", "lato", "--italics", "-w", "400")
	require.NoError(t, err)
	assert.Equal(t, "https://fonts.bunny.net/css?family=lato:400,400i\n", out)
}

func TestURL_WarnsAboutUnresolved(t *testing.T) {
	isolateEnv(t)

	out, errOut, err := execute(t, "url", "inter", "nope")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://fonts.bunny.net/css?family=inter:"))
	assert.Contains(t, errOut, `"nope" did not match any family`)

	_, _, err = execute(t, "url", "nope")
	require.ErrorIs(t, err, errNothingResolved)
}

func TestURL_ItalicFlagsAreExclusive(t *testing.T) {
	isolateEnv(t)

	_, _, err := execute(t, "url", "roboto", "--italics", "--no-italics")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "render", "inter", "fira-code",
		"--var", "--font-sans",
		"--bind", "fira-code=--font-mono,--font-sans,monospace",
		"--no-preconnect")
	require.NoError(t, err)

	assert.NotContains(t, out, "preconnect")
	assert.Contains(t, out, `<link rel="stylesheet" href="https://fonts.bunny.net/css?family=inter:`)
	assert.Contains(t, out, "|fira-code:300,400,500,600,700")
	assert.Contains(t, out, `--font-sans: "Inter";`)
	assert.Contains(t, out, `--font-mono: "Fira Code", var(--font-sans), monospace;`)
}

func TestRender_Parts(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "render", "roboto", "--link-only")
	require.NoError(t, err)
	assert.Contains(t, out, `<link rel="preconnect" href="https://fonts.bunny.net">`)
	assert.NotContains(t, out, "<style>")

	out, _, err = execute(t, "render", "roboto", "--vars-only", "--var", "--body")
	require.NoError(t, err)
	assert.Equal(t, "<style>\n:root {\n    --body: \"Roboto\";\n}\n</style>\n", out)

	_, _, err = execute(t, "render", "roboto", "--vars-only")
	require.ErrorIs(t, err, errNothingResolved)
}

func TestRender_InvalidBinding(t *testing.T) {
	isolateEnv(t)

	_, _, err := execute(t, "render", "roboto", "--bind", "roboto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid binding")
}

func TestInspect(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "inspect", "roboto", "nope", "--var", "--body")
	require.NoError(t, err)
	assert.Contains(t, out, "https://fonts.bunny.net/css?family=roboto:")
	assert.Contains(t, out, "Roboto")
	assert.Contains(t, out, "--body")
	assert.Contains(t, out, "nope")
}

func TestSearch(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "search", "fira", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 match")
	assert.Contains(t, out, "fira-")

	out, _, err = execute(t, "search", "jetbrains")
	require.NoError(t, err)
	assert.Contains(t, out, "jetbrains-mono")
	assert.Contains(t, out, "JetBrains Mono")
}

func TestCatalogListAndInfo(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "catalog", "list")
	require.NoError(t, err)
	slugs := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, slugs, "roboto")
	assert.IsIncreasing(t, slugs)

	out, _, err = execute(t, "catalog", "info")
	require.NoError(t, err)
	assert.Contains(t, out, "fallback")
	assert.Contains(t, out, "none")
	assert.Contains(t, out, strconv.Itoa(len(slugs)))
}

func TestCatalogRefreshAndClear_SQLite(t *testing.T) {
	dir := isolateEnv(t)

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"space-mono": {"familyName": "Space Mono", "weights": [400, 700], "styles": ["normal", "italic"]}}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("FONTPICKER_DISABLE_REMOTE_CATALOG", "false")
	t.Setenv("FONTPICKER_CATALOG_REMOTE_URL", srv.URL)
	t.Setenv("FONTPICKER_CACHE_DRIVER", "sqlite")

	out, _, err := execute(t, "catalog", "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog refreshed")
	assert.EqualValues(t, 1, hits.Load())
	assert.FileExists(t, filepath.Join(dir, "state", "fontpicker", "cache.sqlite"))

	// Served from the sqlite cache, the provider is not asked again.
	out, _, err = execute(t, "url", "space-mono")
	require.NoError(t, err)
	assert.Equal(t, "https://fonts.bunny.net/css?family=space-mono:400,400i,700,700i\n", out)
	assert.EqualValues(t, 1, hits.Load())

	out, _, err = execute(t, "catalog", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog cache cleared (sqlite)")

	_, _, err = execute(t, "url", "space-mono")
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}

func TestCatalogRefresh_Offline(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "catalog", "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "provider unavailable")
}

func TestCatalogClear_NoCache(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "catalog", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog cache cleared (none)")
}

func TestConfigPath(t *testing.T) {
	dir := isolateEnv(t)

	out, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "fontpicker", "config.toml")+"\n", out)
}

func TestConfigSchema(t *testing.T) {
	dir := isolateEnv(t)

	out, _, err := execute(t, "config", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "properties")

	target := filepath.Join(dir, "schema.json")
	out, _, err = execute(t, "config", "schema", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestConfigKeys(t *testing.T) {
	isolateEnv(t)

	out, _, err := execute(t, "config", "keys", "--section", config.SectionCache, "--json")
	require.NoError(t, err)

	var keys []entity.ConfigKeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	require.Len(t, keys, 3)
	for _, k := range keys {
		assert.Equal(t, config.SectionCache, k.Section)
		assert.True(t, strings.HasPrefix(k.Env, "FONTPICKER_CACHE_"), k.Env)
	}

	out, _, err = execute(t, "config", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "Config Reference")
	assert.Contains(t, out, "FONTPICKER_LOG_LEVEL")

	_, _, err = execute(t, "config", "keys", "--section", "Bogus")
	require.Error(t, err)
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cache.Driver = config.CacheDriverNone
	cfg.DisableRemoteCatalog = true

	a, err := cli.NewAppFromConfig(cfg, cli.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, serve(ctx, a, "127.0.0.1:0"))
}

func TestServe_ListenError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Cache.Driver = config.CacheDriverNone
	cfg.DisableRemoteCatalog = true

	a, err := cli.NewAppFromConfig(cfg, cli.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	err = serve(context.Background(), a, "256.0.0.1:bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preview server")
}
