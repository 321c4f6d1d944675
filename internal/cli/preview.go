package cli

import (
	"fmt"
	"html/template"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/bnema/fontpicker/internal/domain/font"
	"github.com/bnema/fontpicker/internal/logging"
)

const sampleText = "The quick brown fox jumps over the lazy dog"

// Query values end up inside the page's <style> block, so variable names and
// fallback tokens are restricted to what a custom property declaration allows.
var (
	cssVariableName   = regexp.MustCompile(`^--[A-Za-z0-9_-]+$`)
	fallbackForbidden = "<>;{}"
)

func validateVariable(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || cssVariableName.MatchString(name) {
		return nil
	}
	return fmt.Errorf("invalid CSS variable name %q", name)
}

func validateBinding(b Binding) error {
	if err := validateVariable(b.Variable); err != nil {
		return err
	}
	for _, fb := range b.Fallbacks {
		if strings.ContainsAny(fb, fallbackForbidden) {
			return fmt.Errorf("invalid fallback %q", fb)
		}
	}
	return nil
}

var previewPage = template.Must(template.New("preview").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>fontpicker preview</title>
{{.Head}}
</head>
<body>
{{range .Families}}<section>
<h2 style="font-family: {{.Family}}">{{.Name}}</h2>
<p style="font-family: {{.Family}}">{{$.Sample}}</p>
</section>
{{end}}{{range .Unresolved}}<p><em>{{.}}</em> did not match any family</p>
{{end}}</body>
</html>
`))

type previewFamily struct {
	Name   string
	Family template.CSS
}

type previewData struct {
	Head       template.HTML
	Families   []previewFamily
	Unresolved []string
	Sample     string
}

// NewPreviewHandler serves resolved collections over HTTP:
//
//	GET /           HTML page showing every requested family
//	GET /url        the combined stylesheet URL as text
//	GET /render     the <link> and <style> markup as text
//	GET /healthz    catalog source and size
//
// Families are passed as repeated font= parameters. weights=400,700,
// italics=true|false, var=--name (positional) and bind=value=--name,fallback
// apply the same overrides as the CLI flags.
func NewPreviewHandler(a *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", a.handlePreviewPage)
	mux.HandleFunc("GET /url", a.handlePreviewURL)
	mux.HandleFunc("GET /render", a.handlePreviewRender)
	mux.HandleFunc("GET /healthz", a.handleHealth)
	return mux
}

func parsePreviewQuery(r *http.Request) ([]string, Overrides, error) {
	q := r.URL.Query()
	o := Overrides{Variables: q["var"]}
	for _, v := range o.Variables {
		if err := validateVariable(v); err != nil {
			return nil, Overrides{}, err
		}
	}

	if raw := q.Get("weights"); raw != "" {
		o.Weights = font.NormalizeWeights(strings.Split(raw, ","))
	}
	if raw := q.Get("italics"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, Overrides{}, err
		}
		o.Italics = &include
	}
	for _, raw := range q["bind"] {
		b, err := ParseBinding(raw)
		if err != nil {
			return nil, Overrides{}, err
		}
		if err := validateBinding(b); err != nil {
			return nil, Overrides{}, err
		}
		o.Bindings = append(o.Bindings, b)
	}
	return q["font"], o, nil
}

func (a *App) collectRequest(w http.ResponseWriter, r *http.Request) (*font.Collection, []string, bool) {
	values, o, err := parsePreviewQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	if len(values) == 0 {
		http.Error(w, "missing font parameter", http.StatusBadRequest)
		return nil, nil, false
	}

	c, unresolved := a.Collect(values, o)
	logging.FromContext(a.ctx).Debug().
		Strs("fonts", values).
		Strs("unresolved", unresolved).
		Str("path", r.URL.Path).
		Msg("preview request")
	return c, unresolved, true
}

func (a *App) handlePreviewURL(w http.ResponseWriter, r *http.Request) {
	c, _, ok := a.collectRequest(w, r)
	if !ok {
		return
	}
	href, ok := c.StylesheetURL()
	if !ok {
		http.Error(w, "no family matched", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(href + "\n"))
}

func (a *App) handlePreviewRender(w http.ResponseWriter, r *http.Request) {
	c, _, ok := a.collectRequest(w, r)
	if !ok {
		return
	}
	preconnect := true
	if raw := r.URL.Query().Get("preconnect"); raw != "" {
		preconnect = cast.ToBool(raw)
	}
	markup, ok := c.Render(preconnect)
	if !ok {
		http.Error(w, "no family matched", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(markup + "\n"))
}

func (a *App) handlePreviewPage(w http.ResponseWriter, r *http.Request) {
	c, unresolved, ok := a.collectRequest(w, r)
	if !ok {
		return
	}

	head, _ := c.Render(true)
	data := previewData{
		// Slugs and family names come from the catalog; variable names and
		// fallbacks were checked by parsePreviewQuery.
		Head:       template.HTML(head), //nolint:gosec
		Unresolved: unresolved,
		Sample:     sampleText,
	}
	for _, s := range c.Selections() {
		name, ok := s.FamilyName()
		if !ok {
			continue
		}
		family := strconv.Quote(name)
		if v, ok := s.CSSVariable(); ok {
			family = "var(" + v + ")"
		}
		data.Families = append(data.Families, previewFamily{Name: name, Family: template.CSS(family)}) //nolint:gosec
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := previewPage.Execute(w, data); err != nil {
		logging.FromContext(a.ctx).Error().Err(err).Msg("render preview page")
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	families := len(a.Store.All(r.Context()))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok " + string(a.Store.Source()) + " " + strconv.Itoa(families) + "\n"))
}
