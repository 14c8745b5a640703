package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
	"unicode"

	"github.com/ecruz165/react-webpack-scaffold/internal/manifest"
)

//go:embed all:templates
var scaffoldFS embed.FS

const templateSet = "templates/react-webpack"

// TemplateFile maps an embedded source to its path inside the new project.
// Sources ending in .tmpl go through text/template; everything else is
// copied verbatim.
type TemplateFile struct {
	Path   string // slash-separated, relative to the target directory
	Source string // relative to the template set
}

// Files is the fixed set emitted into every project, in write order.
var Files = []TemplateFile{
	{Path: "package.json", Source: "package.json.tmpl"},
	{Path: ".babelrc", Source: ".babelrc"},
	{Path: "webpack.config.js", Source: "webpack.config.js"},
	{Path: "public/index.html", Source: "public/index.html"},
	{Path: "src/index.jsx", Source: "src/index.jsx"},
	{Path: "src/App.jsx", Source: "src/App.jsx"},
	{Path: "src/index.css", Source: "src/index.css"},
}

// ProjectData holds the template variables.
type ProjectData struct {
	Name string
}

// RenderedFile is a template's final content, ready to be written.
type RenderedFile struct {
	Path    string
	Content []byte
}

var funcs = template.FuncMap{
	// json renders a Go string as a JSON string literal.
	"json": manifest.QuoteString,
}

// Render produces the content of f for data with leading whitespace removed.
func Render(f TemplateFile, data *ProjectData) ([]byte, error) {
	raw, err := fs.ReadFile(scaffoldFS, path.Join(templateSet, f.Source))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", f.Source, err)
	}

	content := raw
	if strings.HasSuffix(f.Source, ".tmpl") {
		tmpl, err := template.New(f.Source).Funcs(funcs).Option("missingkey=error").Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", f.Source, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", f.Source, err)
		}
		content = buf.Bytes()
	}

	return bytes.TrimLeftFunc(content, unicode.IsSpace), nil
}

// RenderAll renders every file in Files. The manifest is validated against
// its schema and must carry the project name verbatim.
func RenderAll(data *ProjectData) ([]RenderedFile, error) {
	rendered := make([]RenderedFile, 0, len(Files))
	for _, f := range Files {
		content, err := Render(f, data)
		if err != nil {
			return nil, &TemplateError{Path: f.Path, Err: err}
		}
		if f.Path == manifest.FileName {
			if err := checkManifest(content, data.Name); err != nil {
				return nil, &TemplateError{Path: f.Path, Err: err}
			}
		}
		rendered = append(rendered, RenderedFile{Path: f.Path, Content: content})
	}
	return rendered, nil
}

func checkManifest(content []byte, name string) error {
	result, err := manifest.Validate(content)
	if err != nil {
		return err
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return fmt.Errorf("invalid manifest: %s", strings.Join(msgs, "; "))
	}

	pkg, err := manifest.Parse(content)
	if err != nil {
		return err
	}
	if pkg.Name != name {
		return fmt.Errorf("manifest name %q does not match project name %q", pkg.Name, name)
	}
	if issues := manifest.CheckRanges(pkg); len(issues) > 0 {
		return fmt.Errorf("invalid dependency range %s", issues[0])
	}
	return nil
}
