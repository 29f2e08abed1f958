package web

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names accepted by Renderer.Instance.
const (
	PageHome          = "home"
	PageAbout         = "about"
	PageSkills        = "skills"
	PageProjects      = "projects"
	PageProjectDetail = "project_detail"
	PageCertificates  = "certificates"
	PageContact       = "contact"
	PageNotFound      = "not_found"
)

var pages = []string{
	PageHome, PageAbout, PageSkills, PageProjects,
	PageProjectDetail, PageCertificates, PageContact, PageNotFound,
}

var funcs = template.FuncMap{
	"skillIcon": SkillIcon,
	"date": func(d *domain.Date, layout string) string {
		if d == nil || d.IsZero() {
			return ""
		}
		return d.Format(layout)
	},
	"year": func() int { return time.Now().Year() },
	"lines": func(s string) []string {
		out := []string{}
		for _, l := range strings.Split(s, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				out = append(out, l)
			}
		}
		return out
	},
}

// Renderer is a gin HTMLRender holding one template set per page, each
// combined with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded page templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := template.New(p).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+p+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", p, err)
		}
		r.templates[p] = t
	}
	return r, nil
}

// MustNewRenderer panics when the embedded templates do not parse.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		t = r.templates[PageNotFound]
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}
