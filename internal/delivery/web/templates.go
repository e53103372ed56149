package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"kala/internal/domain/entity"
	"kala/internal/errors"

	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseTemplate = "templates/base.html"

// Page template names.
const (
	pageDirectory        = "directory.html"
	pageProfile          = "profile.html"
	pageNotFound         = "not_found.html"
	pageError            = "error.html"
	pageAdminLogin       = "admin_login.html"
	pageAdminConsole     = "admin_console.html"
	pageAdminApplication = "admin_application.html"
)

var allPages = []string{
	pageDirectory,
	pageProfile,
	pageNotFound,
	pageError,
	pageAdminLogin,
	pageAdminConsole,
	pageAdminApplication,
}

var funcMap = template.FuncMap{
	"join": strings.Join,
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}

		return t.Format("2 Jan 2006")
	},
	"formatTime": func(t time.Time) string {
		return t.Format("2 Jan 2006 15:04")
	},
	"travelLabel": func(p entity.TravelPreference) string {
		return p.Label()
	},
	"statusLabel": func(s entity.ApplicationStatus) string {
		return strings.ToLower(string(s))
	},
	"hasID": func(ids []uuid.UUID, id uuid.UUID) bool {
		return slices.Contains(ids, id)
	},
	"hasTravel": func(prefs []entity.TravelPreference, p entity.TravelPreference) bool {
		return slices.Contains(prefs, p)
	},
	"isID": func(id *uuid.UUID, other uuid.UUID) bool {
		return id != nil && *id == other
	},
	"intValue": func(n *int) string {
		if n == nil {
			return ""
		}

		return strconv.Itoa(*n)
	},
	"add": func(a, b int) int {
		return a + b
	},
}

// templates holds one parsed template set per page, each layered on the base layout.
type templates struct {
	pages map[string]*template.Template
}

func parseTemplates() (*templates, error) {
	t := &templates{pages: make(map[string]*template.Template, len(allPages))}
	for _, page := range allPages {
		tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, baseTemplate, "templates/"+page)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", page)
		}
		t.pages[page] = tmpl
	}

	return t, nil
}

// render executes page into memory so a failing template never leaves a half-written response.
func (t *templates) render(page string, data map[string]any) ([]byte, error) {
	tmpl, ok := t.pages[page]
	if !ok {
		return nil, errors.Errorf("unknown page %s", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, errors.Wrapf(err, "execute template %s", page)
	}

	return buf.Bytes(), nil
}

// pageURL rewrites the page parameter of a listing URL.
func pageURL(path string, query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))

	return path + "?" + q.Encode()
}
