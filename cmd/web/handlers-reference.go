package main

import (
	"github.com/justinas/nosurf"
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/locale"
	"net/http"
	"strings"
)

func (app *application) csrfToken(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, map[string]string{
		"token":  nosurf.Token(r),
		"header": nosurf.HeaderName,
	})
}

func (app *application) languages(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, locale.Languages())
}

type fieldResponse struct {
	Key      fields.Key `json:"key"`
	Label    string     `json:"label"`
	Question string     `json:"question"`
	FreeText bool       `json:"freeText"`
}

// fieldDefinitions lists the fields in the order they are asked with labels and questions in the requested locale.
func (app *application) fieldDefinitions(w http.ResponseWriter, r *http.Request) {
	loc := strings.TrimSpace(r.URL.Query().Get("locale"))
	if loc == "" {
		loc = locale.English
	}
	defs := app.registry.Definitions()
	out := make([]fieldResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, fieldResponse{
			Key:      d.Key,
			Label:    app.registry.Label(d.Key, loc),
			Question: app.registry.Question(d.Key, loc),
			FreeText: d.FreeText,
		})
	}
	app.writeJSON(w, r, http.StatusOK, out)
}
