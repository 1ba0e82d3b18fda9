package main

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"
)

func resolveTemplatePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Try going up two levels (for tests running from cmd/api)
		p2 := "../../" + path
		if _, err := os.Stat(p2); err == nil {
			return p2
		}
	}
	return path
}

func toJSON(v interface{}) template.HTML {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.HTML(b)
}

func render(w http.ResponseWriter, data interface{}, files ...string) {
	allFiles := []string{resolveTemplatePath("ui/templates/layout.html")}
	for _, f := range files {
		allFiles = append(allFiles, resolveTemplatePath(f))
	}

	tmpl := template.New("layout").Funcs(template.FuncMap{
		"json": toJSON,
	})

	tmpl, err := tmpl.ParseFiles(allFiles...)
	if err != nil {
		http.Error(w, "Template Parse Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		http.Error(w, "Template Execute Error: "+err.Error(), http.StatusInternalServerError)
	}
}
