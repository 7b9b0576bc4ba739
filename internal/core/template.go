package core

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// ExecuteTemplate renders the given content with the provided data. Sprig
// functions are available, and referencing a missing key is an error instead
// of silently printing "<no value>".
func ExecuteTemplate(content string, data interface{}) (string, error) {
	tmpl, err := template.New("cloudconnect").Funcs(sprig.FuncMap()).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
