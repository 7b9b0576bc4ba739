package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
)

// Snapshot types for export. Secrets never leave the process: a storage
// account's access key is hashed at construction and not part of Describe.
type exportResource struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	State   string `yaml:"state"`
	Created string `yaml:"created"`
	Config  string `yaml:"config"`
}

type exportDoc struct {
	ExportedAt string           `yaml:"exported_at"`
	Resources  []exportResource `yaml:"resources"`
}

func runExport(sess *session) {
	list := sess.manager.List()
	if len(list) == 0 {
		pterm.Info.Println("Nothing to export.")
		return
	}

	path, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue("inventory.yaml").
		Show("Output file")
	if err != nil {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = "inventory.yaml"
	}

	tmplPath, err := pterm.DefaultInteractiveTextInput.
		Show("Template file (optional, sprig functions available)")
	if err != nil {
		return
	}
	tmplPath = strings.TrimSpace(tmplPath)

	doc := buildExportDoc(list)

	var out []byte
	if tmplPath != "" {
		content, err := os.ReadFile(tmplPath)
		if err != nil {
			pterm.Error.Printf("Failed to read template: %v\n", err)
			return
		}
		rendered, err := core.ExecuteTemplate(string(content), doc)
		if err != nil {
			pterm.Error.Printf("Template render failed: %v\n", err)
			return
		}
		out = []byte(rendered)
	} else {
		out, err = yaml.Marshal(doc)
		if err != nil {
			pterm.Error.Printf("Failed to marshal inventory: %v\n", err)
			return
		}
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		pterm.Error.Printf("Failed to write %s: %v\n", path, err)
		return
	}
	pterm.Success.Printf("Exported %d resources to %s\n", len(doc.Resources), path)
}

func buildExportDoc(list []core.Resource) exportDoc {
	doc := exportDoc{
		ExportedAt: time.Now().Format(time.RFC3339),
	}
	for _, res := range list {
		doc.Resources = append(doc.Resources, exportResource{
			Name:    res.GetName(),
			Type:    res.GetType(),
			State:   res.CurrentState().String(),
			Created: res.Created().Format(time.RFC3339),
			Config:  res.Describe(),
		})
	}
	return doc
}
