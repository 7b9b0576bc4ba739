package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/GopalTomar/Cloud-Connect/internal/audit"
	"github.com/GopalTomar/Cloud-Connect/internal/config"
	"github.com/GopalTomar/Cloud-Connect/internal/manager"
	"github.com/GopalTomar/Cloud-Connect/internal/registry"
	"github.com/GopalTomar/Cloud-Connect/internal/resources"
)

// session bundles everything one console run needs. Resources live for the
// duration of the session; the log files under cfg.LogDir are the durable
// part.
type session struct {
	cfg     *config.Config
	manager *manager.Manager
	sink    *audit.FileSink
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	sink, err := audit.NewFileSink(cfg.LogDir)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if err := resources.RegisterBuiltins(reg); err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		manager: manager.New(reg, sink),
		sink:    sink,
	}, nil
}

func askResourceName() (string, bool) {
	name, _ := pterm.DefaultInteractiveTextInput.Show("Resource name")
	name = strings.TrimSpace(name)
	if name == "" {
		pterm.Warning.Println("No name given.")
		return "", false
	}
	return name, true
}
