package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/GopalTomar/Cloud-Connect/internal/audit"
	"github.com/GopalTomar/Cloud-Connect/internal/config"
)

// logsCmd reads the durable log file, so it works outside a console session
// and for resources created in earlier sessions.
var logsCmd = &cobra.Command{
	Use:   "logs [resource_name]",
	Short: "Show the audit log file for a resource",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			pterm.Error.Printf("Failed to load config: %v\n", err)
			return
		}

		sink, err := audit.NewFileSink(cfg.LogDir)
		if err != nil {
			pterm.Error.Println(err)
			return
		}

		data, err := os.ReadFile(sink.LogPath(args[0]))
		if err != nil || len(strings.TrimSpace(string(data))) == 0 {
			pterm.Info.Println("No logs found for this resource.")
			return
		}

		pterm.Info.Println("Displaying latest log entries...")
		fmt.Println(strings.TrimSpace(string(data)))
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}

// runLogs shows the in-memory audit history of the current session.
func runLogs(sess *session) {
	name, ok := askResourceName()
	if !ok {
		return
	}

	entries, err := sess.manager.ViewLogs(name)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	if len(entries) == 0 {
		pterm.Info.Println("No logs found for this resource.")
		return
	}

	for _, e := range entries {
		fmt.Printf("[%s] %s\n", e.At.Format(audit.TimeFormat), e.Message)
	}
}
