package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cloudconnect",
	Short: "Manage cloud resources from an interactive console.",
	Long: `CloudConnect is an in-process console manager for cloud resources
(app services, storage accounts, cache databases) sharing a
create/start/stop/delete lifecycle.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	rootCmd.PersistentFlags().StringP("config", "c", "cloudconnect.yaml", "config file path")
}
