package cmd

import (
	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive resource console",
	Long: `Opens the CloudConnect menu. Resources live for the duration of the
session; audit logs are written under the configured log directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := newSession(cmd)
		if err != nil {
			pterm.Error.Printf("Failed to start console: %v\n", err)
			return
		}
		runConsole(sess)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

const (
	menuCreate   = "Create Resource"
	menuStart    = "Start Resource"
	menuStop     = "Stop Resource"
	menuDelete   = "Delete Resource"
	menuLogs     = "View Logs"
	menuList     = "List Resources"
	menuDescribe = "Describe Resource"
	menuExport   = "Export Inventory"
	menuExit     = "Exit"
)

func runConsole(sess *session) {
	cursor.Hide()
	defer cursor.Show()

	pterm.DefaultHeader.WithFullWidth().Println("CloudConnect Console")

	options := []string{
		menuCreate, menuStart, menuStop, menuDelete,
		menuLogs, menuList, menuDescribe, menuExport, menuExit,
	}

	for {
		pterm.Println()
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			Show("What do you want to do?")
		if err != nil {
			return
		}

		switch choice {
		case menuCreate:
			runCreate(sess)
		case menuStart:
			runStart(sess)
		case menuStop:
			runStop(sess)
		case menuDelete:
			runDelete(sess)
		case menuLogs:
			runLogs(sess)
		case menuList:
			runList(sess)
		case menuDescribe:
			runDescribe(sess)
		case menuExport:
			runExport(sess)
		case menuExit:
			pterm.Info.Println("Bye!")
			return
		}
	}
}
