package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/GopalTomar/Cloud-Connect/internal/registry"
	"github.com/GopalTomar/Cloud-Connect/internal/resources"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered resource types",
	Run: func(cmd *cobra.Command, args []string) {
		reg := registry.New()
		if err := resources.RegisterBuiltins(reg); err != nil {
			pterm.Error.Println(err)
			return
		}

		tableData := [][]string{{"#", "Type"}}
		for i, t := range reg.Types() {
			tableData = append(tableData, []string{pterm.Sprintf("%d", i+1), t})
		}
		pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
