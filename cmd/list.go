package cmd

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
)

func runList(sess *session) {
	filter, _ := pterm.DefaultInteractiveTextInput.
		Show(`Filter expression (optional, e.g. State == "running")`)
	renderList(sess.manager.List(), strings.TrimSpace(filter))
}

func renderList(list []core.Resource, filter string) {
	tableData := [][]string{{"Name", "Type", "State", "Created"}}

	for _, res := range list {
		if filter != "" {
			match, err := core.MatchFilter(filter, core.NewView(res))
			if err != nil {
				pterm.Error.Println(err)
				return
			}
			if !match {
				continue
			}
		}

		stateStyle := pterm.NewStyle(pterm.FgYellow)
		switch res.CurrentState() {
		case core.StateRunning:
			stateStyle = pterm.NewStyle(pterm.FgGreen)
		case core.StateDeleted:
			stateStyle = pterm.NewStyle(pterm.FgRed)
		}

		tableData = append(tableData, []string{
			res.GetName(),
			res.GetType(),
			stateStyle.Sprint(res.CurrentState()),
			res.Created().Format("2006-01-02 15:04:05"),
		})
	}

	if len(tableData) == 1 {
		pterm.Info.Println("No resources found.")
		return
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
