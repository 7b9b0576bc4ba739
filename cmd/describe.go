package cmd

import (
	"github.com/pterm/pterm"
)

func runDescribe(sess *session) {
	name, ok := askResourceName()
	if !ok {
		return
	}

	res, err := sess.manager.Get(name)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	pterm.DefaultSection.Println(res.GetName())
	pterm.Info.Println(res.Describe())

	data := [][]string{
		{"ID", res.GetID()},
		{"Type", res.GetType()},
		{"State", res.CurrentState().String()},
		{"Created", res.Created().Format("2006-01-02 15:04:05")},
		{"Last change", res.LastChanged().Format("2006-01-02 15:04:05")},
	}
	pterm.DefaultTable.WithHasHeader(false).WithData(data).Render()
}
