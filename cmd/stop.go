package cmd

import (
	"github.com/pterm/pterm"
)

func runStop(sess *session) {
	name, ok := askResourceName()
	if !ok {
		return
	}

	res, err := sess.manager.Stop(name)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	pterm.Success.Printf("%s stopped successfully.\n", res.GetType())
}
