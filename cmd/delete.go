package cmd

import (
	"github.com/pterm/pterm"
)

func runDelete(sess *session) {
	name, ok := askResourceName()
	if !ok {
		return
	}

	confirmed, err := pterm.DefaultInteractiveConfirm.
		Show("This is a soft delete; the name stays reserved. Continue?")
	if err != nil || !confirmed {
		pterm.Info.Println("Delete cancelled.")
		return
	}

	res, err := sess.manager.Delete(name)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	pterm.Success.Printf("%s marked as deleted.\n", res.GetType())
}
