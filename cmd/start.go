package cmd

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/GopalTomar/Cloud-Connect/internal/audit"
)

func runStart(sess *session) {
	name, ok := askResourceName()
	if !ok {
		return
	}

	res, err := sess.manager.Start(name)
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	pterm.Success.Printf("%s started at %s\n", res.GetType(), time.Now().Format(audit.TimeFormat))
	pterm.Info.Printf("(Log written to %s)\n", sess.sink.LogPath(name))
}
