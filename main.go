package main

import (
	"os"

	"github.com/GopalTomar/Cloud-Connect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
