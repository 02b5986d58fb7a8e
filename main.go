package main

import (
	"os"

	"github.com/alertdeskhq/alertdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
