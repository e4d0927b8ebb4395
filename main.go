package main

import (
	"os"

	"github.com/done-app/donectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
