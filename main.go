package main

import (
	"os"

	"github.com/mavila/zodico/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
