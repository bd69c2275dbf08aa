package main

import (
	"os"

	"github.com/Dinakaran-Yogidasan/web-portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
