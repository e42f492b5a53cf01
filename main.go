package main

import (
	"os"

	"github.com/alshoaa/siteadmin/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
