package main

import (
	"os"

	"github.com/barbersite/barbersite/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
