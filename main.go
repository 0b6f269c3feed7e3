package main

import (
	"os"

	"github.com/maryjean/suggestion-box/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
