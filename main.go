package main

import (
	"os"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}