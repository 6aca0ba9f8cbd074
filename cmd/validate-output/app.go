package main

import (
	"os"

	"github.com/UnendingLoop/ValidateOutput/internal/appmode"
)

func main() {
	// вся логика в appmode, здесь только код выхода
	os.Exit(appmode.RunValidate(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}
