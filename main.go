package main

import (
	"github.com/ColonelBlimp/morsekit/cmd"
	"github.com/ColonelBlimp/morsekit/internal/recovery"
)

func main() {
	defer recovery.HandlePanic()
	cmd.Execute()
}
