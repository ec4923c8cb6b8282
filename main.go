package main

import (
	"duelchess/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunDuelChess(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
