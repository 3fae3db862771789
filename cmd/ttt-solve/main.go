package main

import (
	"os"

	"github.com/rocketscienceinc/tictactoe-minimax/transport/cli"
)

func main() {
	if err := cli.NewSolveCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
