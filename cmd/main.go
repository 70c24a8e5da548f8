package main

import (
	"os"

	"github.com/lulu73211/ia-quizz-arena/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
