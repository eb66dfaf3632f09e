package main

import (
	"os"

	"github.com/sirbread/spellscript/cmd/spellscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
