package main

import (
	"github.com/litetable/litetable-mrunit/internal/cli"
	"os"
)

func main() {
	os.Exit(cli.Execute())
}
