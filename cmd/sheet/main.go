package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/whiskey-hollow/internal/platform/config"
	"github.com/louisbranch/whiskey-hollow/internal/tools/sheetdump"
)

func main() {
	cfg, err := sheetdump.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sheetdump.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("print sheet: %v", err)
	}
}
