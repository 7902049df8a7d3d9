package main

import (
	"flag"
	"fmt"
	"insightd/internal/di"
	"insightd/internal/structures"
	"os"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the config file")
	debug := flag.Bool("debug", false, "duplicate logs to stderr")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "insightd: %s\n", err)
		os.Exit(1)
	}
}
