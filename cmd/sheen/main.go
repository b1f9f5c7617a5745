package main

import (
	"fmt"
	"os"

	"github.com/sheen-go/sheen/internal/cli"
	"github.com/sheen-go/sheen/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := settings.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return cli.NewApp(cfg).Execute()
}
