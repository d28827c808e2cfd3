package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/vect2d/config"
	"github.com/meghashyamc/vect2d/playground"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	p := playground.NewPlayground(cfg)
	if err := p.Run(); err != nil {
		slog.Error("error running playground", "err", err)
		os.Exit(1)
	}
}
