package main

import (
	"fmt"
	"os"

	"github.com/tatianab/forgotten-temple/internal/config"
	"github.com/tatianab/forgotten-temple/internal/engine"
	"github.com/tatianab/forgotten-temple/internal/models"
	"github.com/tatianab/forgotten-temple/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	var world *models.World
	if cfg.WorldPath != "" {
		data, err := os.ReadFile(cfg.WorldPath)
		if err != nil {
			fmt.Printf("Error reading world file: %v\n", err)
			os.Exit(1)
		}
		world, err = models.LoadWorld(data)
		if err != nil {
			fmt.Printf("Error loading world: %v\n", err)
			os.Exit(1)
		}
	} else {
		world, err = models.DefaultWorld()
		if err != nil {
			fmt.Printf("Error loading world: %v\n", err)
			os.Exit(1)
		}
	}

	game := engine.NewWithWorld(world)
	if err := tui.Run(game); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
