// Replays a scripted winning walkthrough through the real engine and
// prints the transcript. Handy for eyeballing the full game flow
// without typing it out.
package main

import (
	"fmt"
	"log"

	"github.com/tatianab/forgotten-temple/internal/command"
	"github.com/tatianab/forgotten-temple/internal/engine"
)

var script = []string{
	"look",
	"take ancient map",
	"use ancient map",
	"go east",
	"take torch",
	"use torch",
	"go west",
	"go north",
	"take ceremonial dagger",
	"use ceremonial dagger",
	"go west",
	"take golden idol",
	"go east",
	"go east",
	"go north",
	"use golden idol",
}

func main() {
	game, err := engine.New()
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	fmt.Println(game.LookAround())

	for turn, line := range script {
		fmt.Printf("\n--- Turn %d: %s ---\n", turn+1, line)

		cmd, err := command.Parse(line)
		if err != nil {
			log.Fatalf("Script line %q failed to parse: %v", line, err)
		}
		fmt.Println(game.ProcessCommand(cmd))

		if game.IsGameOver() && turn != len(script)-1 {
			log.Fatalf("Game ended early at turn %d", turn+1)
		}
	}

	if !game.IsGameOver() {
		log.Fatal("Walkthrough finished but the game is not over")
	}
	fmt.Println("\nWalkthrough complete: escaped the temple.")
}
