package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tatianab/forgotten-temple/internal/command"
	"github.com/tatianab/forgotten-temple/internal/engine"
)

// The plain console driver: read a line, parse it, hand the command to
// the engine, print the outcome. For the richer front-end see cmd/game.
func main() {
	game, err := engine.New()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printWelcome()
	fmt.Println(game.LookAround())
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	for !game.IsGameOver() {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}

		cmd, err := command.Parse(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println(err)
			fmt.Println()
			continue
		}

		fmt.Println(game.ProcessCommand(cmd))
		fmt.Println()
	}
}

func printWelcome() {
	fmt.Println("=============================================")
	fmt.Println("|                                           |")
	fmt.Println("|         ESCAPE THE FORGOTTEN TEMPLE       |")
	fmt.Println("|             A Text Adventure              |")
	fmt.Println("|                                           |")
	fmt.Println("=============================================")
	fmt.Println()
	fmt.Println("You are an explorer who has ventured deep into a newly discovered ancient temple.")
	fmt.Println("While examining the inner chambers, a sudden tremor shakes the ground,")
	fmt.Println("causing a cave-in that blocks the entrance behind you.")
	fmt.Println("You must find another way out of this forgotten temple before it becomes your tomb.")
	fmt.Println()
	fmt.Println("Type 'help' for a list of commands.")
	fmt.Println()
}
