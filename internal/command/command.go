// Package command defines the vocabulary shared by the parser and the
// game engine: a closed set of player intents, decoupled from raw text.
package command

import (
	"fmt"
	"strings"

	"github.com/tatianab/forgotten-temple/internal/models"
)

// Kind discriminates the command variants.
type Kind int

const (
	Go Kind = iota
	Take
	Use
	Inventory
	Look
	Help
	Quit
	Unknown
)

// Command is a single classified player intent. Direction is set for Go,
// Item for Take and Use (verbatim, original case), Raw for Unknown.
type Command struct {
	Kind      Kind
	Direction models.Direction
	Item      string
	Raw       string
}

// Parse classifies one line of player input. The first word selects the
// command family (case-insensitive, with aliases); the remaining words
// are joined into an item name with their original casing, or matched
// against the direction vocabulary. Empty input and missing arguments
// are user-facing errors; an unrecognized verb is not an error but an
// Unknown command carrying the lowercased input.
func Parse(input string) (Command, error) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return Command{}, fmt.Errorf("Please enter a command.")
	}

	verb := strings.ToLower(words[0])
	args := words[1:]

	switch verb {
	case "go", "move":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("Go where? Try 'go north', 'go east', 'go south', or 'go west'.")
		}
		d, ok := models.ParseDirection(args[0])
		if !ok {
			return Command{}, fmt.Errorf("'%s' is not a valid direction. Try 'north', 'east', 'south', or 'west'.", args[0])
		}
		return Command{Kind: Go, Direction: d}, nil

	case "take", "get", "pickup":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("Take what? Please specify an item.")
		}
		return Command{Kind: Take, Item: strings.Join(args, " ")}, nil

	case "use":
		if len(args) == 0 {
			return Command{}, fmt.Errorf("Use what? Please specify an item.")
		}
		return Command{Kind: Use, Item: strings.Join(args, " ")}, nil

	case "inventory", "inv", "i":
		return Command{Kind: Inventory}, nil

	case "look", "l":
		return Command{Kind: Look}, nil

	case "help", "h":
		return Command{Kind: Help}, nil

	case "quit", "exit", "q":
		return Command{Kind: Quit}, nil

	default:
		return Command{Kind: Unknown, Raw: strings.ToLower(strings.TrimSpace(input))}, nil
	}
}
