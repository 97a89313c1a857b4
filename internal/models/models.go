package models

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a player can move in.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in canonical display order.
// Exit listings follow this order so output is stable.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts text like "North" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	}
	return 0, false
}

// Room is a single location in the temple. Its name is its identity:
// exits refer to other rooms by name, and the World map is keyed by it.
type Room struct {
	Name         string
	Description  string
	Exits        map[Direction]string
	Items        []string
	IsExit       bool
	RequiredItem string
}

// NewRoom creates an empty room with no exits or items.
func NewRoom(name, description string) *Room {
	return &Room{
		Name:        name,
		Description: description,
		Exits:       make(map[Direction]string),
	}
}

// AddExit records a one-way connection to the named room. The target is
// not checked here; the world loader validates all exits after loading.
func (r *Room) AddExit(d Direction, target string) {
	r.Exits[d] = target
}

// AddItem places an item in the room. Duplicates are allowed.
func (r *Room) AddItem(item string) {
	r.Items = append(r.Items, item)
}

// RemoveItem removes the first item matching the given name,
// ignoring case, and reports whether anything was removed.
func (r *Room) RemoveItem(item string) bool {
	for i, have := range r.Items {
		if strings.EqualFold(have, item) {
			r.Items = append(r.Items[:i], r.Items[i+1:]...)
			return true
		}
	}
	return false
}

// AvailableExits returns the room's exit directions in canonical order.
func (r *Room) AvailableExits() []Direction {
	var dirs []Direction
	for _, d := range Directions() {
		if _, ok := r.Exits[d]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Player tracks where the player is and what they are carrying.
// Location always names a room present in the world; the loader
// guarantees this for the starting room and every exit target.
type Player struct {
	Location  string
	Inventory []string
}

// NewPlayer creates a player at the given starting room with nothing.
func NewPlayer(start string) *Player {
	return &Player{Location: start}
}

// TakeItem appends the item to the inventory as given. The caller is
// responsible for having removed it from wherever it came from.
func (p *Player) TakeItem(item string) {
	p.Inventory = append(p.Inventory, item)
}

// HasItem reports whether the inventory contains the item, ignoring case.
func (p *Player) HasItem(item string) bool {
	for _, have := range p.Inventory {
		if strings.EqualFold(have, item) {
			return true
		}
	}
	return false
}

// InventorySummary renders the inventory one item per line,
// in the order items were picked up.
func (p *Player) InventorySummary() string {
	if len(p.Inventory) == 0 {
		return "Your inventory is empty."
	}
	var b strings.Builder
	b.WriteString("You are carrying:\n")
	for _, item := range p.Inventory {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
