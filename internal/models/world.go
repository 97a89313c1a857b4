package models

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed world.yaml
var defaultWorldYAML []byte

// World is the full set of rooms, keyed by room name, plus the name of
// the room the player starts in.
type World struct {
	Start string
	Rooms map[string]*Room
}

// roomSpec and worldSpec mirror the layout of world.yaml.
type roomSpec struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Exits        map[string]string `yaml:"exits"`
	Items        []string          `yaml:"items"`
	IsExit       bool              `yaml:"is_exit"`
	RequiredItem string            `yaml:"required_item"`
}

type worldSpec struct {
	Start string     `yaml:"start"`
	Rooms []roomSpec `yaml:"rooms"`
}

// DefaultWorld builds the embedded six-room temple. The fixture is
// static, so every call produces an identical (but independent) world.
func DefaultWorld() (*World, error) {
	return LoadWorld(defaultWorldYAML)
}

// LoadWorld parses a yaml world definition and validates it. After a
// successful load the engine can rely on the starting room existing and
// on every exit leading to a real room.
func LoadWorld(data []byte) (*World, error) {
	var spec worldSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing world: %w", err)
	}

	w := &World{
		Start: spec.Start,
		Rooms: make(map[string]*Room, len(spec.Rooms)),
	}
	for _, rs := range spec.Rooms {
		if rs.Name == "" {
			return nil, fmt.Errorf("world contains a room with no name")
		}
		if _, exists := w.Rooms[rs.Name]; exists {
			return nil, fmt.Errorf("duplicate room %q", rs.Name)
		}
		room := NewRoom(rs.Name, rs.Description)
		room.IsExit = rs.IsExit
		room.RequiredItem = rs.RequiredItem
		for dir, target := range rs.Exits {
			d, ok := ParseDirection(dir)
			if !ok {
				return nil, fmt.Errorf("room %q: unknown direction %q", rs.Name, dir)
			}
			room.AddExit(d, target)
		}
		for _, item := range rs.Items {
			room.AddItem(item)
		}
		w.Rooms[rs.Name] = room
	}

	if err := w.validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Room looks up a room by name.
func (w *World) Room(name string) (*Room, bool) {
	r, ok := w.Rooms[name]
	return r, ok
}

func (w *World) validate() error {
	if w.Start == "" {
		return fmt.Errorf("world has no starting room")
	}
	if _, ok := w.Rooms[w.Start]; !ok {
		return fmt.Errorf("starting room %q does not exist", w.Start)
	}
	for name, room := range w.Rooms {
		for d, target := range room.Exits {
			if _, ok := w.Rooms[target]; !ok {
				return fmt.Errorf("room %q: exit %s leads to unknown room %q", name, d, target)
			}
		}
	}
	return nil
}
