// Package mansion builds the fixed map the detective explores.
//
// The map is a binary tree of rooms. Every room owns its two onward paths and no room is reachable twice, so the
// structure cannot contain cycles. After Build returns, the only thing that changes is whether a room's clue has
// been collected.
package mansion

import (
	"log/slog"

	"github.com/tatianab/detective-quest/internal/errors"
	"github.com/tatianab/detective-quest/internal/models"
)

// MaxDepth bounds the height of a map. Traversals over the tree are recursive.
const MaxDepth = 32

var ErrInvalidMap = errors.NewSentinel("invalid mansion map")

// Room is a location in the mansion.
type Room struct {
	Name        string
	Description string
	Clue        string
	Left        *Room
	Right       *Room

	collected bool
}

// Build creates the room tree described by entry and returns its root. Room names must be non-empty and unique
// within the map.
func Build(entry *models.Location) (*Room, error) {
	if entry == nil {
		return nil, errors.Wrap(ErrInvalidMap, "no entry room")
	}
	seen := make(map[string]bool)
	return build(entry, 1, seen)
}

func build(loc *models.Location, depth int, seen map[string]bool) (*Room, error) {
	if depth > MaxDepth {
		return nil, errors.Wrap(ErrInvalidMap, "map too deep", slog.Int("max_depth", MaxDepth))
	}
	if loc.Name == "" {
		return nil, errors.Wrap(ErrInvalidMap, "room without name", slog.Int("depth", depth))
	}
	if seen[loc.Name] {
		return nil, errors.Wrap(ErrInvalidMap, "duplicate room name", slog.String("room", loc.Name))
	}
	seen[loc.Name] = true

	room := &Room{
		Name:        loc.Name,
		Description: loc.Description,
		Clue:        loc.Clue,
	}
	var err error
	if loc.Left != nil {
		if room.Left, err = build(loc.Left, depth+1, seen); err != nil {
			return nil, err
		}
	}
	if loc.Right != nil {
		if room.Right, err = build(loc.Right, depth+1, seen); err != nil {
			return nil, err
		}
	}
	return room, nil
}

// HasClue reports whether the room holds a clue at all.
func (r *Room) HasClue() bool {
	return r.Clue != ""
}

// Collected reports whether the room's clue has been taken.
func (r *Room) Collected() bool {
	return r.collected
}

// Collect hands out the room's clue the first time it is called. It returns false when the room has no clue or
// the clue was already collected.
func (r *Room) Collect() (string, bool) {
	if r.collected || !r.HasClue() {
		return "", false
	}
	r.collected = true
	return r.Clue, true
}

// DeadEnd reports whether there is no path onward.
func (r *Room) DeadEnd() bool {
	return r.Left == nil && r.Right == nil
}

// Walk visits r and its descendants in pre-order until fn returns false.
func (r *Room) Walk(fn func(room *Room, depth int) bool) {
	walk(r, 0, fn)
}

func walk(r *Room, depth int, fn func(*Room, int) bool) bool {
	if r == nil {
		return true
	}
	return fn(r, depth) && walk(r.Left, depth+1, fn) && walk(r.Right, depth+1, fn)
}

// Count returns the number of rooms and how many of them still hold an uncollected clue.
func (r *Room) Count() (rooms, pending int) {
	r.Walk(func(room *Room, _ int) bool {
		rooms++
		if room.HasClue() && !room.Collected() {
			pending++
		}
		return true
	})
	return rooms, pending
}
