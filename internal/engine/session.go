package engine

import (
	"github.com/tatianab/detective-quest/internal/clues"
	"github.com/tatianab/detective-quest/internal/mansion"
)

// Session is the mutable state of one investigation: the mansion with its collected flags, the clues gathered so
// far and the room the detective stands in. A nil current room means the exploration has ended.
type Session struct {
	ID string

	root    *mansion.Room
	current *mansion.Room
	clues   *clues.Ledger
	turns   int
}

// Current returns the room the detective is in, or nil once the exploration ended.
func (s *Session) Current() *mansion.Room {
	return s.current
}

// Ended reports whether the detective left the mansion.
func (s *Session) Ended() bool {
	return s.current == nil
}

// Map returns the entry room of this session's mansion.
func (s *Session) Map() *mansion.Room {
	return s.root
}

// Clues returns the collected clues in ascending order.
func (s *Session) Clues() []string {
	return s.clues.Texts()
}

// ClueCount returns the number of distinct clues collected.
func (s *Session) ClueCount() int {
	return s.clues.Len()
}

// Turns returns the number of commands processed.
func (s *Session) Turns() int {
	return s.turns
}

// Paths describes where the detective can go from the current room.
type Paths struct {
	Left    string
	Right   string
	DeadEnd bool
}

// Paths returns the onward paths of the current room. It is the zero value once the exploration ended.
func (s *Session) Paths() Paths {
	if s.current == nil {
		return Paths{}
	}
	var p Paths
	if s.current.Left != nil {
		p.Left = s.current.Left.Name
	}
	if s.current.Right != nil {
		p.Right = s.current.Right.Name
	}
	p.DeadEnd = s.current.DeadEnd()
	return p
}
