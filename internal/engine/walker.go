package engine

import (
	"log/slog"

	"github.com/tatianab/detective-quest/internal/mansion"
)

// ProcessTurn applies one command to the session. Moving toward a missing room and unknown commands leave the
// session untouched. After CommandExit the session is ended and further turns do nothing.
func (e *Engine) ProcessTurn(s *Session, cmd Command) []Event {
	if s.Ended() {
		return nil
	}
	s.turns++

	switch cmd {
	case CommandGoLeft:
		return e.move(s, s.current.Left, DirectionLeft)
	case CommandGoRight:
		return e.move(s, s.current.Right, DirectionRight)
	case CommandExit:
		e.logger.Info("exploration ended",
			slog.String("session", s.ID),
			slog.String("room", s.current.Name),
			slog.Int("clues", s.clues.Len()),
			slog.Int("turns", s.turns),
		)
		s.current = nil
		return []Event{{Kind: EventEnded}}
	default:
		e.logger.Debug("invalid option", slog.String("session", s.ID), slog.String("command", cmd.String()))
		return []Event{{Kind: EventInvalidOption, Room: s.current.Name}}
	}
}

func (e *Engine) move(s *Session, to *mansion.Room, dir Direction) []Event {
	if to == nil {
		return []Event{{Kind: EventNoPath, Room: s.current.Name, Direction: dir}}
	}
	return e.enter(s, to)
}

// enter moves the cursor and collects the room's clue if it still has one.
func (e *Engine) enter(s *Session, room *mansion.Room) []Event {
	s.current = room
	events := []Event{{Kind: EventArrived, Room: room.Name}}

	clue, ok := room.Collect()
	if !ok {
		return append(events, Event{Kind: EventNothingNew, Room: room.Name})
	}

	s.clues.Insert(clue)
	events = append(events, Event{Kind: EventClueCollected, Room: room.Name, Clue: clue})
	e.logger.Debug("clue collected", slog.String("session", s.ID), slog.String("room", room.Name))

	if suspect, found := e.suspects.Lookup(clue); found {
		events = append(events, Event{Kind: EventSuspectHint, Room: room.Name, Clue: clue, Suspect: suspect})
	}
	return events
}
