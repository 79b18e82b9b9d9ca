package engine

import (
	"log/slog"

	"github.com/tatianab/detective-quest/internal/clues"
	"github.com/tatianab/detective-quest/internal/suspects"
)

type Verdict string

const (
	VerdictGuilty       Verdict = "GUILTY"
	VerdictInsufficient Verdict = "INSUFFICIENT"
)

// Judgment is the outcome of an accusation.
type Judgment struct {
	Accused  string
	Support  int
	Required int
	Verdict  Verdict
	// Evidence lists the supporting clues in ascending order.
	Evidence []string
}

// Tally counts the collected clues whose registered suspect is accused. Clues without a registered suspect never
// count, whatever the accused name.
func Tally(collected *clues.Ledger, ledger *suspects.Ledger, accused string) int {
	return collected.CountMatching(func(clue string) bool {
		suspect, ok := ledger.Lookup(clue)
		return ok && suspect == accused
	})
}

// Judge weighs the session's clues against accused. The name must match a registered suspect exactly. Judge does
// not modify the session.
func (e *Engine) Judge(s *Session, accused string) Judgment {
	support := Tally(s.clues, e.suspects, accused)

	var evidence []string
	for clue := range s.clues.All() {
		if suspect, ok := e.suspects.Lookup(clue); ok && suspect == accused {
			evidence = append(evidence, clue)
		}
	}

	j := Judgment{
		Accused:  accused,
		Support:  support,
		Required: e.minSupport,
		Verdict:  VerdictInsufficient,
		Evidence: evidence,
	}
	if support >= e.minSupport {
		j.Verdict = VerdictGuilty
	}

	e.logger.Info("accusation judged",
		slog.String("session", s.ID),
		slog.String("accused", accused),
		slog.Int("support", support),
		slog.String("verdict", string(j.Verdict)),
	)
	return j
}
