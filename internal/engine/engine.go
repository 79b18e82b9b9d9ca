package engine

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/tatianab/detective-quest/internal/clues"
	"github.com/tatianab/detective-quest/internal/errors"
	"github.com/tatianab/detective-quest/internal/mansion"
	"github.com/tatianab/detective-quest/internal/models"
	"github.com/tatianab/detective-quest/internal/suspects"
)

// Engine runs investigations of one case. The suspect ledger is built once and shared by every session the engine
// creates.
type Engine struct {
	kase       *models.Case
	suspects   *suspects.Ledger
	minSupport int
	logger     *slog.Logger
}

func NewEngine(c *models.Case, logger *slog.Logger) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate case", slog.String("case", c.ShortName))
	}
	// Fail at startup rather than on the first session.
	if _, err := mansion.Build(c.Entry); err != nil {
		return nil, errors.Wrap(err, "build mansion", slog.String("case", c.ShortName))
	}

	ledger := suspects.New(logger)
	for _, a := range c.Clues {
		ledger.Register(a.Clue, a.Suspect)
	}
	logger.Info("suspect ledger ready",
		slog.String("case", c.ShortName),
		slog.Int("associations", ledger.Len()),
		slog.Int("buckets", ledger.Buckets()),
	)

	return &Engine{
		kase:       c,
		suspects:   ledger,
		minSupport: c.MinSupport,
		logger:     logger.With("source", "Engine"),
	}, nil
}

// Case returns the case definition the engine was built from.
func (e *Engine) Case() *models.Case {
	return e.kase
}

// Suspects returns the shared, read-only suspect ledger.
func (e *Engine) Suspects() *suspects.Ledger {
	return e.suspects
}

// MinSupport is the number of clues needed for a guilty verdict.
func (e *Engine) MinSupport() int {
	return e.minSupport
}

// NewSession builds a fresh mansion and places the detective in the entry room. The returned events describe that
// first arrival.
func (e *Engine) NewSession() (*Session, []Event, error) {
	root, err := mansion.Build(e.kase.Entry)
	if err != nil {
		return nil, nil, errors.Wrap(err, "build mansion", slog.String("case", e.kase.ShortName))
	}

	s := &Session{
		ID:    uuid.NewString(),
		root:  root,
		clues: clues.New(),
	}
	e.logger.Info("session started", slog.String("session", s.ID), slog.String("case", e.kase.ShortName))
	return s, e.enter(s, root), nil
}
