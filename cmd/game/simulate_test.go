package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tatianab/detective-quest/internal/engine"
	"github.com/tatianab/detective-quest/internal/logging"
	"github.com/tatianab/detective-quest/internal/models"
)

func newSimulationEngine(t *testing.T) *engine.Engine {
	t.Helper()
	c, err := models.DefaultCase()
	require.NoError(t, err)
	eng, err := engine.NewEngine(c, logging.Discard())
	require.NoError(t, err)
	return eng
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name     string
		moves    []string
		accused  string
		contains []string
		absent   []string
	}{
		{
			name:    "kitchen route convicts Camila",
			moves:   []string{"r", "right", "x"},
			accused: "Camila",
			contains: []string{
				"You are in: Pantry",
				"Collected clues (3):",
				"Supporting clues: 2 of 2 required",
				"Verdict: GUILTY",
			},
		},
		{
			name:    "blocked path and invalid option",
			moves:   []string{"r", "l", "jump"},
			accused: "Carlos",
			contains: []string{
				"There is no path to the left.",
				"Invalid option.",
				"Exploration ended.",
				"Verdict: INSUFFICIENT",
			},
		},
		{
			name:     "moves after exit are ignored",
			moves:    []string{"x", "l"},
			contains: []string{"Collected clues (1):"},
			absent:   []string{"Living Room", "Verdict"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, simulate(&out, newSimulationEngine(t), tt.moves, tt.accused))
			for _, s := range tt.contains {
				require.Contains(t, out.String(), s)
			}
			for _, s := range tt.absent {
				require.NotContains(t, out.String(), s)
			}
		})
	}
}
