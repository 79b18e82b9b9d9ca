package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tatianab/detective-quest/internal/engine"
	"github.com/tatianab/detective-quest/internal/logging"
	"github.com/tatianab/detective-quest/internal/tui"
)

var (
	movesFlag   []string
	accusedFlag string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a scripted investigation and print every event",
	Example: `  detective-quest simulate --moves r,r,x --accuse Camila
  detective-quest simulate --moves left,left,left --accuse Cris`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		eng, err := newEngine(logging.New(cmd.ErrOrStderr(), level))
		if err != nil {
			return err
		}
		return simulate(cmd.OutOrStdout(), eng, movesFlag, accusedFlag)
	},
}

func init() {
	simulateCmd.Flags().StringSliceVar(&movesFlag, "moves", nil, "Comma separated moves: l/left, r/right, x/exit")
	simulateCmd.Flags().StringVar(&accusedFlag, "accuse", "", "Suspect to accuse once the moves are played")
}

// simulate plays moves on a fresh session. The exploration is ended after the last move if the moves did not
// end it, and the suspect is judged when accused is set.
func simulate(out io.Writer, eng *engine.Engine, moves []string, accused string) error {
	s, events, err := eng.NewSession()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Case: %s\n", eng.Case().Title)
	printEvents(out, events)

	for turn, move := range moves {
		if s.Ended() {
			break
		}
		cmd := tui.ParseCommand(move)
		fmt.Fprintf(out, "--- Turn %d: %s (%s) ---\n", turn+1, move, cmd)
		printEvents(out, eng.ProcessTurn(s, cmd))
	}
	if !s.Ended() {
		printEvents(out, eng.ProcessTurn(s, engine.CommandExit))
	}

	fmt.Fprintf(out, "Collected clues (%d):\n", s.ClueCount())
	for _, clue := range s.Clues() {
		fmt.Fprintf(out, "- %s\n", clue)
	}

	if accused == "" {
		return nil
	}
	j := eng.Judge(s, accused)
	fmt.Fprintf(out, "Accused: %s\nSupporting clues: %d of %d required\nVerdict: %s\n",
		j.Accused, j.Support, j.Required, j.Verdict)
	return nil
}

func printEvents(out io.Writer, events []engine.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventArrived:
			fmt.Fprintf(out, "You are in: %s\n", ev.Room)
		case engine.EventClueCollected:
			fmt.Fprintf(out, "[CLUE] %q\n", ev.Clue)
		case engine.EventSuspectHint:
			fmt.Fprintf(out, "  points to: %s\n", ev.Suspect)
		case engine.EventNothingNew:
			fmt.Fprintln(out, "No new clue in this room.")
		case engine.EventNoPath:
			fmt.Fprintf(out, "There is no path to the %s.\n", ev.Direction)
		case engine.EventInvalidOption:
			fmt.Fprintln(out, "Invalid option.")
		case engine.EventEnded:
			fmt.Fprintln(out, "Exploration ended.")
		}
	}
}
