package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/detective-quest/internal/engine"
	"github.com/tatianab/detective-quest/internal/errors"
	"github.com/tatianab/detective-quest/internal/logging"
	"github.com/tatianab/detective-quest/internal/narrator"
)

type sessionState int

const (
	stateExploring sessionState = iota
	stateAccusing
	stateVerdict
	stateError
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	narrator  narrator.Narrator
	logger    *slog.Logger
	session   *engine.Session
	judgment  *engine.Judgment
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
}

var (
	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	clueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")).
			Bold(true)

	narrationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AFAFD7")).
			Italic(true)

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	guiltyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87D787")).
			Bold(true)
)

// NewModel starts a session on eng. nar may be nil to disable narration.
func NewModel(eng *engine.Engine, nar narrator.Narrator, logger *slog.Logger) (model, error) {
	ti := textinput.New()
	ti.Placeholder = "Name of the suspect..."
	ti.CharLimit = 49
	ti.Width = 40

	m := model{
		state:     stateExploring,
		engine:    eng,
		narrator:  nar,
		logger:    logger.With("source", "TUI"),
		textInput: ti,
		viewport:  viewport.New(80, 20),
		width:     100,
		height:    26,
	}
	if err := m.startSession(); err != nil {
		return model{}, err
	}
	return m, nil
}

func (m *model) startSession() error {
	session, events, err := m.engine.NewSession()
	if err != nil {
		return errors.Wrap(err, "start session")
	}
	m.session = session
	m.judgment = nil
	m.state = stateExploring
	m.textInput.Reset()
	m.textInput.Blur()

	c := m.engine.Case()
	m.gameLog = ""
	m.appendLog(titleStyle.Render(c.Title))
	if c.Intro != "" {
		m.appendLog(gameStyle.Width(m.logWidth()).Render(strings.TrimSpace(c.Intro)))
	}
	m.appendEvents(events)
	return nil
}

func (m model) Init() tea.Cmd {
	return m.narrate()
}

type narrationMsg struct {
	room string
	text string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch m.state {
		case stateExploring:
			if command, ok := commandForKey(msg); ok {
				return m, m.processTurn(command)
			}
		case stateAccusing:
			if msg.Type == tea.KeyEnter {
				accused := strings.TrimSpace(m.textInput.Value())
				if accused == "" {
					return m, nil
				}
				m.judge(accused)
				return m, nil
			}
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		case stateVerdict:
			switch msg.String() {
			case "n":
				if err := m.startSession(); err != nil {
					m.err = err
					m.state = stateError
					return m, nil
				}
				return m, m.narrate()
			case "q", "enter":
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)

	case narrationMsg:
		if msg.err != nil {
			m.logger.Warn("narration failed", slog.String("room", msg.room), errors.SlogError(msg.err))
			return m, nil
		}
		if msg.text != "" && m.session.Current() != nil && m.session.Current().Name == msg.room {
			m.appendLog(narrationStyle.Width(m.logWidth()).Render(msg.text))
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// processTurn hands one command to the engine and renders what happened.
func (m *model) processTurn(command engine.Command) tea.Cmd {
	events := m.engine.ProcessTurn(m.session, command)
	m.appendEvents(events)

	if m.session.Ended() {
		m.state = stateAccusing
		m.appendLog(m.renderClueReview())
		return m.textInput.Focus()
	}
	for _, ev := range events {
		if ev.Kind == engine.EventArrived {
			return m.narrate()
		}
	}
	return nil
}

func (m *model) judge(accused string) {
	j := m.engine.Judge(m.session, accused)
	m.judgment = &j
	m.state = stateVerdict
	m.textInput.Blur()
	m.appendLog(m.renderJudgment(j))
}

func (m *model) appendEvents(events []engine.Event) {
	for _, ev := range events {
		if line := m.renderEvent(ev); line != "" {
			m.appendLog(line)
		}
	}
}

func (m *model) appendLog(s string) {
	m.gameLog += s + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateExploring, stateAccusing, stateVerdict:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)
		parts := []string{mainView}
		if m.state == stateAccusing {
			parts = append(parts, "\n"+m.textInput.View())
		}
		parts = append(parts, "\n"+helpStyle.Render(m.help()))
		s = lipgloss.JoinVertical(lipgloss.Left, parts...)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) help() string {
	switch m.state {
	case stateAccusing:
		return "Type the name of the suspect you accuse and press Enter."
	case stateVerdict:
		return "n: new investigation  q: quit"
	default:
		return "l/←: go left  r/→: go right  x: leave and accuse  ↑/↓: scroll  esc: quit"
	}
}

func (m model) renderEvent(ev engine.Event) string {
	switch ev.Kind {
	case engine.EventArrived:
		return roomStyle.Width(m.logWidth()).Render("You are in: " + ev.Room)
	case engine.EventClueCollected:
		return clueStyle.Render(fmt.Sprintf("[CLUE] %q", ev.Clue))
	case engine.EventSuspectHint:
		return gameStyle.Render("  This clue points to: " + ev.Suspect)
	case engine.EventNothingNew:
		return helpStyle.Render("No new clue in this room.")
	case engine.EventNoPath:
		return alertStyle.Render(fmt.Sprintf("There is no path to the %s.", ev.Direction))
	case engine.EventInvalidOption:
		return alertStyle.Render("Invalid option.")
	case engine.EventEnded:
		return gameStyle.Render("You leave the rooms behind. Time to name the culprit.")
	}
	return ""
}

func (m model) renderClueReview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("THE JUDGMENT"))
	b.WriteString("\nYou review the clues you collected:\n")
	clues := m.session.Clues()
	if len(clues) == 0 {
		b.WriteString("(none)\n")
	}
	for _, clue := range clues {
		b.WriteString("- " + clue + "\n")
	}
	if names := m.engine.Case().SuspectNames(); len(names) > 0 {
		b.WriteString("\nSuspects: " + strings.Join(names, ", "))
	}
	return gameStyle.Width(m.logWidth()).Render(b.String())
}

func (m model) renderJudgment(j engine.Judgment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ACCUSED: %s\nClues pointing to %s: %d\n", j.Accused, j.Accused, j.Support)
	for _, clue := range j.Evidence {
		b.WriteString("- " + clue + "\n")
	}
	if j.Verdict == engine.VerdictGuilty {
		b.WriteString(guiltyStyle.Render(fmt.Sprintf("VERDICT: GUILTY! The accusation is sustained by %d clues.", j.Support)))
		b.WriteString("\nJustice has been served. Well done, detective.")
	} else {
		b.WriteString(alertStyle.Render(fmt.Sprintf("VERDICT: INSUFFICIENT! %d of the %d clues needed.", j.Support, j.Required)))
		b.WriteString("\nThere is not enough evidence. The culprit escaped.")
	}
	return gameStyle.Width(m.logWidth()).Render(b.String())
}

func (m model) renderState() string {
	if m.session == nil {
		return ""
	}

	location := titleStyle.Render("LOCATION") + "\n"
	paths := titleStyle.Render("PATHS") + "\n"
	if room := m.session.Current(); room != nil {
		location += room.Name + "\n\n"
		p := m.session.Paths()
		if p.Left != "" {
			paths += "[l] " + p.Left + "\n"
		}
		if p.Right != "" {
			paths += "[r] " + p.Right + "\n"
		}
		if p.DeadEnd {
			paths += "Dead end.\n"
		}
		paths += "[x] Leave and accuse\n\n"
	} else {
		location += "(outside)\n\n"
		paths += "(none)\n\n"
	}

	clues := titleStyle.Render(fmt.Sprintf("CLUES (%d)", m.session.ClueCount())) + "\n"
	collected := m.session.Clues()
	if len(collected) == 0 {
		clues += "(none)"
	}
	for _, clue := range collected {
		clues += "- " + clue + "\n"
	}

	content := location + paths + clues

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// narrate asks the narrator to describe the current room.
func (m model) narrate() tea.Cmd {
	room := m.session.Current()
	if m.narrator == nil || room == nil {
		return nil
	}
	scene := narrator.Scene{
		CaseTitle:   m.engine.Case().Title,
		Room:        room.Name,
		Description: room.Description,
		Clue:        room.Clue,
	}
	ctx := logging.WithAttrs(context.Background(), slog.String("session", m.session.ID))
	nar := m.narrator
	return func() tea.Msg {
		text, err := nar.DescribeRoom(ctx, scene)
		return narrationMsg{room: scene.Room, text: text, err: err}
	}
}

// commandForKey decodes a key press while exploring. Keys that are not printable, such as the vertical arrows,
// are left to the viewport.
func commandForKey(msg tea.KeyMsg) (engine.Command, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return engine.CommandGoLeft, true
	case tea.KeyRight:
		return engine.CommandGoRight, true
	case tea.KeyRunes, tea.KeySpace:
		return ParseCommand(string(msg.Runes)), true
	}
	return engine.CommandUnknown, false
}

// ParseCommand decodes a typed choice. Anything unrecognised is engine.CommandUnknown.
func ParseCommand(s string) engine.Command {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return engine.CommandGoLeft
	case "r", "right":
		return engine.CommandGoRight
	case "x", "exit":
		return engine.CommandExit
	}
	return engine.CommandUnknown
}

func Run(eng *engine.Engine, nar narrator.Narrator, logger *slog.Logger) error {
	m, err := NewModel(eng, nar, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
