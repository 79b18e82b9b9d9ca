package engine

// Command is a decoded player choice.
type Command int

const (
	CommandUnknown Command = iota
	CommandGoLeft
	CommandGoRight
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandGoLeft:
		return "go_left"
	case CommandGoRight:
		return "go_right"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// EventKind tells the presentation layer what happened during a turn.
type EventKind int

const (
	// EventArrived is emitted whenever the detective enters a room.
	EventArrived EventKind = iota
	// EventClueCollected carries a clue seen for the first time.
	EventClueCollected
	// EventSuspectHint names the suspect a freshly collected clue points to.
	EventSuspectHint
	// EventNothingNew means the room had no clue left to collect.
	EventNothingNew
	// EventNoPath means the requested direction leads nowhere. The detective did not move.
	EventNoPath
	// EventInvalidOption means the command was not recognised. The detective did not move.
	EventInvalidOption
	// EventEnded means the detective left the mansion.
	EventEnded
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "arrived"
	case EventClueCollected:
		return "clue_collected"
	case EventSuspectHint:
		return "suspect_hint"
	case EventNothingNew:
		return "nothing_new"
	case EventNoPath:
		return "no_path"
	case EventInvalidOption:
		return "invalid_option"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind      EventKind
	Room      string
	Clue      string
	Suspect   string
	Direction Direction
}
