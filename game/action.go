package game

import "fmt"

// RequestItem is something a robot can ask for at the home column.
type RequestItem int

const (
	RequestRadar RequestItem = iota
	RequestTrap
)

func (r RequestItem) String() string {
	switch r {
	case RequestRadar:
		return "RADAR"
	case RequestTrap:
		return "TRAP"
	default:
		panic(fmt.Sprintf("unknown request item: %d", int(r)))
	}
}

// ActionKind discriminates the commands a robot can issue.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionWait
	ActionDig
	ActionRequest
)

// Action is one robot's command for the current turn, optionally
// annotated with a comment the referee echoes in the viewer.
type Action struct {
	Kind    ActionKind
	X, Y    int
	Item    RequestItem
	Comment string
}

func Move(x, y int) Action { return Action{Kind: ActionMove, X: x, Y: y} }

func Wait() Action { return Action{Kind: ActionWait} }

func Dig(x, y int) Action { return Action{Kind: ActionDig, X: x, Y: y} }

func Request(item RequestItem) Action {
	return Action{Kind: ActionRequest, Item: item}
}

// BackToHQ moves toward the home column along the current row.
func BackToHQ(pos Position) Action { return Move(0, pos.Y) }

// WithComment attaches a viewer comment.
func (a Action) WithComment(msg string) Action {
	a.Comment = msg
	return a
}

// String renders the wire form the referee expects.
func (a Action) String() string {
	var s string
	switch a.Kind {
	case ActionMove:
		s = fmt.Sprintf("MOVE %d %d", a.X, a.Y)
	case ActionWait:
		s = "WAIT"
	case ActionDig:
		s = fmt.Sprintf("DIG %d %d", a.X, a.Y)
	case ActionRequest:
		s = fmt.Sprintf("REQUEST %s", a.Item)
	default:
		panic(fmt.Sprintf("unknown action kind: %d", int(a.Kind)))
	}
	if a.Comment != "" {
		s += " " + a.Comment
	}
	return s
}
