// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command loop
// serializes every intent on one goroutine so the views never mutate engine
// state directly.
package control

import "fmt"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdRoll CommandType = iota
	CmdSetDiceCount
	CmdToggleRun
	CmdReset
)

func (t CommandType) String() string {
	switch t {
	case CmdRoll:
		return "roll"
	case CmdSetDiceCount:
		return "set-dice-count"
	case CmdToggleRun:
		return "toggle-run"
	case CmdReset:
		return "reset"
	}
	return fmt.Sprintf("command(%d)", int(t))
}

// Command is the message sent from the UI to the command loop.
type Command struct {
	Type  CommandType
	Count int // dice count for CmdSetDiceCount
}

// Handler applies commands. AppManager implements it by routing to the
// engine of the active tab.
type Handler interface {
	Handle(cmd Command) error
}
