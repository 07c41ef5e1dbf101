package engine

import "github.com/lixenwraith/vi-snake/core"

// Command is the input alphabet the simulation understands
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdStart
	CmdTogglePause
	CmdRestart
)

var commandNames = map[Command]string{
	CmdNone:        "none",
	CmdMoveUp:      "move_up",
	CmdMoveDown:    "move_down",
	CmdMoveLeft:    "move_left",
	CmdMoveRight:   "move_right",
	CmdStart:       "start",
	CmdTogglePause: "toggle_pause",
	CmdRestart:     "restart",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the heading carried by a move command, DirNone otherwise
func (c Command) Direction() core.Direction {
	switch c {
	case CmdMoveUp:
		return core.DirUp
	case CmdMoveDown:
		return core.DirDown
	case CmdMoveLeft:
		return core.DirLeft
	case CmdMoveRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// IsMove reports whether c is a direction command
func (c Command) IsMove() bool {
	return c.Direction() != core.DirNone
}

// MoveCommand maps a heading to its move command
func MoveCommand(d core.Direction) Command {
	switch d {
	case core.DirUp:
		return CmdMoveUp
	case core.DirDown:
		return CmdMoveDown
	case core.DirLeft:
		return CmdMoveLeft
	case core.DirRight:
		return CmdMoveRight
	default:
		return CmdNone
	}
}

// Source identifies who issued a command
// Human direction commands are dropped while the auto pilot drives
type Source uint8

const (
	SourceHuman Source = iota
	SourceAgent
)

func (s Source) String() string {
	if s == SourceAgent {
		return "agent"
	}
	return "human"
}
