package input

import "github.com/lixenwraith/vi-snake/engine"

// Intent is what a key press asks for
// Most intents map onto a simulation command, ToggleAuto and Quit belong to the front end
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentStart
	IntentTogglePause
	IntentRestart
	IntentToggleAuto
	IntentQuit
)

// Command returns the simulation command for the intent, false for front-end intents
func (i Intent) Command() (engine.Command, bool) {
	switch i {
	case IntentMoveUp:
		return engine.CmdMoveUp, true
	case IntentMoveDown:
		return engine.CmdMoveDown, true
	case IntentMoveLeft:
		return engine.CmdMoveLeft, true
	case IntentMoveRight:
		return engine.CmdMoveRight, true
	case IntentStart:
		return engine.CmdStart, true
	case IntentTogglePause:
		return engine.CmdTogglePause, true
	case IntentRestart:
		return engine.CmdRestart, true
	default:
		return engine.CmdNone, false
	}
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
