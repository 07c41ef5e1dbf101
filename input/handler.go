package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Sink receives simulation commands from the handler
type Sink interface {
	HandleCommand(cmd engine.Command, src engine.Source) bool
	ToggleAutoPilot() bool
}

// Handler translates tcell key events into intents and forwards core commands to a sink
type Handler struct {
	table *KeyTable
	sink  Sink
}

// NewHandler creates a handler with the given bindings
func NewHandler(table *KeyTable, sink Sink) *Handler {
	return &Handler{table: table, sink: sink}
}

// Translate resolves a key event without side effects
func (h *Handler) Translate(ev *tcell.EventKey) Intent {
	return h.table.Lookup(ev)
}

// HandleKey applies the key and returns the resolved intent
// Quit is only reported, the caller owns shutdown
func (h *Handler) HandleKey(ev *tcell.EventKey) Intent {
	intent := h.Translate(ev)
	switch intent {
	case IntentNone, IntentQuit:
	case IntentToggleAuto:
		h.sink.ToggleAutoPilot()
	default:
		if cmd, ok := intent.Command(); ok {
			h.sink.HandleCommand(cmd, engine.SourceHuman)
		}
	}
	return intent
}
