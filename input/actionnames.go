package input

// actionRegistry maps canonical action names to intents
// Used by the key config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"move_up":      IntentMoveUp,
	"move_down":    IntentMoveDown,
	"move_left":    IntentMoveLeft,
	"move_right":   IntentMoveRight,
	"start":        IntentStart,
	"toggle_pause": IntentTogglePause,
	"restart":      IntentRestart,
	"toggle_auto":  IntentToggleAuto,
	"quit":         IntentQuit,
}

var intentNames = func() map[Intent]string {
	m := make(map[Intent]string, len(actionRegistry))
	for name, intent := range actionRegistry {
		m[intent] = name
	}
	return m
}()

// ActionIntent returns the intent bound to an action name
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}
