package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrKeyConfig is wrapped by every key override error
var ErrKeyConfig = errors.New("key config")

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the reverse of tcell.KeyNames, lower-cased
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig turns key → action name bindings into a sparse override KeyTable
// Keys are single characters, rune aliases or tcell key names ("Up", "Ctrl-C")
// An action of "none" unbinds the key when merged
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Intent),
		Runes: make(map[rune]Intent),
	}

	// Sorted for stable error reporting
	names := make([]string, 0, len(bindings))
	for k := range bindings {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, keyStr := range names {
		intent, err := resolveAction(bindings[keyStr])
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrKeyConfig, keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = intent
			continue
		}
		if k, ok := keysByName[strings.ToLower(keyStr)]; ok {
			kt.Keys[k] = intent
			continue
		}
		return nil, fmt.Errorf("%w: unknown key name %q", ErrKeyConfig, keyStr)
	}

	return kt, nil
}

// resolveRune converts a key string to a rune, accepting single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override entries
// Override entries bound to IntentNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
