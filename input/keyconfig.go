package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that are awkward as bare config values
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"comma":     ',',
	"plus":      '+',
	"minus":     '-',
}

// keyByName is the lowercase reverse of tcell.KeyNames
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune {
			continue
		}
		m[strings.ToLower(name)] = k
	}
	return m
}()

// binding is one resolved key name, either a special key or a rune
type binding struct {
	key    tcell.Key
	r      rune
	isRune bool
}

// LoadKeyConfig applies config bindings onto a clone of base
// Each entry maps an action name to a comma-separated key list; listed keys
// replace that action's existing bindings, "none" unbinds it
func LoadKeyConfig(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	kt := base.Clone()

	for name, keyList := range bindings {
		action, ok := ActionByName(name)
		if !ok || action == ActionNone {
			return nil, fmt.Errorf("action %q: %w", name, ErrUnknownAction)
		}

		kt.unbind(action)

		if strings.EqualFold(strings.TrimSpace(keyList), "none") {
			continue
		}

		for _, part := range strings.Split(keyList, ",") {
			b, err := resolveKey(part)
			if err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", name, part, err)
			}
			if b.isRune {
				kt.Runes[b.r] = action
			} else {
				kt.Keys[b.key] = action
			}
		}
	}

	return kt, nil
}

// resolveKey converts a key name to a binding
// Accepts a single rune, a rune alias, or a tcell key name
func resolveKey(s string) (binding, error) {
	// A bare space is its own key, trim only when longer
	if s != " " {
		s = strings.TrimSpace(s)
	}
	if s == "" {
		return binding{}, ErrUnknownKey
	}

	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return binding{r: r, isRune: true}, nil
	}

	lower := strings.ToLower(s)
	if r, ok := runeAliases[lower]; ok {
		return binding{r: r, isRune: true}, nil
	}
	if k, ok := keyByName[lower]; ok {
		return binding{key: k}, nil
	}

	return binding{}, ErrUnknownKey
}
