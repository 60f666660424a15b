package menu

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Accelerator syntax follows the menu definition format: modifier
// tokens joined with '+' and terminated by a single key token, e.g.
// "CmdOrCtrl+Shift+N". CmdOrCtrl resolves to the platform's primary
// shortcut modifier (Command on macOS, Control elsewhere).

var modifierTokens = map[string]fyne.KeyModifier{
	"CmdOrCtrl":        fyne.KeyModifierShortcutDefault,
	"CommandOrControl": fyne.KeyModifierShortcutDefault,
	"Shift":            fyne.KeyModifierShift,
	"Alt":              fyne.KeyModifierAlt,
	"Ctrl":             fyne.KeyModifierControl,
	"Control":          fyne.KeyModifierControl,
	"Cmd":              fyne.KeyModifierSuper,
	"Command":          fyne.KeyModifierSuper,
	"Super":            fyne.KeyModifierSuper,
}

var namedKeys = map[string]fyne.KeyName{
	"Enter":     fyne.KeyReturn,
	"Return":    fyne.KeyReturn,
	"Escape":    fyne.KeyEscape,
	"Space":     fyne.KeySpace,
	"Tab":       fyne.KeyTab,
	"Backspace": fyne.KeyBackspace,
	"Delete":    fyne.KeyDelete,
	"Up":        fyne.KeyUp,
	"Down":      fyne.KeyDown,
	"Left":      fyne.KeyLeft,
	"Right":     fyne.KeyRight,
	"Home":      fyne.KeyHome,
	"End":       fyne.KeyEnd,
	"PageUp":    fyne.KeyPageUp,
	"PageDown":  fyne.KeyPageDown,
}

func parseAccelerator(s string) (*desktop.CustomShortcut, error) {
	tokens := strings.Split(s, "+")
	if len(tokens) == 0 || s == "" {
		return nil, fmt.Errorf("empty accelerator")
	}

	var modifier fyne.KeyModifier
	for _, token := range tokens[:len(tokens)-1] {
		m, ok := modifierTokens[token]
		if !ok {
			return nil, fmt.Errorf("unknown modifier %q", token)
		}
		modifier |= m
	}

	key, err := parseKeyToken(tokens[len(tokens)-1])
	if err != nil {
		return nil, err
	}

	return &desktop.CustomShortcut{KeyName: key, Modifier: modifier}, nil
}

func parseKeyToken(token string) (fyne.KeyName, error) {
	if token == "" {
		return "", fmt.Errorf("missing key")
	}
	if _, isModifier := modifierTokens[token]; isModifier {
		return "", fmt.Errorf("accelerator %q ends in a modifier", token)
	}
	if key, ok := namedKeys[token]; ok {
		return key, nil
	}
	if len(token) == 1 {
		c := token[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return fyne.KeyName(c), nil
		}
		return "", fmt.Errorf("unknown key %q", token)
	}
	// Function keys F1..F12.
	if token[0] == 'F' {
		switch token[1:] {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12":
			return fyne.KeyName(token), nil
		}
	}
	return "", fmt.Errorf("unknown key %q", token)
}
