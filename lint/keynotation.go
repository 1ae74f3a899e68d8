// Copyright © 2024 The hjkls authors

package lint

import (
	"strconv"
	"strings"
)

// NormalizeKeyNotation rewrites a key token like <cr> into the
// canonical help form <CR>. changed is false when the token is
// already canonical or unknown. Reference: :h key-notation
func NormalizeKeyNotation(key string) (string, bool) {
	if !strings.HasPrefix(key, "<") || !strings.HasSuffix(key, ">") {
		return "", false
	}
	inner := key[1 : len(key)-1]
	if inner == "" {
		return "", false
	}

	mods, name := splitModifiers(inner)

	normName, known := canonicalKeyName(name)
	if !known {
		if len(mods) == 0 {
			return "", false
		}
		// Unknown key with modifiers: still normalize the modifiers.
		normName = name
	}

	result := "<" + joinModifiers(mods) + normName + ">"
	if result == key {
		return "", false
	}
	return result, true
}

// splitModifiers separates leading single-letter modifiers (C, S, M,
// A, D, T) from the key name. The key is every part after the leading
// run of modifiers, joined back with dashes; the last part is never
// taken as a modifier.
func splitModifiers(inner string) ([]string, string) {
	parts := strings.Split(inner, "-")
	if len(parts) == 1 {
		return nil, inner
	}
	modEnd := 0
	for i, part := range parts[:len(parts)-1] {
		if len(part) != 1 {
			break
		}
		if !strings.ContainsRune("CSMADT", rune(part[0]&^0x20)) {
			break
		}
		modEnd = i + 1
	}
	if modEnd == 0 {
		return nil, inner
	}
	mods := make([]string, modEnd)
	for i := 0; i < modEnd; i++ {
		mods[i] = strings.ToUpper(parts[i])
	}
	return mods, strings.Join(parts[modEnd:], "-")
}

func joinModifiers(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	return strings.Join(mods, "-") + "-"
}

// canonicalKeyName maps a key name (any casing) to its canonical
// spelling. Function keys (<F1>) and keypad keys (<kPlus>, <k5>) are
// handled structurally; everything else comes from the table.
func canonicalKeyName(name string) (string, bool) {
	lower := strings.ToLower(name)

	// Function keys: f + number.
	if len(lower) > 1 && lower[0] == 'f' {
		if _, err := strconv.Atoi(lower[1:]); err == nil {
			return "F" + lower[1:], true
		}
	}

	// Keypad keys: k + name or digit.
	if len(lower) > 1 && lower[0] == 'k' {
		if kp, ok := keypadNames[lower[1:]]; ok {
			return kp, true
		}
		if len(lower) == 2 && lower[1] >= '0' && lower[1] <= '9' {
			return "k" + lower[1:], true
		}
	}

	if canon, ok := keyNames[lower]; ok {
		return canon, true
	}
	return "", false
}

var keyNames = map[string]string{
	// Special keys.
	"cr": "CR", "return": "CR", "enter": "CR",
	"nl": "NL", "newline": "NL", "linefeed": "NL", "lf": "NL",
	"tab": "Tab",
	"esc": "Esc", "escape": "Esc",
	"space": "Space", "sp": "Space",
	"bs": "BS", "backspace": "BS",
	"del": "Del", "delete": "Del",
	"insert": "Insert", "ins": "Insert",
	"home": "Home",
	"end":  "End",
	"pageup": "PageUp", "pu": "PageUp",
	"pagedown": "PageDown", "pd": "PageDown",
	"nul": "Nul", "null": "Nul",
	"bar":    "Bar",
	"bslash": "Bslash",
	"lt":     "lt",

	// Arrow keys.
	"up": "Up", "down": "Down", "left": "Left", "right": "Right",

	// Special identifiers.
	"leader":      "Leader",
	"localleader": "LocalLeader",
	"plug":        "Plug",
	"sid":         "SID",
	"snr":         "SNR",
	"cmd":         "Cmd",

	// Scroll wheel.
	"scrollwheelup":    "ScrollWheelUp",
	"scrollwheeldown":  "ScrollWheelDown",
	"scrollwheelleft":  "ScrollWheelLeft",
	"scrollwheelright": "ScrollWheelRight",

	// Mouse events.
	"leftmouse": "LeftMouse", "rightmouse": "RightMouse",
	"middlemouse": "MiddleMouse",
	"leftdrag":    "LeftDrag", "rightdrag": "RightDrag",
	"leftrelease": "LeftRelease", "rightrelease": "RightRelease",
	"middlerelease": "MiddleRelease",
	"x1mouse":       "X1Mouse", "x2mouse": "X2Mouse",
	"x1drag": "X1Drag", "x2drag": "X2Drag",
	"x1release": "X1Release", "x2release": "X2Release",

	// Other special keys.
	"help": "Help", "undo": "Undo", "ignore": "Ignore", "drop": "Drop",
	"focusgained": "FocusGained", "focuslost": "FocusLost",
	"cursorhold": "CursorHold",
}

var keypadNames = map[string]string{
	"plus": "kPlus", "add": "kPlus",
	"minus": "kMinus", "subtract": "kMinus",
	"multiply": "kMultiply",
	"divide":   "kDivide",
	"enter":    "kEnter",
	"point":    "kPoint", "decimal": "kPoint",
	"home": "kHome", "end": "kEnd",
	"pageup": "kPageUp", "pagedown": "kPageDown",
	"insert": "kInsert",
	"del":    "kDel", "delete": "kDel",
}
