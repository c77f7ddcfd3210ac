package ui

// Keybinding represents a keyboard shortcut with its display name.
type Keybinding struct {
	Key  string // actual key(s) to match
	Desc string // description for help display
}

// Global keybindings
var (
	KeyQuit    = Keybinding{Key: "q", Desc: "Quit"}
	KeyQuitAlt = Keybinding{Key: "ctrl+c", Desc: "Quit"}
)

// Navigation keybindings
var (
	KeyUp      = Keybinding{Key: "up", Desc: "Move up"}
	KeyUpAlt   = Keybinding{Key: "k", Desc: "Move up"}
	KeyDown    = Keybinding{Key: "down", Desc: "Move down"}
	KeyDownAlt = Keybinding{Key: "j", Desc: "Move down"}
	KeyEsc     = Keybinding{Key: "esc", Desc: "Back/cancel"}
)

// Selection keybindings
var (
	KeyToggle    = Keybinding{Key: " ", Desc: "Toggle process"}
	KeyToggleAll = Keybinding{Key: "a", Desc: "Toggle all"}
	KeyConfirm   = Keybinding{Key: "enter", Desc: "Send signal"}
)

// Confirm/cancel keybindings
var (
	KeyConfirmYes = Keybinding{Key: "y", Desc: "Confirm"}
	KeyConfirmNo  = Keybinding{Key: "n", Desc: "Cancel"}
)

// matchKey checks if the input matches the keybinding.
func matchKey(input string, keys ...Keybinding) bool {
	for _, k := range keys {
		if input == k.Key {
			return true
		}
	}
	return false
}
