package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"safar/internal/config"
)

// IsUp checks if the key matches any "up" navigation key.
func IsUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavUp, msg.String())
}

// IsDown checks if the key matches any "down" navigation key.
func IsDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavDown, msg.String())
}

// IsLeft checks if the key matches any "left" navigation key.
func IsLeft(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavLeft, msg.String())
}

// IsRight checks if the key matches any "right" navigation key.
func IsRight(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavRight, msg.String())
}

// IsConfirm checks if the key matches any confirm key.
func IsConfirm(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.Confirm, msg.String())
}

// IsBack checks if the key matches any back/cancel key.
func IsBack(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.Back, msg.String())
}

// IsSOS checks if the key matches the SOS action.
func IsSOS(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.SOS
}

// IsCall checks if the key matches the call action.
func IsCall(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Call
}

// IsChat checks if the key matches the chat action.
func IsChat(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Chat
}

// IsQuickBook checks if the key matches the quick-book action.
func IsQuickBook(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.QuickBook
}

// IsVoice checks if the key matches the voice-activation action.
func IsVoice(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Voice
}
