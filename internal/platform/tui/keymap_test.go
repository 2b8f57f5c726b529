package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snowball-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a steers left", runeKey('a'), core.ActionLeft, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d steers right", runeKey('d'), core.ActionRight, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space jumps", runeKey(' '), core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('d'), &frame) {
		t.Error("MapKeyToFrame(d) reported quit")
	}
	km.MapKeyToFrame(runeKey(' '), &frame)

	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionJump) {
		t.Error("frame should hold both Right and Jump")
	}
	if frame.Has(core.ActionLeft) {
		t.Error("frame should not hold Left")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action MenuAction
	}{
		{"k", runeKey('k'), MenuActionUp},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{"t", runeKey('t'), MenuActionNextTag},
		{"q", runeKey('q'), MenuActionQuit},
		{"x", runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.action)
			}
		})
	}
}
