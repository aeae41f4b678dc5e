package action

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/micro-editor/tcell/v2"
)

func TestKeyFromEvent_Translation(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Keycode
	}{
		{"printable", tcell.NewEventKey(tcell.KeyRune, 'a', 0, ""), Keycode('a')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', 0, ""), Keycode(' ')},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, 0, ""), KeyTab},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0, ""), KeyEnter},
		{"delete", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0, ""), KeyDelete},
		{"ctrl delete", tcell.NewEventKey(tcell.KeyBackspace, 0, 0, ""), KeyCtrlDelete},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, 0, ""), KeyEscape},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, 0, ""), KeyUp},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift, ""), KeyShiftUp},
		{"ctrl down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModCtrl, ""), KeyCtrlDown},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift, ""), KeyShiftRight},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, 0, ""), KeyHome},
		{"shift home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModShift, ""), KeyShiftHome},
		{"shift end", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModShift, ""), KeyShiftEnd},
		{"ctrl q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl, ""), KeyCtrlQ},
		{"ctrl f", tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl, ""), KeyCtrlF},
		{"non-ascii absorbed", tcell.NewEventKey(tcell.KeyRune, 'é', 0, ""), KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromEvent(tt.ev))
		})
	}
}

func TestKeycode_Printable(t *testing.T) {
	assert.True(t, Keycode('a').Printable())
	assert.True(t, Keycode(' ').Printable())
	assert.True(t, Keycode('~').Printable())
	assert.False(t, KeyEnter.Printable())
	assert.False(t, KeyCtrlQ.Printable())
	assert.False(t, KeyUp.Printable())
}
