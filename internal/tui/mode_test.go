package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		want string
		mode Mode
	}{
		{"normal", ModeNormal},
		{"input", ModeInput},
		{"confirm", ModeConfirm},
		{"alert", ModeAlert},
		{"help", ModeHelp},
		{"unknown", Mode(99)},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	assert.True(t, ModeInput.IsInputMode())
	assert.False(t, ModeNormal.IsInputMode())
	assert.False(t, ModeConfirm.IsInputMode())
}

func TestConfirmAction_String(t *testing.T) {
	assert.Equal(t, "", ConfirmNone.String())
	assert.Equal(t, "complete", ConfirmComplete.String())
	assert.Equal(t, "delete", ConfirmDelete.String())
}

func TestScreen_Next(t *testing.T) {
	assert.Equal(t, ScreenStore, ScreenTasks.Next())
	assert.Equal(t, ScreenTasks, ScreenStore.Next())
	assert.Equal(t, "tasks", ScreenTasks.String())
	assert.Equal(t, "store", ScreenStore.String())
}
