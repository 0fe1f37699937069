package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args opens the TUI", nil, false},
		{"help command", []string{"help"}, true},
		{"help flag on subcommand", []string{"add", "--help"}, true},
		{"short help flag", []string{"-h"}, true},
		{"version", []string{"--version"}, true},
		{"regular command", []string{"list"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}
