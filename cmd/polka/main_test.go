package main

import (
	"testing"

	"github.com/cloudcmds/polka/stmt"
	"github.com/stretchr/testify/require"
)

func TestParseStack(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected stmt.Stack
		wantErr  bool
	}{
		{"empty", "", stmt.Stack{}, false},
		{"single", "7", stmt.Stack{7}, false},
		{"multiple", "1,2,3", stmt.Stack{1, 2, 3}, false},
		{"spaces tolerated", "1, -2, 3", stmt.Stack{1, -2, 3}, false},
		{"invalid", "1,x", nil, true},
		{"out of range", "99999999999", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := parseStack(tt.value)
			if tt.wantErr {
				require.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}
