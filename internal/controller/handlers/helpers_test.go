package handlers

import (
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCommand(t *testing.T) {
	assert.True(t, isCommand("/mark"))
	assert.True(t, isCommand("  /history"))
	assert.False(t, isCommand("2024-01-10"))
}

func TestParseHistoryInput(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "iso date", input: "2024-01-10", want: time.Date(2024, 1, 10, 0, 0, 0, 0, loc)},
		{name: "surrounding spaces", input: " 2024-01-10\n", want: time.Date(2024, 1, 10, 0, 0, 0, 0, loc)},
		{name: "dotted", input: "10.01.2024", wantErr: true},
		{name: "impossible date", input: "2024-02-30", wantErr: true},
		{name: "text", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHistoryInput(tt.input, loc)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
