// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	input, err := ParseInput(" 10 ", "3", ByTeamCount)
	require.NoError(t, err)
	assert.Equal(t, Input{Players: 10, Parameter: 3, Mode: ByTeamCount}, input)

	input, err = ParseInput("10", "4", ByTeamSize)
	require.NoError(t, err)
	assert.Equal(t, Input{Players: 10, Parameter: 4, Mode: ByTeamSize}, input)
}

func TestParseInputErrors(t *testing.T) {
	tests := []struct {
		name              string
		players, teams    string
		mode              Mode
		messageContaining string
	}{
		{"empty players", "", "3", ByTeamCount, "number of players"},
		{"text players", "ten", "3", ByTeamCount, "not a number"},
		{"fractional teams", "10", "2.5", ByTeamCount, "number of teams"},
		{"zero players", "0", "3", ByTeamCount, "must be positive"},
		{"zero teams", "10", "0", ByTeamCount, "must be positive"},
		{"too many teams", "3", "4", ByTeamCount, "cannot exceed"},
		{"team too large", "3", "4", ByTeamSize, "players per team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseInput(tt.players, tt.teams, tt.mode)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.messageContaining)
		})
	}
}

func TestNewMode(t *testing.T) {
	for name, want := range map[string]Mode{
		"":         ByTeamCount,
		"teams":    ByTeamCount,
		"count":    ByTeamCount,
		"size":     ByTeamSize,
		"per-team": ByTeamSize,
	} {
		got, err := NewMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := NewMode("pairs")
	assert.Error(t, err)
}

func TestModeText(t *testing.T) {
	text, err := ByTeamSize.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "size", string(text))

	var mode Mode
	require.NoError(t, mode.UnmarshalText([]byte("per-team")))
	assert.Equal(t, ByTeamSize, mode)

	_, err = Mode(7).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "unknown", Mode(7).String())
}
