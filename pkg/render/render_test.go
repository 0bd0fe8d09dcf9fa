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

package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/footyfate/pkg/draw"
	"laptudirm.com/x/footyfate/pkg/partition"
)

func testDraw() *draw.Draw {
	return &draw.Draw{
		Seed:      5,
		Mode:      partition.ByTeamCount,
		Players:   10,
		Parameter: 3,
		Teams: []draw.Team{
			{Name: "Team A", Players: []int{7, 2, 9, 1}},
			{Name: "Team B", Players: []int{10, 4, 3}},
			{Name: "Team C", Players: []int{8, 5, 6}},
		},
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Report(&out, testDraw(), NewPalette(false)))

	want := strings.Join([]string{
		"╔════════════════════════════════╗",
		"║ 10 players in 3 teams (seed 5) ║",
		"╠════════════════════════════════╣",
		"║ Team A (4 players): 7 2 9 1    ║",
		"║ Team B (3 players): 10 4 3     ║",
		"║ Team C (3 players): 8 5 6      ║",
		"╚════════════════════════════════╝",
		"",
	}, "\n")

	assert.Equal(t, want, out.String())
}

func TestReportColored(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Report(&out, testDraw(), NewPalette(true)))

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Team B")
}

func TestSummary(t *testing.T) {
	d := &draw.Draw{
		Seed:      1,
		Mode:      partition.ByTeamSize,
		Players:   10,
		Parameter: 4,
		Teams:     make([]draw.Team, 3),
	}
	assert.Equal(t, "10 players in 3 teams of 4 (seed 1)", Summary(d))

	d = &draw.Draw{Seed: 2, Players: 1, Parameter: 1, Teams: make([]draw.Team, 1)}
	assert.Equal(t, "1 player in 1 team (seed 2)", Summary(d))
}

func TestError(t *testing.T) {
	var out bytes.Buffer
	err := fmt.Errorf("%w: number of players must be positive, got 0", partition.ErrInvalidInput)

	require.NoError(t, Error(&out, err, NewPalette(false)))
	assert.Equal(t, "✗ invalid input: number of players must be positive, got 0\n", out.String())
}

func TestErrorSingleLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Error(&out, errors.New("load draw:\n  bad  yaml\n"), NewPalette(false)))
	assert.Equal(t, "✗ load draw: bad yaml\n", out.String())
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestErrorColored(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Error(&out, errors.New("boom"), NewPalette(true)))
	assert.Contains(t, out.String(), "\x1b[31m")
	assert.Contains(t, out.String(), "boom")
}

func TestErrorNil(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Error(&out, nil, NewPalette(false)))
	assert.Empty(t, out.String())
}
