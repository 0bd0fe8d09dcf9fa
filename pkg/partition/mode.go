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

import "fmt"

// Mode decides how the team parameter of an Input is interpreted.
type Mode int

const (
	// ByTeamCount splits the players into a fixed number of teams whose
	// sizes differ by at most one.
	ByTeamCount Mode = iota

	// ByTeamSize fills teams of a fixed size, leaving any remaining
	// players in a smaller final team.
	ByTeamSize
)

// NewMode parses the name of a partition mode.
func NewMode(name string) (Mode, error) {
	switch name {
	case "teams", "count", "":
		return ByTeamCount, nil
	case "size", "per-team":
		return ByTeamSize, nil
	default:
		return 0, fmt.Errorf("invalid partition mode %s", name)
	}
}

// String returns the canonical name of the Mode.
func (mode Mode) String() string {
	switch mode {
	case ByTeamCount:
		return "teams"
	case ByTeamSize:
		return "size"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (mode Mode) MarshalText() ([]byte, error) {
	if mode != ByTeamCount && mode != ByTeamSize {
		return nil, fmt.Errorf("invalid partition mode %d", int(mode))
	}

	return []byte(mode.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (mode *Mode) UnmarshalText(text []byte) error {
	parsed, err := NewMode(string(text))
	if err != nil {
		return err
	}

	*mode = parsed
	return nil
}

// Parameter is the human name of the team parameter in the given mode.
func (mode Mode) Parameter() string {
	if mode == ByTeamSize {
		return "players per team"
	}

	return "number of teams"
}
