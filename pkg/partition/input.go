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
	"fmt"
	"strconv"
	"strings"
)

// Input holds the numbers a partition is computed from.
type Input struct {
	Players   int  // Total number of players, identified as 1..Players.
	Parameter int  // Team count or players per team, depending on Mode.
	Mode      Mode // How Parameter is interpreted.
}

// ParseInput builds an Input out of the raw text of the two numeric fields.
// The returned Input has already been validated.
func ParseInput(players, parameter string, mode Mode) (Input, error) {
	p, err := parseCount("number of players", players)
	if err != nil {
		return Input{}, err
	}

	n, err := parseCount(mode.Parameter(), parameter)
	if err != nil {
		return Input{}, err
	}

	input := Input{Players: p, Parameter: n, Mode: mode}
	return input, input.Validate()
}

func parseCount(field, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, text)
	}

	return n, nil
}

// Validate checks that the Input describes a possible partition.
func (input Input) Validate() error {
	switch {
	case input.Players <= 0:
		return fmt.Errorf("%w: number of players must be positive, got %d", ErrInvalidInput, input.Players)

	case input.Parameter <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidInput, input.Mode.Parameter(), input.Parameter)

	case input.Parameter > input.Players:
		return fmt.Errorf(
			"%w: %s (%d) cannot exceed the number of players (%d)",
			ErrInvalidInput, input.Mode.Parameter(), input.Parameter, input.Players,
		)

	case input.Mode != ByTeamCount && input.Mode != ByTeamSize:
		return fmt.Errorf("%w: unknown partition mode %d", ErrInvalidInput, int(input.Mode))
	}

	return nil
}
