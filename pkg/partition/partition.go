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

import "laptudirm.com/x/footyfate/pkg/shuffle"

// Sizes returns the size of every team the Input will be split into, in the
// order the teams are filled.
func Sizes(input Input) ([]int, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	players, param := input.Players, input.Parameter

	switch input.Mode {
	case ByTeamSize:
		sizes := make([]int, players/param, players/param+1)
		for i := range sizes {
			sizes[i] = param
		}

		// Leftover players form one smaller team at the end.
		if extra := players % param; extra != 0 {
			sizes = append(sizes, extra)
		}

		return sizes, nil

	default:
		base, extra := players/param, players%param

		// The first extra teams take one more player than the rest.
		sizes := make([]int, param)
		for i := range sizes {
			sizes[i] = base
			if i < extra {
				sizes[i]++
			}
		}

		return sizes, nil
	}
}

// Partition shuffles the players 1..input.Players using src and splits the
// result into teams, consuming the shuffled sequence contiguously. Every
// player ends up in exactly one team. Nothing is returned on error.
func Partition(input Input, src shuffle.Source) ([][]int, error) {
	sizes, err := Sizes(input)
	if err != nil {
		return nil, err
	}

	players := shuffle.Sequence(input.Players)
	shuffle.Ints(src, players)

	teams := make([][]int, len(sizes))
	start := 0
	for i, size := range sizes {
		teams[i] = players[start : start+size : start+size]
		start += size
	}

	return teams, nil
}
