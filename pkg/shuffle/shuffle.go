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

package shuffle

import (
	"math/rand"
	"time"
)

// Source is the random number generator used to shuffle. *rand.Rand
// satisfies it, so do fakes in tests.
type Source interface {
	// Intn returns a uniform random number in [0, n).
	Intn(n int) int
}

// New returns a Source seeded with the given seed. A zero seed is replaced
// with one taken from the clock; use Seed to find out which one was chosen.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(Seed(seed)))
}

// Seed returns the seed New would use for the given value.
func Seed(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return seed
}

// Sequence returns the numbers 1 through n in order.
func Sequence(n int) []int {
	if n <= 0 {
		return nil
	}

	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}

	return seq
}

// Ints shuffles the given slice in place with the Fisher-Yates algorithm.
// Every permutation is equally likely if src is uniform.
func Ints(src Source, values []int) {
	for i := len(values) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}
