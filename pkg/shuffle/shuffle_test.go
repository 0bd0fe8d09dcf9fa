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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed always picks the same offset from the back, clamped to range.
type fixed int

func (f fixed) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestSequence(t *testing.T) {
	assert.Nil(t, Sequence(0))
	assert.Nil(t, Sequence(-3))
	assert.Equal(t, []int{1}, Sequence(1))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Sequence(5))
}

func TestIntsKeepsAllElements(t *testing.T) {
	values := Sequence(50)
	Ints(New(42), values)

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	require.Equal(t, Sequence(50), sorted)
}

func TestIntsIsReproducible(t *testing.T) {
	a, b := Sequence(20), Sequence(20)
	Ints(New(7), a)
	Ints(New(7), b)

	assert.Equal(t, a, b)
}

func TestIntsSwapsFromTheBack(t *testing.T) {
	// Intn always returning 0 rotates the last element to the front:
	// [1 2 3] -> swap(2,0) [3 2 1] -> swap(1,0) [2 3 1].
	values := []int{1, 2, 3}
	Ints(fixed(0), values)
	assert.Equal(t, []int{2, 3, 1}, values)

	// Intn returning i leaves every element in place.
	values = []int{1, 2, 3, 4}
	Ints(fixed(1<<30), values)
	assert.Equal(t, []int{1, 2, 3, 4}, values)
}

func TestIntsShortSlices(t *testing.T) {
	var empty []int
	Ints(New(1), empty)
	assert.Empty(t, empty)

	single := []int{9}
	Ints(New(1), single)
	assert.Equal(t, []int{9}, single)
}

func TestIntsCoversAllPermutations(t *testing.T) {
	seen := map[[3]int]int{}
	src := New(1234)
	for i := 0; i < 6000; i++ {
		values := Sequence(3)
		Ints(src, values)
		seen[[3]int{values[0], values[1], values[2]}]++
	}

	require.Len(t, seen, 6)
	for perm, count := range seen {
		// Expected 1000 each; a loose bound keeps the test stable.
		assert.InDelta(t, 1000, count, 200, "permutation %v", perm)
	}
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(99), Seed(99))
	assert.NotZero(t, Seed(0))
}
