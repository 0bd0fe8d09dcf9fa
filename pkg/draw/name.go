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

package draw

// TeamName returns the label of the team at the given zero-based index:
// "Team A" through "Team Z", followed by "Team AA", "Team AB", and so on.
func TeamName(index int) string {
	return "Team " + letters(index)
}

// letters converts index to a bijective base-26 numeral over A-Z.
func letters(index int) string {
	var name []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		name = append(name, byte('A'+(n-1)%26))
	}

	// Digits were produced least significant first.
	for i, j := 0, len(name)-1; i < j; i, j = i+1, j-1 {
		name[i], name[j] = name[j], name[i]
	}

	return string(name)
}
