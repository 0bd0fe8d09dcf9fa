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

package util

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// SPIN is the spinner.CharSets index used by footyfate.
const SPIN = 14

// Suspense shows a spinner with the given suffix on w for the given
// duration. Nothing is shown for a non-positive duration.
func Suspense(w io.Writer, d time.Duration, suffix string) {
	if d <= 0 {
		return
	}

	logrus.WithField("duration", d).Trace("Starting reveal spinner")

	s := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix

	s.Start()
	time.Sleep(d)
	s.Stop()
}
