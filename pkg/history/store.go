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

package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	footyfate "laptudirm.com/x/footyfate/pkg/common"
	"laptudirm.com/x/footyfate/pkg/draw"
)

// ErrNoDraw is returned by Load when no draw has been made since the last
// reset.
var ErrNoDraw = errors.New("no teams have been drawn yet")

// FileName is the name of the current draw's file inside the footyfate
// directory.
const FileName = "draw.yaml"

// Store keeps the current draw in a yaml file. A new draw replaces the
// previous one, and a reset discards it.
type Store struct {
	path string
}

// NewStore returns a Store backed by the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Default returns the Store inside the footyfate directory.
func Default() *Store {
	return NewStore(footyfate.Path(FileName))
}

// Path returns the file backing the Store.
func (store *Store) Path() string {
	return store.path
}

// Save replaces the current draw with the given one.
func (store *Store) Save(d *draw.Draw) error {
	if d == nil {
		return errors.New("cannot save a nil draw")
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draw: %w", err)
	}

	// Write to a temporary file first so that a failed write leaves the
	// previous draw untouched.
	tmp := store.path + ".tmp"
	if err := os.WriteFile(tmp, data, footyfate.FilePermissions); err != nil {
		return fmt.Errorf("save draw: %w", err)
	}

	if err := os.Rename(tmp, store.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save draw: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"id":   d.ID,
		"file": store.path,
	}).Debug("Saved current draw")
	return nil
}

// Load returns the current draw.
func (store *Store) Load() (*draw.Draw, error) {
	data, err := os.ReadFile(store.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, ErrNoDraw
	case err != nil:
		return nil, fmt.Errorf("load draw: %w", err)
	}

	var d draw.Draw
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("load draw: %w", err)
	}

	if len(d.Teams) == 0 {
		return nil, ErrNoDraw
	}

	return &d, nil
}

// Reset discards the current draw. Resetting with no draw is not an error.
func (store *Store) Reset() error {
	err := os.Remove(store.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reset draw: %w", err)
	}

	logrus.WithField("file", store.path).Debug("Discarded current draw")
	return nil
}
