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

package footyfate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

const FilePermissions = 0755

// HomeVariable is the environment variable which overrides Directory.
const HomeVariable = "FOOTYFATE_HOME"

// Directory is where footyfate keeps its configuration and the current draw.
var Directory = directory()

func directory() string {
	if dir := os.Getenv(HomeVariable); dir != "" {
		return dir
	}

	return filepath.Join(xdg.Home, "footyfate")
}

// Path returns the path to the given file inside Directory.
func Path(elem ...string) string {
	return filepath.Join(append([]string{Directory}, elem...)...)
}

// TryMkdir creates the given directory if it doesn't exist yet.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("directory", dir).Debug("Creating directory")
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate writes data to the given file if it doesn't exist yet.
func TryCreate(file string, data []byte) error {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("file", file).Debug("Creating file")
		return os.WriteFile(file, data, FilePermissions)
	}

	return nil
}

// Setup makes sure Directory exists.
func Setup() error {
	return TryMkdir(Directory)
}
