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

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/footyfate/pkg/partition"
	"laptudirm.com/x/footyfate/pkg/shuffle"
)

// Draw is the outcome of a single randomize action.
type Draw struct {
	ID        string         `yaml:"id"`
	Seed      int64          `yaml:"seed"` // Seed which reproduces the draw.
	Mode      partition.Mode `yaml:"mode"`
	Players   int            `yaml:"players"`
	Parameter int            `yaml:"parameter"`
	CreatedAt time.Time      `yaml:"created-at"`

	Teams []Team `yaml:"teams"`
}

// Team is a labelled group of players inside a Draw.
type Team struct {
	Name    string `yaml:"name"`
	Players []int  `yaml:"players"`
}

// Input returns the partition input the Draw was made from.
func (draw *Draw) Input() partition.Input {
	return partition.Input{
		Players:   draw.Players,
		Parameter: draw.Parameter,
		Mode:      draw.Mode,
	}
}

// Sizes returns the number of players in every team of the Draw.
func (draw *Draw) Sizes() []int {
	sizes := make([]int, len(draw.Teams))
	for i, team := range draw.Teams {
		sizes[i] = len(team.Players)
	}

	return sizes
}

// Clock provides the time a Draw is made at.
type Clock interface {
	Now() time.Time
}

// IDGenerator provides unique identifiers for Draws.
type IDGenerator interface {
	NewID() string
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.New().String() }

// Config configures a Drawer. Nil fields are replaced with the system clock
// and random UUIDs.
type Config struct {
	Clock       Clock
	IDGenerator IDGenerator
}

// Drawer makes Draws.
type Drawer struct {
	clock Clock
	ids   IDGenerator
}

// NewDrawer creates a new Drawer from the given Config, which may be nil.
func NewDrawer(cfg *Config) *Drawer {
	drawer := Drawer{clock: systemClock{}, ids: uuidGenerator{}}
	if cfg != nil {
		if cfg.Clock != nil {
			drawer.clock = cfg.Clock
		}
		if cfg.IDGenerator != nil {
			drawer.ids = cfg.IDGenerator
		}
	}

	return &drawer
}

// ErrNilDraw is returned when a Draw is replayed from nothing.
var ErrNilDraw = errors.New("cannot replay a nil draw")

// Draw partitions the players described by input into labelled teams. A zero
// seed picks a fresh one; the seed actually used is recorded in the result.
func (drawer *Drawer) Draw(input partition.Input, seed int64) (*Draw, error) {
	seed = shuffle.Seed(seed)

	teams, err := partition.Partition(input, shuffle.New(seed))
	if err != nil {
		return nil, err
	}

	draw := Draw{
		ID:        drawer.ids.NewID(),
		Seed:      seed,
		Mode:      input.Mode,
		Players:   input.Players,
		Parameter: input.Parameter,
		CreatedAt: drawer.clock.Now(),
		Teams:     make([]Team, len(teams)),
	}

	for i, players := range teams {
		draw.Teams[i] = Team{
			Name:    TeamName(i),
			Players: players,
		}
	}

	logrus.WithFields(logrus.Fields{
		"id":    draw.ID,
		"seed":  draw.Seed,
		"mode":  draw.Mode,
		"sizes": draw.Sizes(),
	}).Debug("Made a new draw")

	return &draw, nil
}

// Replay makes the given Draw again from its input and seed. The teams of
// the result are identical to the original's.
func (drawer *Drawer) Replay(previous *Draw) (*Draw, error) {
	if previous == nil {
		return nil, ErrNilDraw
	}

	return drawer.Draw(previous.Input(), previous.Seed)
}
