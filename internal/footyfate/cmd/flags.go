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

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"laptudirm.com/x/footyfate/pkg/config"
	"laptudirm.com/x/footyfate/pkg/partition"
)

// drawFlags are the flags shared by the commands which make a new draw. Any
// flag left unset falls back to the config file.
type drawFlags struct {
	mode    string
	seed    int64
	reveal  time.Duration
	noColor bool
}

func (flags *drawFlags) register(cmd *cobra.Command, withMode bool) {
	if withMode {
		cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "Meaning of the second number: teams or size")
	}
	cmd.Flags().Int64VarP(&flags.seed, "seed", "s", 0, "Seed for the shuffle (0 picks a new one)")
	cmd.Flags().DurationVarP(&flags.reveal, "reveal", "r", 0, "Show a spinner for this long before the teams")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
}

// resolve merges the flags which were given on the command line into the
// configuration loaded from disk.
func (flags *drawFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("mode") {
		if cfg.Mode, err = partition.NewMode(flags.mode); err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.seed
	}

	if cmd.Flags().Changed("reveal") {
		cfg.Reveal = flags.reveal
	}

	if flags.noColor {
		cfg.Color = false
	}

	return cfg, cfg.Validate()
}
