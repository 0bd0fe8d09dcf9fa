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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/footyfate/pkg/config"
	"laptudirm.com/x/footyfate/pkg/partition"
)

// footyfate config
func Config() *cobra.Command {
	var (
		mode    string
		seed    int64
		reveal  time.Duration
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print or change the default settings",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`config prints the settings used when a flag is not given to
			randomize or reroll. Passing any of the flags below changes
			the corresponding setting and saves it.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("mode") {
				if cfg.Mode, err = partition.NewMode(mode); err != nil {
					return err
				}
				changed = true
			}

			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
				changed = true
			}

			if cmd.Flags().Changed("reveal") {
				cfg.Reveal = reveal
				changed = true
			}

			if cmd.Flags().Changed("no-color") {
				cfg.Color = !noColor
				changed = true
			}

			if changed {
				if err := cfg.Save(path); err != nil {
					return err
				}
				logrus.WithField("file", path).Debug("Saved configuration")
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Default partition mode: teams or size")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Default seed (0 picks a new one every draw)")
	cmd.Flags().DurationVarP(&reveal, "reveal", "r", 0, "Default spinner duration, e.g. 2s")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output (--no-color=false enables it)")

	return cmd
}
