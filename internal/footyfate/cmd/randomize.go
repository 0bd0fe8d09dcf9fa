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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/footyfate/internal/util"
	"laptudirm.com/x/footyfate/pkg/config"
	"laptudirm.com/x/footyfate/pkg/draw"
	"laptudirm.com/x/footyfate/pkg/history"
	"laptudirm.com/x/footyfate/pkg/partition"
	"laptudirm.com/x/footyfate/pkg/render"
)

// footyfate randomize
func Randomize() *cobra.Command {
	var flags drawFlags

	cmd := &cobra.Command{
		Use:     "randomize players { teams | per-team }",
		Aliases: []string{"split"},
		Short:   "Split the players into randomized teams",
		Args:    cobra.ExactArgs(2),
		Long: heredoc.Doc(`randomize numbers the players from 1 to <players>, shuffles
			them, and splits them into teams labelled Team A, Team B, and
			so on.

			In the default "teams" mode the second number is the number of
			teams to make; team sizes will differ by at most one player,
			with the larger teams first. In the "size" mode the second
			number is the number of players per team, and any leftover
			players make up a smaller last team.

			The draw replaces the current one, which can be shown again
			with "footyfate show". If the input is invalid nothing is
			drawn and the current draw is kept.`),
		Example: heredoc.Doc(`
			$ footyfate randomize 30 5
			$ footyfate randomize 10 4 --mode size
			$ footyfate split 22 2 --seed 1998 --reveal 3s`),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			input, err := partition.ParseInput(args[0], args[1], cfg.Mode)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"players":   input.Players,
				"parameter": input.Parameter,
				"mode":      input.Mode,
			}).Debug("Parsed input")

			d, err := draw.NewDrawer(nil).Draw(input, cfg.Seed)
			if err != nil {
				return err
			}

			return publish(cmd, d, cfg)
		},
	}

	flags.register(cmd, true)
	return cmd
}

// footyfate reroll
func Reroll() *cobra.Command {
	var flags drawFlags

	cmd := &cobra.Command{
		Use:   "reroll",
		Short: "Draw new teams with the same numbers as the current draw",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			previous, err := history.Default().Load()
			if err != nil {
				return err
			}

			// A reroll with the stored seed would reproduce the same teams.
			seed := int64(0)
			if cmd.Flags().Changed("seed") {
				seed = cfg.Seed
			}

			d, err := draw.NewDrawer(nil).Draw(previous.Input(), seed)
			if err != nil {
				return err
			}

			return publish(cmd, d, cfg)
		},
	}

	flags.register(cmd, false)
	return cmd
}

// publish reveals the given draw, makes it the current one, and reports it.
func publish(cmd *cobra.Command, d *draw.Draw, cfg config.Config) error {
	util.Suspense(cmd.ErrOrStderr(), cfg.Reveal, "Drawing teams...")

	if err := history.Default().Save(d); err != nil {
		return err
	}

	return render.Report(cmd.OutOrStdout(), d, render.NewPalette(cfg.Color))
}
