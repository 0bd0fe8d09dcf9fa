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
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"laptudirm.com/x/footyfate/pkg/config"
	"laptudirm.com/x/footyfate/pkg/draw"
	"laptudirm.com/x/footyfate/pkg/history"
	"laptudirm.com/x/footyfate/pkg/render"
)

// footyfate show
func Show() *cobra.Command {
	var noColor, verify bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current draw",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultPath())
			if err != nil {
				return err
			}

			d, err := history.Default().Load()
			if errors.Is(err, history.ErrNoDraw) {
				fmt.Fprintln(cmd.OutOrStdout(), "No teams drawn. Use \"footyfate randomize\" to draw some.")
				return nil
			} else if err != nil {
				return err
			}

			if verify {
				replayed, err := draw.NewDrawer(nil).Replay(d)
				if err != nil {
					return err
				}

				if !reflect.DeepEqual(replayed.Teams, d.Teams) {
					return fmt.Errorf("draw %s does not match its seed %d", d.ID, d.Seed)
				}
			}

			return render.Report(cmd.OutOrStdout(), d, render.NewPalette(cfg.Color && !noColor))
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check that the teams can be reproduced from the seed")

	return cmd
}

// footyfate reset
func Reset() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the current draw",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := history.Default().Reset(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Current draw discarded.")
			return nil
		},
	}
}
