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

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"laptudirm.com/x/footyfate/pkg/draw"
	"laptudirm.com/x/footyfate/pkg/partition"
)

// Palette holds the colors used by Report.
type Palette struct {
	Header  *color.Color
	Name    *color.Color
	Border  *color.Color
	Failure *color.Color
}

// NewPalette returns the default Palette, with colors disabled if enabled
// is false.
func NewPalette(enabled bool) Palette {
	palette := Palette{
		Header:  color.New(color.FgHiMagenta, color.Bold),
		Name:    color.New(color.FgYellow),
		Border:  color.New(color.FgMagenta),
		Failure: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{palette.Header, palette.Name, palette.Border, palette.Failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return palette
}

// Report writes the teams of the given Draw as a box, one row per team:
//
//	╔══════════════════════════════╗
//	║ 10 players in 3 teams        ║
//	╠══════════════════════════════╣
//	║ Team A (4 players): 7 2 9 1  ║
//	...
func Report(w io.Writer, d *draw.Draw, palette Palette) error {
	header := Summary(d)
	names := make([]string, len(d.Teams))
	rows := make([]string, len(d.Teams))

	width := runewidth.StringWidth(header)
	for i, team := range d.Teams {
		names[i] = fmt.Sprintf("%s (%s):", team.Name, plural(len(team.Players), "player"))
		rows[i] = joinInts(team.Players)

		if rw := runewidth.StringWidth(names[i] + " " + rows[i]); rw > width {
			width = rw
		}
	}

	bar := strings.Repeat("═", width+2)

	var b strings.Builder
	b.WriteString(palette.Border.Sprint("╔"+bar+"╗") + "\n")
	b.WriteString(line(palette, palette.Header.Sprint(header), header, width))
	b.WriteString(palette.Border.Sprint("╠"+bar+"╣") + "\n")
	for i := range rows {
		plain := names[i] + " " + rows[i]
		b.WriteString(line(palette, palette.Name.Sprint(names[i])+" "+rows[i], plain, width))
	}
	b.WriteString(palette.Border.Sprint("╚"+bar+"╝") + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Error writes err to w as a single notification line. Nothing is written
// for a nil error.
func Error(w io.Writer, err error, palette Palette) error {
	if err == nil {
		return nil
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	_, werr := io.WriteString(w, palette.Failure.Sprint("✗ "+message)+"\n")
	return werr
}

// Summary describes the input a Draw was made from in a single line.
func Summary(d *draw.Draw) string {
	summary := fmt.Sprintf("%s in %s", plural(d.Players, "player"), plural(len(d.Teams), "team"))
	if d.Mode == partition.ByTeamSize {
		summary += fmt.Sprintf(" of %d", d.Parameter)
	}

	return summary + fmt.Sprintf(" (seed %d)", d.Seed)
}

// line pads the plain text to width, but writes the styled version of it.
func line(palette Palette, styled, plain string, width int) string {
	padding := strings.Repeat(" ", width-runewidth.StringWidth(plain))
	return palette.Border.Sprint("║") + " " + styled + padding + " " + palette.Border.Sprint("║") + "\n"
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
