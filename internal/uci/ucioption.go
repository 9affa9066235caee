//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package uci

import (
	"fmt"
	"strconv"

	"github.com/fourplayerchess/engine/internal/config"
)

// uciOptionType mirrors the option kinds the UCI protocol defines.
type uciOptionType int

const (
	optCheck uciOptionType = iota
	optSpin
	optButton
)

// uciOption describes one reported-at-handshake option and how setoption
// applies a new value to it, the same table-driven shape as the teacher's
// ucioption.go.
type uciOption struct {
	name    string
	kind    uciOptionType
	def     string
	min     string
	max     string
	apply   func(h *Handler, value string) error
}

// optionTable lists every option this engine accepts, trimmed to the knobs
// that actually exist in config.Settings (no opening-book or ponder-mode
// options, since this build has neither).
var optionTable = []uciOption{
	{
		name: "Hash", kind: optSpin,
		def: strconv.Itoa(config.Settings.Search.TTSizeMB), min: "1", max: "65536",
		apply: func(h *Handler, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("Hash: bad value %q", value)
			}
			config.Settings.Search.TTSizeMB = v
			h.engine.TT.Resize(v)
			return nil
		},
	},
	{
		name: "Clear Hash", kind: optButton,
		apply: func(h *Handler, value string) error {
			h.engine.NewGame()
			return nil
		},
	},
	{
		name: "Threads", kind: optSpin,
		def: strconv.Itoa(config.Settings.Search.NumThreads), min: "1", max: "64",
		apply: func(h *Handler, value string) error {
			v, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("Threads: bad value %q", value)
			}
			config.Settings.Search.NumThreads = v
			return nil
		},
	},
	{
		name: "Use_SEE", kind: optCheck,
		def: strconv.FormatBool(config.Settings.Search.UseSEE),
		apply: boolOption(func(v bool) { config.Settings.Search.UseSEE = v }),
	},
	{
		name: "Use_NullMove", kind: optCheck,
		def: strconv.FormatBool(config.Settings.Search.UseNullMove),
		apply: boolOption(func(v bool) { config.Settings.Search.UseNullMove = v }),
	},
	{
		name: "Use_Lmr", kind: optCheck,
		def: strconv.FormatBool(config.Settings.Search.UseLmr),
		apply: boolOption(func(v bool) { config.Settings.Search.UseLmr = v }),
	},
	{
		name: "Use_Lmp", kind: optCheck,
		def: strconv.FormatBool(config.Settings.Search.UseLmp),
		apply: boolOption(func(v bool) { config.Settings.Search.UseLmp = v }),
	},
	{
		name: "Use_CheckBonus", kind: optCheck,
		def: strconv.FormatBool(config.Settings.Search.UseCheckBonus),
		apply: boolOption(func(v bool) { config.Settings.Search.UseCheckBonus = v }),
	},
}

// boolOption adapts a bool-setter into the apply signature, avoiding the
// repeated ParseBool/error-check boilerplate every checkbox option needs.
func boolOption(set func(bool)) func(*Handler, string) error {
	return func(h *Handler, value string) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("bad boolean value %q", value)
		}
		set(v)
		return nil
	}
}

func optionLines() []string {
	lines := make([]string, 0, len(optionTable))
	for _, o := range optionTable {
		lines = append(lines, o.String())
	}
	return lines
}

func (o uciOption) String() string {
	switch o.kind {
	case optCheck:
		return fmt.Sprintf("option name %s type check default %s", o.name, o.def)
	case optSpin:
		return fmt.Sprintf("option name %s type spin default %s min %s max %s", o.name, o.def, o.min, o.max)
	case optButton:
		return fmt.Sprintf("option name %s type button", o.name)
	}
	return ""
}

func applyOption(h *Handler, name, value string) error {
	for _, o := range optionTable {
		if o.name == name {
			return o.apply(h, value)
		}
	}
	return fmt.Errorf("no such option '%s'", name)
}
