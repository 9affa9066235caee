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

// Package config holds the engine's toml-backed settings, read once at
// startup the way the teacher's internal/config does: a package-level
// Settings value, defaults set in init(), optionally overridden by a
// config.toml read via config.Setup().
package config

import (
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path Setup reads from; cmd/fourplayerengine can override
// it from a flag before calling Setup.
var ConfFile = "./config.toml"

// LogLevels maps the cmd-line/config string levels onto go-logging's levels.
var LogLevels = map[string]string{
	"critical": "CRITICAL",
	"error":    "ERROR",
	"warning":  "WARNING",
	"notice":   "NOTICE",
	"info":     "INFO",
	"debug":    "DEBUG",
}

// LogLevel/SearchLogLevel are read by internal/logging at startup.
var LogLevel = "INFO"
var SearchLogLevel = "INFO"

type logConf struct {
	LogPath string
}

type conf struct {
	Log    logConf
	Search searchConfiguration
	Eval   evalConfiguration
}

// Settings is the process-wide configuration, filled with defaults in
// init() and optionally overridden by Setup().
var Settings conf

func init() {
	Settings.Log.LogPath = "./logs"
	setupSearchDefaults()
	setupEvalDefaults()
}

// Setup reads ConfFile (if present) over the compiled-in defaults. A
// missing file is not an error: the defaults are a complete configuration
// on their own, the same tolerant behavior as the teacher's Setup().
func Setup() {
	if ConfFile == "" {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		// Missing, unreadable or malformed config file: keep defaults and
		// report nothing, matching the teacher's "defaults are always
		// valid" stance.
		return
	}
}

// String dumps the full settings tree via reflection, the same approach
// the teacher's conf.String() takes, for the UCI "debug" / startup banner.
func (c conf) String() string {
	v := reflect.ValueOf(c)
	t := v.Type()
	s := ""
	for i := 0; i < t.NumField(); i++ {
		s += fmt.Sprintf("%s: %+v\n", t.Field(i).Name, v.Field(i).Interface())
	}
	return s
}
