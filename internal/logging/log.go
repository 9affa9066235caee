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

// Package logging wraps github.com/op/go-logging with one logger per
// concern (standard, search, uci, test), each with its own backend and
// level, rebuilt here under internal/logging following the shape of the
// engine's root-level pre-refactor logging package, the only copy of this
// wrapper available to ground on.
package logging

import (
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fourplayerchess/engine/internal/config"
)

// Out is a German-locale printer used across the engine for
// thousands-separated stats output (node counts, NPS), matching the
// teacher's use of golang.org/x/text/message for the same purpose.
var Out = message.NewPrinter(language.German)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg}:%{shortfile} %{level}: %{message}`,
)

var stdLog *logging.Logger
var searchLog *logging.Logger
var uciLog *logging.Logger
var testLog *logging.Logger

func newLogger(name string, level string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "")
	l := logging.MustGetLogger(name)
	l.SetBackend(leveled)
	return l
}

// GetLog returns the standard engine logger, creating it on first call.
func GetLog() *logging.Logger {
	if stdLog == nil {
		stdLog = newLogger("engine", config.LogLevel)
	}
	return stdLog
}

// GetSearchLog returns the search-trace logger.
func GetSearchLog() *logging.Logger {
	if searchLog == nil {
		searchLog = newLogger("search", config.SearchLogLevel)
	}
	return searchLog
}

// GetUCILog returns the logger used for the raw UCI-dialect command/response
// transcript.
func GetUCILog() *logging.Logger {
	if uciLog == nil {
		uciLog = newLogger("uci", config.LogLevel)
	}
	return uciLog
}

// GetTestLog returns a logger for _test.go files, always at DEBUG level.
func GetTestLog() *logging.Logger {
	if testLog == nil {
		testLog = newLogger("test", "DEBUG")
	}
	return testLog
}
