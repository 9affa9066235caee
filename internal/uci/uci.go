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

// Package uci contains the Handler type and functionality to handle the
// UCI-dialect protocol communication between a chess GUI and the engine,
// generalized to this variant's four-clock "go" tokens (rtime/btime/ytime/
// gtime, rinc/binc/yinc/ginc) and dash-delimited FEN.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	gologging "github.com/op/go-logging"

	"github.com/fourplayerchess/engine/internal/board"
	"github.com/fourplayerchess/engine/internal/logging"
	"github.com/fourplayerchess/engine/internal/movegen"
	"github.com/fourplayerchess/engine/internal/search"
	. "github.com/fourplayerchess/engine/internal/types"
)

// EngineName and EngineAuthor answer the "uci" handshake's id lines.
const (
	EngineName   = "FourPlayerEngine"
	EngineAuthor = "the fourplayerchess project"
)

// Handler owns the position, engine and io streams for one UCI-dialect
// session, the same role the teacher's UciHandler plays: one instance per
// process, driven by Loop() reading stdin until "quit".
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	pos    *board.Position
	engine *search.Engine
	uciLog *gologging.Logger
}

// NewHandler creates a Handler reading from stdin and writing to stdout,
// with a fresh starting position and engine.
func NewHandler() *Handler {
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		pos:    board.NewPosition(""),
		engine: search.NewEngine(),
		uciLog: logging.GetUCILog(),
	}
}

// Loop reads commands from InIo until "quit" or end of input.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single command line and returns everything it wrote to
// OutIo, useful for tests and debugging without a real stdin/stdout pipe.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var regexWhitespace = regexp.MustCompile(`\s+`)

// handle dispatches one command line; it returns true on "quit".
func (h *Handler) handle(cmd string) bool {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := regexWhitespace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "setoption":
		h.setOptionCommand(tokens)
	case "ucinewgame":
		h.engine.NewGame()
		h.pos = board.NewPosition("")
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.engine.Stop()
	case "ponderhit":
		// Ponder is accepted as a go-command flag but this engine always
		// searches as if the predicted move already happened, so ponderhit
		// is a no-op: the running search simply keeps going.
	case "debug":
		h.send("info string debug not implemented")
	case "register":
		h.send("info string register not implemented")
	default:
		h.send(fmt.Sprintf("info string unknown command: %s", tokens[0]))
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name " + EngineName)
	h.send("id author " + EngineAuthor)
	for _, line := range optionLines() {
		h.send(line)
	}
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		h.send("info string setoption malformed")
		return
	}
	if err := applyOption(h, name, value); err != nil {
		h.send("info string " + err.Error())
	}
}

// parseSetOption splits "setoption name <NAME WITH SPACES> value <VALUE>"
// into name/value, matching the teacher's token-scan approach since option
// names themselves may contain spaces.
func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 2 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.TrimSpace(strings.Join(nameParts, " "))
	if i < len(tokens)-1 && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}
	return name, value, name != ""
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.send("info string position malformed")
		return
	}
	i := 1
	fen := board.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(tokens[i])
			i++
		}
		if sb.Len() == 0 {
			h.send("info string position malformed: empty fen")
			return
		}
		fen = sb.String()
	default:
		h.send("info string position malformed: expected startpos or fen")
		return
	}

	h.pos = board.NewPosition(fen)

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := movegen.FromUci(h.pos, tokens[i])
			if m.IsNone() {
				h.send(fmt.Sprintf("info string position malformed: invalid move %q", tokens[i]))
				return
			}
			h.pos.DoMove(m)
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits, err := parseGoLimits(tokens)
	if err != nil {
		h.send("info string " + err.Error())
		return
	}
	root := h.pos
	go func() {
		res := h.engine.Search(root, *limits, func(info search.Info) {
			h.send(infoLine(info))
		})
		h.send(resultLine(res))
	}()
}

// clockField and incField map a "go" token to the color clock it sets.
var clockField = map[string]Color{"rtime": Red, "btime": Blue, "ytime": Yellow, "gtime": Green}
var incField = map[string]Color{"rinc": Red, "binc": Blue, "yinc": Yellow, "ginc": Green}

// parseGoLimits reads a "go" command's tokens into search.Limits, the same
// token-at-a-time scan as the teacher's readSearchLimits, generalized to
// four clocks/increments instead of two.
func parseGoLimits(tokens []string) (*search.Limits, error) {
	limits := search.NewLimits()

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		if c, ok := clockField[tok]; ok {
			i++
			v, err := int64Arg(tokens, i, tok)
			if err != nil {
				return nil, err
			}
			limits.TimeLeft[c] = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
			continue
		}
		if c, ok := incField[tok]; ok {
			i++
			v, err := int64Arg(tokens, i, tok)
			if err != nil {
				return nil, err
			}
			limits.Increment[c] = time.Duration(v) * time.Millisecond
			i++
			continue
		}
		switch tok {
		case "infinite":
			limits.Infinite = true
			i++
		case "ponder":
			limits.Ponder = true
			i++
		case "depth":
			i++
			v, err := intArg(tokens, i, "depth")
			if err != nil {
				return nil, err
			}
			limits.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(argAt(tokens, i), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("go malformed: bad nodes value %q", argAt(tokens, i))
			}
			limits.Nodes = v
			i++
		case "mate":
			i++
			v, err := intArg(tokens, i, "mate")
			if err != nil {
				return nil, err
			}
			limits.Mate = v
			i++
		case "movetime", "moveTime":
			i++
			v, err := int64Arg(tokens, i, "movetime")
			if err != nil {
				return nil, err
			}
			limits.MoveTime = time.Duration(v) * time.Millisecond
			limits.TimeControl = true
			i++
		case "movestogo", "moves_to_go":
			i++
			v, err := intArg(tokens, i, "movestogo")
			if err != nil {
				return nil, err
			}
			limits.MovesToGo = v
			i++
		case "moves", "searchmoves":
			// Restricting the root search to a move subset is accepted for
			// wire compatibility but not honored (no GUIs in this variant's
			// ecosystem send it in practice).
			i = len(tokens)
		default:
			return nil, fmt.Errorf("go malformed: unknown token %q", tok)
		}
	}
	return limits, nil
}

func argAt(tokens []string, i int) string {
	if i < 0 || i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

func intArg(tokens []string, i int, field string) (int, error) {
	v, err := strconv.Atoi(argAt(tokens, i))
	if err != nil {
		return 0, fmt.Errorf("go malformed: bad %s value %q", field, argAt(tokens, i))
	}
	return v, nil
}

func int64Arg(tokens []string, i int, field string) (int64, error) {
	v, err := strconv.ParseInt(argAt(tokens, i), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("go malformed: bad %s value %q", field, argAt(tokens, i))
	}
	return v, nil
}

func infoLine(info search.Info) string {
	var pv strings.Builder
	for i, m := range info.PV {
		if i > 0 {
			pv.WriteString(" ")
		}
		pv.WriteString(m.StringUci())
	}
	return fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d hashfull %d pv %s",
		info.Depth, info.SelDepth, info.Score.String(), info.Nodes, info.Nps,
		info.Time.Milliseconds(), info.Hashfull, pv.String())
}

func resultLine(res search.Result) string {
	if res.BestMove.IsNone() {
		return "bestmove -"
	}
	return "bestmove " + res.BestMove.StringUci()
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}
