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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/fourplayerchess/engine/internal/types"
)

func TestUciCommandAnswersHandshake(t *testing.T) {
	h := NewHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name "+EngineName)
	assert.Contains(t, out, "id author "+EngineAuthor)
	assert.Contains(t, out, "uciok")
	assert.Contains(t, out, "option name Hash")
}

func TestIsReadyAnswersReadyOk(t *testing.T) {
	h := NewHandler()
	out := h.Command("isready")
	assert.Equal(t, "readyok\n", out)
}

func TestPositionStartposWithMoves(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves h2-h3")
	assert.Empty(t, out)
	assert.Equal(t, Blue, h.pos.Turn())
}

func TestPositionRejectsUnknownMove(t *testing.T) {
	h := NewHandler()
	out := h.Command("position startpos moves h2-h9")
	assert.Contains(t, out, "invalid move")
}

func TestSetOptionHashResizesTable(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name Hash value 16")
	assert.Empty(t, out)
}

func TestSetOptionUnknownReportsError(t *testing.T) {
	h := NewHandler()
	out := h.Command("setoption name DoesNotExist value 1")
	assert.Contains(t, out, "no such option")
}

func TestParseSetOptionSplitsMultiWordName(t *testing.T) {
	name, value, ok := parseSetOption([]string{"setoption", "name", "Clear", "Hash"})
	assert.True(t, ok)
	assert.Equal(t, "Clear Hash", name)
	assert.Empty(t, value)
}

func TestParseGoLimitsReadsFourClocks(t *testing.T) {
	limits, err := parseGoLimits([]string{"go", "rtime", "1000", "binc", "50"})
	assert.NoError(t, err)
	assert.Equal(t, 1000*time.Millisecond, limits.TimeLeft[Red])
	assert.Equal(t, 50*time.Millisecond, limits.Increment[Blue])
	assert.True(t, limits.TimeControl)
}

func TestParseGoLimitsDepth(t *testing.T) {
	limits, err := parseGoLimits([]string{"go", "depth", "6"})
	assert.NoError(t, err)
	assert.Equal(t, 6, limits.Depth)
}

func TestGoCommandReturnsImmediatelyAndSearchStops(t *testing.T) {
	h := NewHandler()
	out := h.Command("go depth 1")
	assert.Empty(t, out) // goCommand returns immediately; the search runs async

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if h.engine.IsSearching() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		break
	}
	assert.False(t, h.engine.IsSearching())
}
