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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fourplayerchess/engine/internal/types"
)

func TestKillersEmptyOnNewTable(t *testing.T) {
	h := NewTable()
	assert.False(t, h.IsKiller(5, Move{From: 1, To: 2}))
}

func TestAddKillerThenIsKiller(t *testing.T) {
	h := NewTable()
	m := Move{From: 10, To: 20}
	h.AddKiller(3, m)
	assert.True(t, h.IsKiller(3, m))
	assert.Equal(t, m, h.Killers(3)[0])
}

func TestAddKillerShiftsPrevious(t *testing.T) {
	h := NewTable()
	m1 := Move{From: 10, To: 20}
	m2 := Move{From: 11, To: 21}
	h.AddKiller(3, m1)
	h.AddKiller(3, m2)
	killers := h.Killers(3)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])
}

func TestAddKillerSkipsDuplicate(t *testing.T) {
	h := NewTable()
	m := Move{From: 10, To: 20}
	h.AddKiller(3, m)
	h.AddKiller(3, m)
	killers := h.Killers(3)
	assert.Equal(t, m, killers[0])
	assert.Equal(t, MoveNone, killers[1])
}

func TestUpdateQuietRewardsBestAndPenalizesOthers(t *testing.T) {
	h := NewTable()
	best := Move{From: 5, To: 6}
	other := Move{From: 7, To: 8}
	h.UpdateQuiet(Red, []Move{best, other}, best, 4)

	assert.Greater(t, h.QuietScore(Red, 5, 6), int32(0))
	assert.Less(t, h.QuietScore(Red, 7, 8), int32(0))
}

func TestCounterMoveRoundTrip(t *testing.T) {
	h := NewTable()
	prev := Move{From: 1, To: 2}
	reply := Move{From: 3, To: 4}
	h.SetCounterMove(Blue, prev, reply)
	assert.Equal(t, reply, h.CounterMove(Blue, prev))
	assert.Equal(t, MoveNone, h.CounterMove(Blue, Move{From: 9, To: 9}))
}

func TestUpdateCaptureRewardsGoodCaptures(t *testing.T) {
	h := NewTable()
	h.UpdateCapture(Queen, Blue, Pawn, true, 4)
	h.UpdateCapture(Pawn, Blue, Queen, false, 4)

	assert.Greater(t, h.CaptureScore(Queen, Blue, Pawn), int32(0))
	assert.Less(t, h.CaptureScore(Pawn, Blue, Queen), int32(0))
}

func TestClearResetsAllTables(t *testing.T) {
	h := NewTable()
	m := Move{From: 1, To: 2}
	h.AddKiller(0, m)
	h.UpdateQuiet(Red, []Move{m}, m, 4)
	h.Clear()

	assert.False(t, h.IsKiller(0, m))
	assert.Equal(t, int32(0), h.QuietScore(Red, 1, 2))
}
