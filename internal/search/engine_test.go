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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fourplayerchess/engine/internal/board"
	"github.com/fourplayerchess/engine/internal/movegen"
)

func TestSearchFromStartPositionReturnsLegalMove(t *testing.T) {
	root := board.NewPosition("")
	e := NewEngine()
	limits := NewLimits()
	limits.Depth = 2

	res := e.Search(root, *limits, nil)
	assert.False(t, res.BestMove.IsNone())

	buf := movegen.NewMoveList(movegen.MovesPerPartition)
	found := false
	for _, m := range movegen.LegalMoves(root, buf) {
		if m == res.BestMove {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestStopEndsASearchEarly(t *testing.T) {
	root := board.NewPosition("")
	e := NewEngine()
	limits := NewLimits()
	limits.Infinite = true

	done := make(chan Result, 1)
	go func() {
		done <- e.Search(root, *limits, nil)
	}()

	time.Sleep(20 * time.Millisecond)
	e.Stop()

	select {
	case res := <-done:
		assert.False(t, res.BestMove.IsNone())
	case <-time.After(5 * time.Second):
		t.Fatal("search did not stop in time")
	}
}

func TestComputeDeadlineUsesMoversClock(t *testing.T) {
	root := board.NewPosition("")
	start := time.Now()
	limits := NewLimits()
	limits.TimeControl = true
	limits.TimeLeft[root.Turn()] = 10 * time.Second

	deadline := computeDeadline(root, *limits, start)
	assert.False(t, deadline.IsZero())
	assert.True(t, deadline.After(start))
}

func TestComputeDeadlineInfiniteHasNoDeadline(t *testing.T) {
	root := board.NewPosition("")
	limits := NewLimits()
	limits.Infinite = true

	deadline := computeDeadline(root, *limits, time.Now())
	assert.True(t, deadline.IsZero())
}
