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

	"github.com/stretchr/testify/assert"

	"github.com/fourplayerchess/engine/internal/board"
	"github.com/fourplayerchess/engine/internal/config"
	"github.com/fourplayerchess/engine/internal/movegen"
)

func TestMoveDeferralTableAcquireReleaseRoundTrips(t *testing.T) {
	tbl := newMoveDeferralTable()
	buf := movegen.NewMoveList(movegen.MovesPerPartition)
	moves := movegen.LegalMoves(board.NewPosition(""), buf)
	assert.NotEmpty(t, moves)
	m := moves[0]

	idx := tbl.index(3, m)
	assert.True(t, tbl.tryAcquire(idx))
	assert.False(t, tbl.tryAcquire(idx), "a second acquire before release must be refused")
	tbl.release(idx)
	assert.True(t, tbl.tryAcquire(idx), "release must free the slot for reacquisition")
}

func TestMoveDeferralTableDistinguishesPromotions(t *testing.T) {
	tbl := newMoveDeferralTable()
	buf := movegen.NewMoveList(movegen.MovesPerPartition)
	moves := movegen.LegalMoves(board.NewPosition(""), buf)
	assert.NotEmpty(t, moves)
	m := moves[0]
	promo := m
	promo.Promotion = 1

	assert.NotEqual(t, moveHash(m), moveHash(promo))
}

// TestMultiThreadedSearchExercisesMoveDeferral runs with enough worker
// threads and depth that PV-node moves collide in the deferral table at
// least once, and checks the search still terminates with a legal move.
func TestMultiThreadedSearchExercisesMoveDeferral(t *testing.T) {
	orig := config.Settings.Search.NumThreads
	config.Settings.Search.NumThreads = 4
	defer func() { config.Settings.Search.NumThreads = orig }()

	root := board.NewPosition("")
	e := NewEngine()
	limits := NewLimits()
	limits.Depth = 3

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
