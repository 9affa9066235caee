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

// Package movegen generates pseudo-legal moves for the four-player cross
// board and filters them down to legal moves against check. It plays the
// teacher's internal/movegen role but targets the grid/piece-list Position
// in internal/board instead of bitboards.
package movegen

import (
	. "github.com/fourplayerchess/engine/internal/types"
)

// MovesPerPartition and PartitionsPerThread size the per-thread move
// buffers Lazy-SMP workers draw from, per the engine's worker sizing: each
// search thread starts with PartitionsPerThread reusable partitions of
// MovesPerPartition move slots, one per ply, and adds one for each deeper
// ply it reaches, so no node reallocates its move list.
const (
	MovesPerPartition    = 300
	PartitionsPerThread  = 4
)

// MoveList is a small, reusable, append-only buffer of moves, functionally
// the same role the teacher's moveslice.MoveSlice played, narrowed to what
// movegen and the search move picker need.
type MoveList struct {
	moves []Move
}

// NewMoveList allocates a MoveList with the given capacity.
func NewMoveList(capacity int) *MoveList {
	return &MoveList{moves: make([]Move, 0, capacity)}
}

func (ml *MoveList) Add(m Move)         { ml.moves = append(ml.moves, m) }
func (ml *MoveList) Len() int           { return len(ml.moves) }
func (ml *MoveList) At(i int) Move      { return ml.moves[i] }
func (ml *MoveList) Set(i int, m Move)  { ml.moves[i] = m }
func (ml *MoveList) Clear()             { ml.moves = ml.moves[:0] }
func (ml *MoveList) Slice() []Move      { return ml.moves }

// Sort orders moves from highest to lowest OrderingValue using a stable
// insertion sort (lists here are short and mostly pre-ordered).
func (ml *MoveList) Sort() {
	for i := 1; i < len(ml.moves); i++ {
		tmp := ml.moves[i]
		j := i
		for j > 0 && tmp.OrderingValue() > ml.moves[j-1].OrderingValue() {
			ml.moves[j] = ml.moves[j-1]
			j--
		}
		ml.moves[j] = tmp
	}
}

// PartitionPool hands out MoveList buffers to a Lazy-SMP worker, one
// reusable slot per ply, so a move list still being walked at one ply is
// never cleared by a deeper ply and a deep, narrow search does not keep
// reallocating.
type PartitionPool struct {
	slots []*MoveList
}

// NewPartitionPool pre-allocates the first PartitionsPerThread slots.
func NewPartitionPool() *PartitionPool {
	pp := &PartitionPool{slots: make([]*MoveList, PartitionsPerThread)}
	for i := range pp.slots {
		pp.slots[i] = NewMoveList(MovesPerPartition)
	}
	return pp
}

// At returns the reusable buffer for the given ply, clearing it first.
func (pp *PartitionPool) At(ply int) *MoveList {
	for len(pp.slots) <= ply {
		pp.slots = append(pp.slots, NewMoveList(MovesPerPartition))
	}
	ml := pp.slots[ply]
	ml.Clear()
	return ml
}
