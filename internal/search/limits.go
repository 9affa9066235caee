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
	"time"

	. "github.com/fourplayerchess/engine/internal/types"
)

// Limits describes a single "go" command's stop conditions, generalizing
// the teacher's two-player wtime/btime/winc/binc to the four clocks this
// variant's UCI dialect carries (rtime/btime/ytime/gtime and their
// increments).
type Limits struct {
	Infinite    bool
	Ponder      bool
	Depth       int
	Nodes       uint64
	MoveTime    time.Duration
	Mate        int
	MovesToGo   int
	TimeLeft    [4]time.Duration
	Increment   [4]time.Duration
	SearchMoves []Move
	TimeControl bool
}

// NewLimits returns a zero-value Limits; callers set whichever stop
// condition the "go" command specified.
func NewLimits() *Limits {
	return &Limits{}
}
