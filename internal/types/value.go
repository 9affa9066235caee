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

package types

import "fmt"

// Key is a 64-bit Zobrist hash identifying a position.
type Key uint64

// Value is a centipawn score from the perspective of the side to move.
type Value int16

// Material values and search sentinels. Mate scores are encoded as
// VALUE_MATE minus the number of plies to mate so shorter mates sort higher.
const (
	ValueZero   Value = 0
	ValuePawn   Value = 50
	ValueKnight Value = 300
	ValueBishop Value = 400
	ValueRook   Value = 500
	ValueQueen  Value = 1000
	ValueKing   Value = 10000

	ValueDraw     Value = 0
	ValueInfinite Value = 15000
	ValueMate     Value = 10000
	ValueMateInPly = ValueMate
	ValueNone     Value = -ValueInfinite - 1
	MaxPly        = 128
)

// IsMate reports whether v represents a forced mate score.
func (v Value) IsMate() bool {
	return v > ValueMate-MaxPly || v < -ValueMate+MaxPly
}

// MatePly returns the number of plies to the mate encoded in v (0 if v is
// not a mate score).
func (v Value) MatePly() int {
	if v > ValueMate-MaxPly {
		return int(ValueMate - v)
	}
	if v < -ValueMate+MaxPly {
		return int(ValueMate + v)
	}
	return 0
}

func (v Value) String() string {
	if v.IsMate() {
		ply := v.MatePly()
		moves := (ply + 1) / 2
		if v < 0 {
			return fmt.Sprintf("mate -%d", moves)
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", v)
}

// Bound describes how a transposition-table value relates to the true score.
type Bound uint8

const (
	BoundNone  Bound = iota // no useful bound stored
	BoundExact              // exact score (PV node)
	BoundAlpha              // upper bound, value <= stored (fail-low / all-node)
	BoundBeta               // lower bound, value >= stored (fail-high / cut-node)
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "EXACT"
	case BoundAlpha:
		return "ALPHA"
	case BoundBeta:
		return "BETA"
	}
	return "NONE"
}

// Score is a tapered mid-game/end-game value pair, blended by game phase.
type Score struct {
	Mid Value
	End Value
}

func (s Score) Add(o Score) Score {
	return Score{s.Mid + o.Mid, s.End + o.End}
}

func (s Score) Sub(o Score) Score {
	return Score{s.Mid - o.Mid, s.End - o.End}
}

// ValueFromScore blends mid/end values by a game-phase factor in [0,1]
// where 1.0 is full midgame material and 0.0 is a bare-bones endgame.
func (s Score) ValueFromScore(gamePhaseFactor float64) Value {
	return Value(float64(s.Mid)*gamePhaseFactor + float64(s.End)*(1-gamePhaseFactor))
}

func (s Score) String() string {
	return fmt.Sprintf("(mid=%d end=%d)", s.Mid, s.End)
}
