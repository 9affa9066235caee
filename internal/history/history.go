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

// Package history holds the move-ordering memory the search picks up
// across nodes: killer moves per ply, the history heuristic table,
// counter-moves, and capture history. Widened from the teacher's 64-square
// HistoryCount[2][64][64] to the 160-square board and four colors, and
// extended with a capture-history table per spec.md.
package history

import (
	"fmt"

	. "github.com/fourplayerchess/engine/internal/types"
)

const maxKillersPerPly = 2

// Table is one search thread's move-ordering memory. Lazy-SMP workers each
// own an independent Table (cloned/reset per search) so they never contend
// on these counters.
type Table struct {
	killers      [MaxPly][maxKillersPerPly]Move
	quietHistory [4][SqLength][SqLength]int32 // [color][from][to]
	counterMove  [4][SqLength][SqLength]Move  // [color][from][to] of the move being answered
	captureHist  [7][4][7]int32               // [movedType][capturedColor][capturedType]
}

// NewTable returns a zeroed history table.
func NewTable() *Table {
	return &Table{}
}

// Clear resets every table to zero, used at the start of a new game.
func (t *Table) Clear() {
	*t = Table{}
}

// Killers returns ply's two killer moves (MoveNone if unset).
func (t *Table) Killers(ply int) [maxKillersPerPly]Move {
	if ply < 0 || ply >= MaxPly {
		return [maxKillersPerPly]Move{}
	}
	return t.killers[ply]
}

// IsKiller reports whether m is one of ply's stored killer moves.
func (t *Table) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= MaxPly {
		return false
	}
	for _, k := range t.killers[ply] {
		if k == m {
			return true
		}
	}
	return false
}

// AddKiller records m as a killer at ply, shifting the previous first
// killer down, and skipping duplicates.
func (t *Table) AddKiller(ply int, m Move) {
	if ply < 0 || ply >= MaxPly {
		return
	}
	if t.killers[ply][0] == m {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = m
}

// historyBonus follows the usual depth-squared bonus curve, clamped to
// avoid overflow on the int32 table after repeated updates.
func historyBonus(depth int) int32 {
	b := int32(depth * depth)
	if b > 1200 {
		b = 1200
	}
	return b
}

// UpdateQuiet rewards m (a quiet move that caused a beta cutoff) and
// penalizes every quiet move already tried and rejected at this node,
// following the standard history-heuristic gravity update.
func (t *Table) UpdateQuiet(color Color, tried []Move, best Move, depth int) {
	bonus := historyBonus(depth)
	for _, m := range tried {
		h := &t.quietHistory[color][m.From][m.To]
		if m == best {
			*h += bonus - (*h)*bonus/16384
		} else {
			*h -= bonus + (*h)*bonus/16384
		}
	}
}

// QuietScore returns the history score for color's from->to quiet move.
func (t *Table) QuietScore(color Color, from, to Square) int32 {
	return t.quietHistory[color][from][to]
}

// SetCounterMove records reply as the move played in response to m.
func (t *Table) SetCounterMove(color Color, m, reply Move) {
	if m.IsNone() {
		return
	}
	t.counterMove[color][m.From][m.To] = reply
}

// CounterMove returns the recorded reply to m, or MoveNone.
func (t *Table) CounterMove(color Color, m Move) Move {
	if m.IsNone() {
		return MoveNone
	}
	return t.counterMove[color][m.From][m.To]
}

// UpdateCapture rewards/penalizes a capture the same way UpdateQuiet does
// for quiets, indexed by piece-kind/victim-color/victim-kind instead of
// squares, so it generalizes across positions.
func (t *Table) UpdateCapture(moved PieceType, victimColor Color, victim PieceType, good bool, depth int) {
	bonus := historyBonus(depth)
	h := &t.captureHist[moved][victimColor][victim]
	if good {
		*h += bonus - (*h)*bonus/16384
	} else {
		*h -= bonus + (*h)*bonus/16384
	}
}

// CaptureScore returns the capture-history score for a moved piece type
// capturing a victim of the given color/type.
func (t *Table) CaptureScore(moved PieceType, victimColor Color, victim PieceType) int32 {
	return t.captureHist[moved][victimColor][victim]
}

func (t *Table) String() string {
	return fmt.Sprintf("history.Table{killers, quietHistory, counterMove, captureHist}")
}
