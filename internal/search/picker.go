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
	"github.com/fourplayerchess/engine/internal/attacks"
	"github.com/fourplayerchess/engine/internal/board"
	"github.com/fourplayerchess/engine/internal/config"
	"github.com/fourplayerchess/engine/internal/history"
	"github.com/fourplayerchess/engine/internal/movegen"
	. "github.com/fourplayerchess/engine/internal/types"
)

// Move-ordering score bands, highest first. Every move gets a value in
// exactly one band so MoveList.Sort produces: TT move, good captures
// (MVV-LVA plus capture history), killers, counter-move, quiet history,
// bad captures.
const (
	bandTT           = int32(1) << 28
	bandGoodCapture  = int32(1) << 27
	bandKiller       = int32(1) << 26
	bandCounterMove  = int32(1) << 25
	bandQuiet        = int32(1) << 10
	bandBadCapture   = -(int32(1) << 27)
)

// order assigns an OrderingValue to every move in ml for the given search
// context, sorts the list in place by it and then resets it to zero, so the
// moves the search records (PV, killers, counter-moves, TT) compare equal
// with == to freshly generated ones. It mirrors the teacher's staged move
// picker (moveorder.go) without materializing separate capture/quiet lists.
func order(p *board.Position, ml *movegen.MoveList, h *history.Table, ttMove Move, ply int, prevMove Move) {
	us := p.Turn()
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		var score int32
		switch {
		case !ttMove.IsNone() && m == ttMove:
			score = bandTT
		case m.IsCapture():
			mvvLva := int32(m.Captured.ValueOf())*16 - int32(m.Moved.ValueOf())
			capHist := h.CaptureScore(m.Moved.Type(), m.Captured.Color(), m.Captured.Type())
			// Good/bad capture classification uses the literal
			// attacker-value-vs-captured-value comparison, not full SEE;
			// SEE is reserved for quiescence pruning.
			if int(m.Moved.ValueOf()) <= int(m.Captured.ValueOf()) {
				score = bandGoodCapture + mvvLva + capHist
			} else {
				score = bandBadCapture + mvvLva + capHist
			}
		case h.IsKiller(ply, m):
			score = bandKiller
		case !prevMove.IsNone() && h.CounterMove(us, prevMove) == m:
			score = bandCounterMove
		default:
			score = bandQuiet + h.QuietScore(us, m.From, m.To)
		}
		if config.Settings.Search.UseCheckBonus && attacks.DeliversCheckAny(p, us, m.To, m.Moved.Type()) {
			if m.IsCapture() {
				score += 1000
			} else {
				score += 100000
			}
		}
		ml.Set(i, m.WithOrderingValue(score))
	}
	ml.Sort()
	for i := 0; i < ml.Len(); i++ {
		ml.Set(i, ml.At(i).WithOrderingValue(0))
	}
}
