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
	. "github.com/fourplayerchess/engine/internal/types"
)

// see (Static Exchange Evaluation) estimates the material result of
// capturing on m.To and playing out every further capture on that square,
// without making any move on p. It follows the teacher's see.go swap-list
// shape, but pools attackers by TEAM rather than by individual color: in
// this variant a capture sequence on one square commonly involves pieces
// from both members of a partnership, so the alternation that matters is
// "mover's team" against "the opposing team", least-valuable-piece-first
// within each pool, not a strict four-way round robin. Discovered x-ray
// attackers uncovered mid-sequence are not modeled (documented blind spot,
// the same simplification the teacher's SEE makes for pins).
func see(p *board.Position, m Move) Value {
	if !m.IsCapture() {
		return 0
	}

	moverTeam := m.Moved.Color().Team()
	target := m.To

	type attacker struct {
		sq   Square
		val  Value
		team Team
	}
	var pool []attacker
	for c := Red; c <= Green; c++ {
		if p.IsEliminated(c) {
			continue
		}
		for _, sq := range attacks.Attackers(p, target, c) {
			if sq == m.From {
				continue
			}
			pool = append(pool, attacker{sq: sq, val: p.PieceAt(sq).ValueOf(), team: c.Team()})
		}
	}
	used := make(map[Square]bool, len(pool)+2)
	used[m.From] = true

	gains := []Value{m.Captured.ValueOf()}
	attackerValue := m.Moved.ValueOf()
	side := moverTeam.Other()

	for i := 0; i < len(pool)+1; i++ {
		best := -1
		for j := range pool {
			if pool[j].team != side || used[pool[j].sq] {
				continue
			}
			if best == -1 || pool[j].val < pool[best].val {
				best = j
			}
		}
		if best == -1 {
			break
		}
		gains = append(gains, attackerValue-gains[len(gains)-1])
		attackerValue = pool[best].val
		used[pool[best].sq] = true
		side = side.Other()
	}

	for i := len(gains) - 1; i > 0; i-- {
		negPrev := -gains[i-1]
		if gains[i] > negPrev {
			negPrev = gains[i]
		}
		gains[i-1] = -negPrev
	}
	return gains[0]
}

// seeGE reports whether the capture's SEE value is at least threshold,
// the cheap comparison quiescence/move-ordering actually need.
func seeGE(p *board.Position, m Move, threshold Value) bool {
	return see(p, m) >= threshold
}
