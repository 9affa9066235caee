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

package eval

import (
	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

// pawnCache memoizes the doubled/isolated pawn penalty per color by a
// dedicated pawn-only Zobrist-style key, the same shape as the teacher's
// pawncache.go: pawn structure changes far less often than the rest of the
// position, so recomputing it on every node wastes work a small direct-
// mapped cache avoids.
type pawnCache struct {
	entries []pawnCacheEntry
	mask    uint64
}

type pawnCacheEntry struct {
	key   Key
	color Color
	valid bool
	score Score
}

func newPawnCache(slots int) *pawnCache {
	n := 1
	for n < slots {
		n <<= 1
	}
	return &pawnCache{entries: make([]pawnCacheEntry, n), mask: uint64(n - 1)}
}

func (pc *pawnCache) pawnKey(p *board.Position, c Color) Key {
	var k Key
	for _, sq := range p.Pieces(c, Pawn) {
		k ^= Key(sq)<<1 ^ Key(c)<<9
	}
	return k
}

func (e *Evaluator) pawnStructureTerm(p *board.Position, team Team) Value {
	var total Value
	for c := Red; c <= Green; c++ {
		if p.IsEliminated(c) || c.Team() != team {
			continue
		}
		total += e.colorPawnStructure(p, c)
	}
	return total
}

func (e *Evaluator) colorPawnStructure(p *board.Position, c Color) Value {
	key := e.pawns.pawnKey(p, c)
	idx := uint64(key) & e.pawns.mask
	ent := &e.pawns.entries[idx]
	if ent.valid && ent.key == key && ent.color == c {
		return ent.score.ValueFromScore(0.5)
	}

	filesOrRanks := map[int]int{}
	pawns := p.Pieces(c, Pawn)
	for _, sq := range pawns {
		axis := fileAxis(c, sq)
		filesOrRanks[axis]++
	}
	var penalty Value
	for _, count := range filesOrRanks {
		if count > 1 {
			penalty -= Value(count-1) * 12 // doubled
		}
	}
	for axis := range filesOrRanks {
		if filesOrRanks[axis-1] == 0 && filesOrRanks[axis+1] == 0 {
			penalty -= 10 // isolated
		}
	}

	score := Score{Mid: penalty, End: penalty * 2}
	*ent = pawnCacheEntry{key: key, color: c, valid: true, score: score}
	return score.ValueFromScore(0.5)
}

// fileAxis returns the file-like coordinate pawns of color c are compared
// along for doubled/isolated detection: the column for Red/Yellow pawns
// (which march along rows) and the row for Blue/Green pawns (which march
// along columns).
func fileAxis(c Color, sq Square) int {
	switch c {
	case Red, Yellow:
		return sq.Col()
	default:
		return sq.Row()
	}
}
