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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

func TestNoOneInCheckAtStart(t *testing.T) {
	p := board.NewPosition("")
	for c := Red; c <= Green; c++ {
		assert.False(t, KingInCheck(p, c))
	}
}

func TestRedKingSquareIsAttackedByNoOneAtStart(t *testing.T) {
	p := board.NewPosition("")
	redKing := p.KingSquare(Red)
	assert.False(t, IsAttacked(p, redKing, Blue))
	assert.False(t, IsAttacked(p, redKing, Yellow))
	assert.False(t, IsAttacked(p, redKing, Green))
}

func TestPawnAdvanceDirDiffersPerColor(t *testing.T) {
	rdr, rdc := PawnAdvanceDir(Red)
	bdr, bdc := PawnAdvanceDir(Blue)
	assert.False(t, rdr == bdr && rdc == bdc)
}

func TestAttackersOfOwnKingSquareAreEmptyAtStart(t *testing.T) {
	p := board.NewPosition("")
	redKing := p.KingSquare(Red)
	assert.Empty(t, Attackers(p, redKing, Blue))
}
