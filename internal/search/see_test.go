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
	. "github.com/fourplayerchess/engine/internal/types"
)

// loneQueenFen puts a Red queen on a pawn at (9,4) that is itself defended
// by two more Blue pawns at (8,3) and (10,3), both a legal diagonal
// capture away from (9,4): the queen wins the pawn but loses itself to the
// cheapest recapture.
const loneQueenFen = "R-0,0,0,0-0,0,0,0-0,0,0,0-0,0,0,0-0-" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"3,bP,10/" +
	"4,bP,9/" +
	"3,bP,1,rQ,8/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x"

func TestStaticExchangeEvaluationOnDoublyDefendedPawnIsNonPositive(t *testing.T) {
	p := board.NewPosition(loneQueenFen)

	from, to := SquareOf(10, 5), SquareOf(9, 4)
	m := Move{From: from, To: to, Moved: p.PieceAt(from), Captured: p.PieceAt(to), CapturedSq: to}

	assert.LessOrEqual(t, int(see(p, m)), 0)
	assert.False(t, seeGE(p, m, 1))
}
