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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/fourplayerchess/engine/internal/types"
)

func TestNewPositionStartFen(t *testing.T) {
	p := NewPosition("")
	assert.Equal(t, Red, p.Turn())
	assert.Equal(t, MakeSquare("h1"), p.KingSquare(Red))
	assert.False(t, p.IsEliminated(Red))
	assert.False(t, p.IsEliminated(Blue))
	assert.False(t, p.IsEliminated(Yellow))
	assert.False(t, p.IsEliminated(Green))
}

func TestStringFenRoundTrip(t *testing.T) {
	p := NewPosition("")
	fen := p.StringFen()
	p2 := NewPosition(fen)
	assert.Equal(t, p.ZobristKey(), p2.ZobristKey())
	assert.Equal(t, fen, p2.StringFen())
}

func TestCornerSquaresAreIllegal(t *testing.T) {
	p := NewPosition("")
	assert.Equal(t, SqNone, SquareOf(0, 0))
	assert.Equal(t, PieceNone, p.PieceAt(SquareOf(1, 1)))
}

func TestDoUndoMoveRestoresZobrist(t *testing.T) {
	p := NewPosition("")
	before := p.ZobristKey()

	from := MakeSquare("h2")
	to := MakeSquare("h4")
	m := Move{From: from, To: to, Moved: p.PieceAt(from)}

	p.DoMove(m)
	assert.NotEqual(t, before, p.ZobristKey())
	assert.Equal(t, Blue, p.Turn())

	p.UndoMove()
	assert.Equal(t, before, p.ZobristKey())
	assert.Equal(t, Red, p.Turn())
}

func TestDoUndoMovePreservesMaterial(t *testing.T) {
	p := NewPosition("")
	beforeRed := p.Material(Red)

	from := MakeSquare("h2")
	to := MakeSquare("h4")
	m := Move{From: from, To: to, Moved: p.PieceAt(from)}
	p.DoMove(m)
	p.UndoMove()

	assert.Equal(t, beforeRed, p.Material(Red))
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition("")
	c := p.Clone()

	from := MakeSquare("h2")
	to := MakeSquare("h4")
	m := Move{From: from, To: to, Moved: p.PieceAt(from)}
	c.DoMove(m)

	assert.NotEqual(t, p.ZobristKey(), c.ZobristKey())
	assert.Equal(t, Red, p.Turn())
	assert.Equal(t, Blue, c.Turn())
}

// TestHashStabilityAcrossNamedMoveSequence replays h3 -> c7 -> g12 -> l8 ->
// Qxm7 -> Qxg2 from the standard setup and checks the Zobrist key at every
// prefix, then unmakes all six and checks the same keys come back in
// reverse, mirroring original_source/board_test.cc's KeyTest.
func TestHashStabilityAcrossNamedMoveSequence(t *testing.T) {
	p := NewPosition("")
	h0 := p.ZobristKey()

	from := MakeSquare("h2")
	p.DoMove(Move{From: from, To: MakeSquare("h3"), Moved: p.PieceAt(from)})
	h1 := p.ZobristKey()

	from = MakeSquare("b7")
	p.DoMove(Move{From: from, To: MakeSquare("c7"), Moved: p.PieceAt(from)})
	h2 := p.ZobristKey()

	from = MakeSquare("g13")
	p.DoMove(Move{From: from, To: MakeSquare("g12"), Moved: p.PieceAt(from)})
	h3 := p.ZobristKey()

	from = MakeSquare("m8")
	p.DoMove(Move{From: from, To: MakeSquare("l8"), Moved: p.PieceAt(from)})
	h4 := p.ZobristKey()

	from, to := MakeSquare("g1"), MakeSquare("m7")
	p.DoMove(Move{From: from, To: to, Moved: p.PieceAt(from), Captured: p.PieceAt(to), CapturedSq: to})
	h5 := p.ZobristKey()

	from, to = MakeSquare("a8"), MakeSquare("g2")
	p.DoMove(Move{From: from, To: to, Moved: p.PieceAt(from), Captured: p.PieceAt(to), CapturedSq: to})

	p.UndoMove()
	assert.Equal(t, h5, p.ZobristKey())
	p.UndoMove()
	assert.Equal(t, h4, p.ZobristKey())
	p.UndoMove()
	assert.Equal(t, h3, p.ZobristKey())
	p.UndoMove()
	assert.Equal(t, h2, p.ZobristKey())
	p.UndoMove()
	assert.Equal(t, h1, p.ZobristKey())
	p.UndoMove()
	assert.Equal(t, h0, p.ZobristKey())

	assert.NotEqual(t, h0, h1)
	assert.NotEqual(t, h0, h2)
	assert.NotEqual(t, h0, h3)
	assert.NotEqual(t, h0, h5)
}
