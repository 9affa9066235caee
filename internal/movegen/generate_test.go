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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

func TestLegalMovesFromStartPositionAreNonEmpty(t *testing.T) {
	p := board.NewPosition("")
	buf := NewMoveList(MovesPerPartition)
	moves := LegalMoves(p, buf)
	assert.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, Red, m.Moved.Color())
	}
}

func TestLegalMovesNeverLeaveMoverInCheck(t *testing.T) {
	p := board.NewPosition("")
	buf := NewMoveList(MovesPerPartition)
	for _, m := range LegalMoves(p, buf) {
		assert.True(t, IsLegal(p, m))
	}
}

func TestHasLegalMovesAtStart(t *testing.T) {
	p := board.NewPosition("")
	assert.True(t, HasLegalMoves(p))
	assert.False(t, IsInCheckmate(p))
	assert.False(t, IsInStalemate(p))
}

func TestFromUciFindsPawnPush(t *testing.T) {
	p := board.NewPosition("")
	m := FromUci(p, "h2-h4")
	assert.False(t, m.IsNone())
	assert.Equal(t, Pawn, m.Moved.Type())
	assert.Equal(t, Red, m.Moved.Color())
}

func TestFromUciRejectsUnknownMove(t *testing.T) {
	p := board.NewPosition("")
	m := FromUci(p, "h2-h7")
	assert.True(t, m.IsNone())
}

// castlingAvailableFen gives Red both rooks on their home squares, an
// unmoved king, no check, and every intermediate square empty and
// unattacked: both castling moves should be legal.
const castlingAvailableFen = "R-0,0,0,0-1,0,0,0-1,0,0,0-0,0,0,0-0-" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,rR,3,rK,2,rR,x,x,x"

func TestCastlingAvailableEmitsBothCastlingMoves(t *testing.T) {
	p := board.NewPosition(castlingAvailableFen)
	buf := NewMoveList(MovesPerPartition)
	var castles []Move
	for _, m := range LegalMoves(p, buf) {
		if m.IsCastling {
			castles = append(castles, m)
		}
	}
	assert.Len(t, castles, 2)

	var sawKingside, sawQueenside bool
	for _, m := range castles {
		switch m.To {
		case SquareOf(13, 9):
			sawKingside = true
			assert.Equal(t, SquareOf(13, 10), m.RookFrom)
			assert.Equal(t, SquareOf(13, 8), m.RookTo)
		case SquareOf(13, 5):
			sawQueenside = true
			assert.Equal(t, SquareOf(13, 3), m.RookFrom)
			assert.Equal(t, SquareOf(13, 6), m.RookTo)
		}
	}
	assert.True(t, sawKingside)
	assert.True(t, sawQueenside)
}

// castlingThroughCheckFen is castlingAvailableFen with a Blue queen on
// column 8, bearing straight down an otherwise empty file onto (13,8), the
// first square the Red king's kingside castle crosses; queenside is
// untouched by it.
const castlingThroughCheckFen = "R-0,0,0,0-1,0,0,0-1,0,0,0-0,0,0,0-0-" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"14/" +
	"8,bQ,5/" +
	"14/" +
	"14/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,8,x,x,x/" +
	"x,x,x,rR,3,rK,2,rR,x,x,x"

func TestCastlingThroughCheckNotGenerated(t *testing.T) {
	p := board.NewPosition(castlingThroughCheckFen)
	buf := NewMoveList(MovesPerPartition)
	for _, m := range LegalMoves(p, buf) {
		if m.IsCastling {
			assert.NotEqual(t, SquareOf(13, 9), m.To, "kingside castle crosses an attacked square and must not be generated")
		}
	}
}

func TestDoMoveThenGenerateSwitchesToNextColor(t *testing.T) {
	p := board.NewPosition("")
	m := FromUci(p, "h2-h3")
	assert.False(t, m.IsNone())
	p.DoMove(m)
	assert.Equal(t, Blue, p.Turn())
	buf := NewMoveList(MovesPerPartition)
	for _, mv := range LegalMoves(p, buf) {
		assert.Equal(t, Blue, mv.Moved.Color())
	}
	p.UndoMove()
	assert.Equal(t, Red, p.Turn())
}
