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

// The board is a 14x14 grid with the four 3x3 corners removed, leaving 160
// legal squares. Rows and columns are both 0-13 internally; row 0 is
// Yellow's back rank and row 13 is Red's, matching original_source's
// loc = 14*row + col encoding. UCI-facing notation flips the row (see
// Square.String) so that row 14 is printed at the top of the board.
const (
	BoardDim  = 14
	SqLength  = BoardDim * BoardDim // 196 total grid cells
	SqNone    = Square(SqLength)    // 196: off-board / no square
)

// Square is a single cell of the 14x14 grid, 0..195, or SqNone.
type Square uint8

// Row returns the 0-13 internal row of the square.
func (sq Square) Row() int { return int(sq) / BoardDim }

// Col returns the 0-13 internal column of the square.
func (sq Square) Col() int { return int(sq) % BoardDim }

// cornerCut reports whether (row,col) falls inside one of the four 3x3
// corner cutouts, matching original_source/board.h's IsLegalLocation:
// rows 0-2 and 11-13 each exclude columns 0-2 and 11-13.
func cornerCut(row, col int) bool {
	if row < 0 || row >= BoardDim || col < 0 || col >= BoardDim {
		return true
	}
	if (row < 3 || row > 10) && (col < 3 || col > 10) {
		return true
	}
	return false
}

// IsValid reports whether sq is a legal, on-board square (one of the 160).
func (sq Square) IsValid() bool {
	if sq >= SqLength {
		return false
	}
	return !cornerCut(sq.Row(), sq.Col())
}

// SquareOf builds a Square from a 0-13 row/col pair. Returns SqNone if the
// location is off the grid or inside a corner cutout.
func SquareOf(row, col int) Square {
	if cornerCut(row, col) {
		return SqNone
	}
	return Square(row*BoardDim + col)
}

// To steps one square in the given Direction, returning SqNone if the
// result would leave the legal board.
func (sq Square) To(d Direction) Square {
	if sq >= SqLength {
		return SqNone
	}
	row, col := sq.Row()+d.dRow(), sq.Col()+d.dCol()
	return SquareOf(row, col)
}

// colLetters maps internal column 0-13 to the UCI-dialect file letter a-n.
const colLetters = "abcdefghijklmn"

// String renders a square in the engine's UCI-dialect notation: a file
// letter a-n followed by a row number 1-14, with row 14 printed at the
// top of the board (row_number = 14 - internal_row), or "-" for SqNone /
// an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", colLetters[sq.Col()], BoardDim-sq.Row())
}

// MakeSquare parses the engine's UCI-dialect square notation ("a1".."n14"),
// returning SqNone for anything malformed or off the legal board.
func MakeSquare(s string) Square {
	if len(s) < 2 || len(s) > 3 {
		return SqNone
	}
	col := -1
	for i, c := range colLetters {
		if byte(c) == s[0] {
			col = i
			break
		}
	}
	if col < 0 {
		return SqNone
	}
	rowNum := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return SqNone
		}
		rowNum = rowNum*10 + int(c-'0')
	}
	if rowNum < 1 || rowNum > BoardDim {
		return SqNone
	}
	row := BoardDim - rowNum
	return SquareOf(row, col)
}
