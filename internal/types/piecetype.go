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

// PieceType identifies the kind of a piece independent of its color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength = 7
)

var pieceTypeStrings = [...]string{"-", "p", "n", "b", "r", "q", "k"}

func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "-"
	}
	return pieceTypeStrings[pt]
}

// IsValid reports whether pt is a real piece type (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PieceTypeLength
}

// IsSlider reports whether pt moves along open rays (bishop/rook/queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// ValueOf returns the static material value of one piece of this type in centipawns.
func (pt PieceType) ValueOf() Value {
	switch pt {
	case Pawn:
		return ValuePawn
	case Knight:
		return ValueKnight
	case Bishop:
		return ValueBishop
	case Rook:
		return ValueRook
	case Queen:
		return ValueQueen
	case King:
		return ValueKing
	}
	return ValueZero
}

// PieceTypeFromChar maps a FEN-style letter ("p","n","b","r","q","k", case
// insensitive) to a PieceType, returning PtNone for anything else.
func PieceTypeFromChar(c string) PieceType {
	switch c {
	case "p", "P":
		return Pawn
	case "n", "N":
		return Knight
	case "b", "B":
		return Bishop
	case "r", "R":
		return Rook
	case "q", "Q":
		return Queen
	case "k", "K":
		return King
	}
	return PtNone
}
