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

// Piece packs a Color and a PieceType into a single byte: color*8 + kind.
// PieceNone is the zero value of neither a valid color nor kind.
type Piece uint8

const PieceNone Piece = 0

// MakePiece packs a color/kind pair into a Piece. Returns PieceNone if
// either argument is invalid.
func MakePiece(c Color, pt PieceType) Piece {
	if !c.IsValid() || !pt.IsValid() {
		return PieceNone
	}
	return Piece(uint8(c)*8 + uint8(pt))
}

// Color returns the piece's owning color.
func (p Piece) Color() Color {
	if p == PieceNone {
		return ColorNone
	}
	return Color(uint8(p) / 8)
}

// Type returns the piece's kind.
func (p Piece) Type() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(uint8(p) % 8)
}

// IsValid reports whether p encodes a real color/kind pair.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.Color().IsValid() && p.Type().IsValid()
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	return p.Type().ValueOf()
}

var colorLetterUpper = [...]byte{'R', 'B', 'Y', 'G'}
var colorLetterLower = [...]byte{'r', 'b', 'y', 'g'}

// String renders the piece as a two-character color-letter + kind-letter
// pair ("Rk" = Red king), or "--" for PieceNone. Lowercase kind letters
// mirror algebraic-notation convention; the color letter's case is not
// significant and is always uppercase.
func (p Piece) String() string {
	if !p.IsValid() {
		return "--"
	}
	return string(colorLetterUpper[p.Color()]) + p.Type().String()
}

// PieceFromChar parses a two-character piece token as produced by String(),
// returning PieceNone for anything malformed.
func PieceFromChar(s string) Piece {
	if len(s) != 2 {
		return PieceNone
	}
	var c Color
	found := false
	for i, lc := range colorLetterUpper {
		if s[0] == lc || s[0] == colorLetterLower[i] {
			c = Color(i)
			found = true
			break
		}
	}
	if !found {
		return PieceNone
	}
	pt := PieceTypeFromChar(s[1:2])
	if pt == PtNone {
		return PieceNone
	}
	return MakePiece(c, pt)
}
