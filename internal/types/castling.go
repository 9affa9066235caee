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

// CastlingRights packs the kingside/queenside castling availability for all
// four colors into a single byte, two bits per color: bit 2c is kingside,
// bit 2c+1 is queenside. This mirrors the teacher's packed-rights approach
// generalized from two colors to four.
type CastlingRights uint8

func castlingBit(c Color, kingside bool) uint8 {
	b := uint8(c) * 2
	if !kingside {
		b++
	}
	return b
}

// CastlingAll has every color's both-sides rights set; the starting position.
const CastlingAll CastlingRights = 0xFF

// Has reports whether color c still has the given side's castling right.
func (cr CastlingRights) Has(c Color, kingside bool) bool {
	return cr&(1<<castlingBit(c, kingside)) != 0
}

// Set grants the given side's castling right for color c, returning the
// updated value.
func (cr CastlingRights) Set(c Color, kingside bool) CastlingRights {
	return cr | (1 << castlingBit(c, kingside))
}

// Remove clears the given side's castling right for color c, returning the
// updated value. CastlingRights is a value type so this never mutates its
// receiver in place.
func (cr CastlingRights) Remove(c Color, kingside bool) CastlingRights {
	return cr &^ (1 << castlingBit(c, kingside))
}

// RemoveAllFor clears both castling rights for color c (used when that
// color's king moves or is captured/eliminated).
func (cr CastlingRights) RemoveAllFor(c Color) CastlingRights {
	return cr.Remove(c, true).Remove(c, false)
}

func (cr CastlingRights) String() string {
	letters := [4][2]byte{{'K', 'Q'}, {'k', 'q'}, {'N', 'M'}, {'n', 'm'}}
	out := make([]byte, 0, 8)
	for c := Red; c <= Green; c++ {
		if cr.Has(c, true) {
			out = append(out, letters[c][0])
		}
		if cr.Has(c, false) {
			out = append(out, letters[c][1])
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return string(out)
}
