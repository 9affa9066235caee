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
	"math"

	. "github.com/fourplayerchess/engine/internal/types"
)

// pstValue scores a piece by centrality rather than the teacher's
// per-square literal tables: on this board every color's "forward"
// direction points toward the shared center, so a single
// distance-from-center table, reused for all four colors, plays the role
// the teacher's four separate mid/end tables play on a regular board.
// Knights and bishops gain the most from centralization; queens much less
// and rooks not at all; pawns instead get a bonus that grows with how far
// they have advanced from their own back rank/file.
func pstValue(c Color, pt PieceType, sq Square) Score {
	dist := centerDistance(sq)
	switch pt {
	case Knight:
		v := Value(24 - dist*3)
		return Score{Mid: v, End: v}
	case Bishop:
		v := Value(16 - dist*2)
		return Score{Mid: v, End: v}
	case Queen:
		v := Value(8 - dist)
		return Score{Mid: v, End: v}
	case Rook:
		return Score{}
	case Pawn:
		advance := pawnAdvancement(c, sq)
		return Score{Mid: Value(advance * 2), End: Value(advance * 6)}
	case King:
		v := Value(dist * 4)
		return Score{Mid: -v, End: v / 2}
	}
	return Score{}
}

const boardCenter = (BoardDim - 1) / 2.0

func centerDistance(sq Square) int {
	dr := math.Abs(float64(sq.Row()) - boardCenter)
	dc := math.Abs(float64(sq.Col()) - boardCenter)
	if dr > dc {
		return int(dr)
	}
	return int(dc)
}

// pawnAdvancement measures how far a color's pawn has progressed toward
// its promotion edge, 0 at the back rank/file up to BoardDim-1 at the edge.
func pawnAdvancement(c Color, sq Square) int {
	switch c {
	case Yellow:
		return sq.Row()
	case Red:
		return BoardDim - 1 - sq.Row()
	case Blue:
		return sq.Col()
	case Green:
		return BoardDim - 1 - sq.Col()
	}
	return 0
}
