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

// CheckState caches whether making a move is known to deliver check. It is
// a move-ordering/extension hint only, never consulted for legality: a
// discovered check from a piece other than the moved one is not detected
// and leaves this at CheckUnknown.
type CheckState int8

const (
	CheckUnknown CheckState = iota
	CheckNo
	CheckYes
)

// Move describes a single ply, carrying enough state to undo itself without
// recomputation. Unlike the teacher's packed-uint32 Move, four-player rules
// (en-passant capture squares, per-color castling, team elimination) need
// more state than fits in 32 bits, so Move is a plain struct here. A move
// carries at most one captured piece.
type Move struct {
	From      Square
	To        Square
	Moved     Piece
	Promotion PieceType // PtNone if not a promotion

	Captured Piece  // PieceNone if not a capture
	CapturedSq Square // usually == To; differs only for en-passant

	IsCastling     bool
	RookFrom       Square
	RookTo         Square

	RightsBefore CastlingRights
	RightsAfter  CastlingRights

	Check CheckState

	// orderingValue is set by the move picker and read by MoveList.Sort; it
	// is not printed. Go's == compares it like any other field, so the
	// picker resets it to zero once the list is sorted.
	orderingValue int32
}

// MoveNone is the zero-value sentinel used throughout search/movegen for
// "no move".
var MoveNone = Move{}

// IsNone reports whether m is the MoveNone sentinel.
func (m Move) IsNone() bool {
	return m.From == 0 && m.To == 0 && m.Moved == PieceNone && !m.IsCastling
}

// IsCapture reports whether this move removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.Captured != PieceNone
}

// IsEnPassant reports whether this move's capture square differs from its
// destination square, i.e. the captured pawn is removed from a square the
// moving piece did not land on.
func (m Move) IsEnPassant() bool {
	return m.IsCapture() && m.CapturedSq != m.To
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != PtNone
}

// OrderingValue returns the score the move picker last assigned this move.
func (m Move) OrderingValue() int32 { return m.orderingValue }

// WithOrderingValue returns a copy of m carrying the given ordering score.
func (m Move) WithOrderingValue(v int32) Move {
	m.orderingValue = v
	return m
}

// String renders the move in long algebraic form using the engine's square
// notation, e.g. "h2-h4", "h2-h4=q", or "-" for MoveNone.
func (m Move) String() string {
	if m.IsNone() {
		return "-"
	}
	s := fmt.Sprintf("%s-%s", m.From, m.To)
	if m.IsPromotion() {
		s += "=" + m.Promotion.String()
	}
	return s
}

// StringUci is an alias of String: the engine's move notation doubles as
// its UCI-dialect wire format.
func (m Move) StringUci() string {
	return m.String()
}
