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
	"github.com/fourplayerchess/engine/internal/attacks"
	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

// GenMode selects which subset of pseudo-legal moves to generate, mirroring
// the teacher's staged generation (captures first in quiescence, everything
// in the main search).
type GenMode uint8

const (
	GenCaptures GenMode = iota
	GenNonCaptures
	GenAll
)

// Generate appends every pseudo-legal move for the side to move into dst,
// according to mode. Pseudo-legal here means "obeys piece movement and
// capture rules" but does not yet check whether the mover's own king ends
// up in check; call IsLegal on each move (or use LegalMoves) to narrow to
// legal moves.
func Generate(p *board.Position, mode GenMode, dst *MoveList) {
	GenerateColor(p, p.Turn(), mode, dst)
}

// GenerateColor is Generate generalized to an arbitrary color instead of
// the position's side to move, used by the evaluator's mobility/activation
// terms (spec.md §4.5) which need a pseudo-legal move count for every one
// of the four colors at the same position, not only the mover's.
func GenerateColor(p *board.Position, us Color, mode GenMode, dst *MoveList) {
	rights := p.CastlingRights()

	for _, sq := range p.Pieces(us, Pawn) {
		generatePawnMoves(p, us, sq, mode, dst)
	}
	for _, sq := range p.Pieces(us, Knight) {
		generateStepMoves(p, us, sq, KnightOffsets[:], mode, dst, rights)
	}
	for _, sq := range p.Pieces(us, Bishop) {
		generateSliderMoves(p, us, sq, []Direction{NorthEast, NorthWest, SouthEast, SouthWest}, mode, dst, rights)
	}
	for _, sq := range p.Pieces(us, Rook) {
		generateSliderMoves(p, us, sq, []Direction{North, South, East, West}, mode, dst, rights)
	}
	for _, sq := range p.Pieces(us, Queen) {
		generateSliderMoves(p, us, sq, RayDirections[:], mode, dst, rights)
	}
	for _, sq := range p.Pieces(us, King) {
		generateKingMoves(p, us, sq, mode, dst, rights)
	}
	if mode != GenCaptures {
		generateCastling(p, us, dst)
	}
}

// LegalMoves generates and filters in one step; convenient for terminal
// queries (HasLegalMoves, checkmate/stalemate detection) and UCI "go"
// top-level move lists.
func LegalMoves(p *board.Position, buf *MoveList) []Move {
	buf.Clear()
	Generate(p, GenAll, buf)
	out := make([]Move, 0, buf.Len())
	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if IsLegal(p, m) {
			out = append(out, m)
		}
	}
	return out
}

// IsLegal reports whether making m leaves the mover's own king safe.
func IsLegal(p *board.Position, m Move) bool {
	mover := m.Moved.Color()
	p.DoMove(m)
	ok := !attacks.KingInCheck(p, mover)
	p.UndoMove()
	return ok
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without building the full list.
func HasLegalMoves(p *board.Position) bool {
	buf := NewMoveList(MovesPerPartition)
	Generate(p, GenAll, buf)
	for i := 0; i < buf.Len(); i++ {
		if IsLegal(p, buf.At(i)) {
			return true
		}
	}
	return false
}

// IsInCheckmate reports whether the side to move is in check with no legal moves.
func IsInCheckmate(p *board.Position) bool {
	return attacks.KingInCheck(p, p.Turn()) && !HasLegalMoves(p)
}

// IsInStalemate reports whether the side to move has no legal moves but is not in check.
func IsInStalemate(p *board.Position) bool {
	return !attacks.KingInCheck(p, p.Turn()) && !HasLegalMoves(p)
}

func wantCapture(mode GenMode, isCapture bool) bool {
	switch mode {
	case GenCaptures:
		return isCapture
	case GenNonCaptures:
		return !isCapture
	default:
		return true
	}
}

func rightsAfterMoveFrom(rights CastlingRights, color Color, from Square, pt PieceType) CastlingRights {
	if pt == King {
		return rights.RemoveAllFor(color)
	}
	return rights
}

func rightsAfterCapture(rights CastlingRights, capColor Color, capPt PieceType) CastlingRights {
	if capPt == King {
		return rights.RemoveAllFor(capColor)
	}
	return rights
}

func generatePawnMoves(p *board.Position, us Color, from Square, mode GenMode, dst *MoveList) {
	fr, fc := attacks.PawnAdvanceDir(us)
	rights := p.CastlingRights()
	oneStep := SquareOf(from.Row()+fr, from.Col()+fc)
	onBackRank := isPawnStartSquare(us, from)

	addPromotions := func(to Square, captured Piece, capSq Square) {
		for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			m := Move{From: from, To: to, Moved: MakePiece(us, Pawn), Promotion: pt,
				Captured: captured, CapturedSq: capSq,
				RightsBefore: rights, RightsAfter: rights}
			dst.Add(m)
		}
	}
	isLastRank := func(sq Square) bool { return isPawnPromotionSquare(us, sq) }

	if wantCapture(mode, false) && oneStep != SqNone && p.PieceAt(oneStep) == PieceNone {
		if isLastRank(oneStep) {
			addPromotions(oneStep, PieceNone, SqNone)
		} else {
			dst.Add(Move{From: from, To: oneStep, Moved: MakePiece(us, Pawn), RightsBefore: rights, RightsAfter: rights})
			if onBackRank {
				twoStep := SquareOf(from.Row()+2*fr, from.Col()+2*fc)
				if twoStep != SqNone && p.PieceAt(twoStep) == PieceNone {
					dst.Add(Move{From: from, To: twoStep, Moved: MakePiece(us, Pawn), RightsBefore: rights, RightsAfter: rights})
				}
			}
		}
	}

	if wantCapture(mode, true) {
		for _, s := range [2]int{-1, 1} {
			var to Square
			if fr != 0 {
				to = SquareOf(from.Row()+fr, from.Col()+s)
			} else {
				to = SquareOf(from.Row()+s, from.Col()+fc)
			}
			if to == SqNone {
				continue
			}
			victim := p.PieceAt(to)
			if victim != PieceNone && victim.Color() != us {
				if isLastRank(to) {
					addPromotions(to, victim, to)
				} else {
					dst.Add(Move{From: from, To: to, Moved: MakePiece(us, Pawn),
						Captured: victim, CapturedSq: to,
						RightsBefore: rights, RightsAfter: rightsAfterCapture(rights, victim.Color(), victim.Type())})
				}
				continue
			}
			ep := p.EnPassant()
			if victim == PieceNone && to == ep.PassedSquare && ep.PassedSquare != SqNone {
				capturedPawn := p.PieceAt(ep.PawnSquare)
				if capturedPawn != PieceNone && capturedPawn.Color() != us {
					dst.Add(Move{From: from, To: to, Moved: MakePiece(us, Pawn),
						Captured: capturedPawn, CapturedSq: ep.PawnSquare,
						RightsBefore: rights, RightsAfter: rights})
				}
			}
		}
	}
}

// isPawnStartSquare reports whether sq is a color's pawn's initial square,
// eligible for a two-square advance.
func isPawnStartSquare(c Color, sq Square) bool {
	switch c {
	case Yellow:
		return sq.Row() == 1
	case Red:
		return sq.Row() == 12
	case Blue:
		return sq.Col() == 1
	case Green:
		return sq.Col() == 12
	}
	return false
}

// isPawnPromotionSquare reports whether sq is the far edge a color's pawns
// promote on.
func isPawnPromotionSquare(c Color, sq Square) bool {
	switch c {
	case Yellow:
		return sq.Row() == BoardDim-1
	case Red:
		return sq.Row() == 0
	case Blue:
		return sq.Col() == BoardDim-1
	case Green:
		return sq.Col() == 0
	}
	return false
}

func generateStepMoves(p *board.Position, us Color, from Square, offsets [][2]int, mode GenMode, dst *MoveList, rights CastlingRights) {
	pt := p.PieceAt(from).Type()
	for _, off := range offsets {
		to := SquareOf(from.Row()+off[0], from.Col()+off[1])
		if to == SqNone {
			continue
		}
		victim := p.PieceAt(to)
		if victim != PieceNone && victim.Color() == us {
			continue
		}
		if !wantCapture(mode, victim != PieceNone) {
			continue
		}
		m := Move{From: from, To: to, Moved: MakePiece(us, pt), RightsBefore: rights, RightsAfter: rights}
		if victim != PieceNone {
			m.Captured = victim
			m.CapturedSq = to
			m.RightsAfter = rightsAfterCapture(rights, victim.Color(), victim.Type())
		}
		dst.Add(m)
	}
}

func generateSliderMoves(p *board.Position, us Color, from Square, dirs []Direction, mode GenMode, dst *MoveList, rights CastlingRights) {
	pt := p.PieceAt(from).Type()
	for _, d := range dirs {
		cur := from
		for {
			cur = cur.To(d)
			if cur == SqNone {
				break
			}
			victim := p.PieceAt(cur)
			if victim != PieceNone && victim.Color() == us {
				break
			}
			if wantCapture(mode, victim != PieceNone) {
				m := Move{From: from, To: cur, Moved: MakePiece(us, pt), RightsBefore: rights, RightsAfter: rights}
				if victim != PieceNone {
					m.Captured = victim
					m.CapturedSq = cur
					m.RightsAfter = rightsAfterCapture(rights, victim.Color(), victim.Type())
				}
				dst.Add(m)
			}
			if victim != PieceNone {
				break
			}
		}
	}
}

func generateKingMoves(p *board.Position, us Color, from Square, mode GenMode, dst *MoveList, rights CastlingRights) {
	offsets := [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	for _, off := range offsets {
		to := SquareOf(from.Row()+off[0], from.Col()+off[1])
		if to == SqNone {
			continue
		}
		victim := p.PieceAt(to)
		if victim != PieceNone && victim.Color() == us {
			continue
		}
		if !wantCapture(mode, victim != PieceNone) {
			continue
		}
		m := Move{From: from, To: to, Moved: MakePiece(us, King), RightsBefore: rights, RightsAfter: rights.RemoveAllFor(us)}
		if victim != PieceNone {
			m.Captured = victim
			m.CapturedSq = to
			m.RightsAfter = rightsAfterCapture(m.RightsAfter, victim.Color(), victim.Type())
		}
		dst.Add(m)
	}
}

// castlingGeometry returns the king's home square and the kingside/queenside
// rook home squares for color c, along each color's own back-rank axis (row
// for Red/Yellow, column for Blue/Green).
func castlingGeometry(c Color) (kingHome, ksRook, qsRook Square) {
	switch c {
	case Red:
		return SquareOf(13, 7), SquareOf(13, 10), SquareOf(13, 3)
	case Yellow:
		return SquareOf(0, 6), SquareOf(0, 3), SquareOf(0, 10)
	case Blue:
		return SquareOf(7, 0), SquareOf(10, 0), SquareOf(3, 0)
	case Green:
		return SquareOf(6, 13), SquareOf(3, 13), SquareOf(10, 13)
	}
	return SqNone, SqNone, SqNone
}

func generateCastling(p *board.Position, us Color, dst *MoveList) {
	rights := p.CastlingRights()
	kingHome, ksRook, qsRook := castlingGeometry(us)
	if p.KingSquare(us) != kingHome {
		return
	}
	if attacks.KingInCheck(p, us) {
		return
	}
	tryCastle := func(kingside bool, rookFrom Square) {
		if !rights.Has(us, kingside) {
			return
		}
		if p.PieceAt(rookFrom) != MakePiece(us, Rook) {
			return
		}
		squares := castlePath(kingHome, rookFrom)
		for _, sq := range squares {
			if sq != kingHome && sq != rookFrom && p.PieceAt(sq) != PieceNone {
				return
			}
		}
		kingPath := kingTransitSquares(kingHome, rookFrom)
		for _, sq := range kingPath {
			for attacker := us.Next(); attacker != us; attacker = attacker.Next() {
				if p.IsEliminated(attacker) {
					continue
				}
				if attacks.IsAttacked(p, sq, attacker) {
					return
				}
			}
		}
		kingTo := kingPath[len(kingPath)-1]
		rookTo := SquareOf((kingHome.Row()+kingTo.Row())/2, (kingHome.Col()+kingTo.Col())/2)
		dst.Add(Move{
			From: kingHome, To: kingTo, Moved: MakePiece(us, King),
			IsCastling: true, RookFrom: rookFrom, RookTo: rookTo,
			RightsBefore: rights, RightsAfter: rights.RemoveAllFor(us),
		})
	}
	tryCastle(true, ksRook)
	tryCastle(false, qsRook)
}

// castlePath returns every square strictly between the king and rook home
// squares (exclusive), which must be empty for castling to be legal.
func castlePath(kingHome, rookHome Square) []Square {
	var out []Square
	dr, dc := step(kingHome, rookHome)
	cur := kingHome.To(directionOf(dr, dc))
	for cur != SqNone && cur != rookHome {
		out = append(out, cur)
		cur = cur.To(directionOf(dr, dc))
	}
	return out
}

// kingTransitSquares returns the two squares the king moves across,
// inclusive of its destination (always two steps toward the rook).
func kingTransitSquares(kingHome, rookHome Square) []Square {
	dr, dc := step(kingHome, rookHome)
	d := directionOf(dr, dc)
	first := kingHome.To(d)
	second := first.To(d)
	return []Square{first, second}
}

func step(from, to Square) (int, int) {
	dr, dc := 0, 0
	if to.Row() > from.Row() {
		dr = 1
	} else if to.Row() < from.Row() {
		dr = -1
	}
	if to.Col() > from.Col() {
		dc = 1
	} else if to.Col() < from.Col() {
		dc = -1
	}
	return dr, dc
}

func directionOf(dr, dc int) Direction {
	switch {
	case dr == -1 && dc == 0:
		return North
	case dr == 1 && dc == 0:
		return South
	case dr == 0 && dc == 1:
		return East
	case dr == 0 && dc == -1:
		return West
	case dr == -1 && dc == 1:
		return NorthEast
	case dr == -1 && dc == -1:
		return NorthWest
	case dr == 1 && dc == 1:
		return SouthEast
	case dr == 1 && dc == -1:
		return SouthWest
	}
	return North
}
