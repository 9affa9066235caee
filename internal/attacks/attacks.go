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

// Package attacks answers "is this square attacked" and "what attacks this
// square" queries by ray-walking the grid from the target square outward,
// the way original_source/board.cc scans for attackers, instead of the
// teacher's precomputed magic-bitboard attack tables (which only work for a
// regular 64-square board).
package attacks

import (
	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

// IsAttacked reports whether sq is attacked by any piece of color by.
func IsAttacked(p *board.Position, sq Square, by Color) bool {
	return firstAttacker(p, sq, by) != SqNone
}

// Attackers returns every square holding a by-colored piece that attacks sq.
func Attackers(p *board.Position, sq Square, by Color) []Square {
	var out []Square

	// Pawns: a pawn attacks the two squares diagonal to its forward
	// direction. Each color's forward axis runs toward the board center
	// from its own back rank/file (see PawnAdvanceDir).
	fr, fc := PawnAdvanceDir(by)
	if fr != 0 {
		for _, dc := range [2]int{-1, 1} {
			from := SquareOf(sq.Row()-fr, sq.Col()-dc)
			if from != SqNone && p.PieceAt(from) == MakePiece(by, Pawn) {
				out = append(out, from)
			}
		}
	} else {
		for _, dr := range [2]int{-1, 1} {
			from := SquareOf(sq.Row()-dr, sq.Col()-fc)
			if from != SqNone && p.PieceAt(from) == MakePiece(by, Pawn) {
				out = append(out, from)
			}
		}
	}

	for _, off := range KnightOffsets {
		from := SquareOf(sq.Row()-off[0], sq.Col()-off[1])
		if from != SqNone && p.PieceAt(from) == MakePiece(by, Knight) {
			out = append(out, from)
		}
	}

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			from := SquareOf(sq.Row()+dr, sq.Col()+dc)
			if from != SqNone && p.PieceAt(from) == MakePiece(by, King) {
				out = append(out, from)
			}
		}
	}

	for _, d := range RayDirections {
		cur := sq
		for {
			cur = cur.To(d)
			if cur == SqNone {
				break
			}
			pc := p.PieceAt(cur)
			if pc == PieceNone {
				continue
			}
			if pc.Color() == by && sliderCoversDirection(pc.Type(), d) {
				out = append(out, cur)
			}
			break
		}
	}
	return out
}

func firstAttacker(p *board.Position, sq Square, by Color) Square {
	list := Attackers(p, sq, by)
	if len(list) == 0 {
		return SqNone
	}
	return list[0]
}

func sliderCoversDirection(pt PieceType, d Direction) bool {
	switch pt {
	case Queen:
		return true
	case Rook:
		return d == North || d == South || d == East || d == West
	case Bishop:
		return d == NorthEast || d == NorthWest || d == SouthEast || d == SouthWest
	}
	return false
}

// PawnAdvanceDir returns the (dRow, dCol) unit vector a color's pawns push
// along, one component always zero: Yellow's back rank is the top of the
// grid (row 0) and pushes toward increasing row; Red's is the bottom (row
// 13) pushing toward decreasing row; Blue's back file is the left edge
// (col 0) pushing toward increasing column; Green's is the right edge
// (col 13) pushing toward decreasing column. This matches the classic
// four-player layout each color's arm of the cross board occupies.
func PawnAdvanceDir(c Color) (int, int) {
	switch c {
	case Yellow:
		return 1, 0
	case Red:
		return -1, 0
	case Blue:
		return 0, 1
	case Green:
		return 0, -1
	}
	return 0, 0
}

// KingInCheck reports whether color c's king currently sits on an attacked
// square. Eliminated colors are never in check.
func KingInCheck(p *board.Position, c Color) bool {
	if p.IsEliminated(c) {
		return false
	}
	ks := p.KingSquare(c)
	if ks == SqNone {
		return false
	}
	for attacker := c.Next(); attacker != c; attacker = attacker.Next() {
		if p.IsEliminated(attacker) {
			continue
		}
		if IsAttacked(p, ks, attacker) {
			return true
		}
	}
	return false
}

// DeliversCheckAny is spec.md §4.3's delivers_check predicate: it reports
// whether a mover piece landing on "to" attacks either of the two
// enemy-team kings by its movement pattern. Heuristic-only (move ordering,
// check extensions), called before the move is made on p; it never detects
// a discovered check from a different piece uncovered by the move
// (documented blind spot, never used for legality).
func DeliversCheckAny(p *board.Position, mover Color, to Square, pt PieceType) bool {
	enemyTeam := mover.Team().Other()
	for target := Red; target <= Green; target++ {
		if target.Team() != enemyTeam || p.IsEliminated(target) {
			continue
		}
		if DeliversCheck(p, target, mover, to, pt) {
			return true
		}
	}
	return false
}

// DeliversCheck reports whether a mover piece attacks the target color's
// king from square "to". It is meant to be called before the move is
// actually made on p (so mover must be passed explicitly rather than read
// off the board), and it does not detect discovered checks delivered by a
// different piece uncovered by the move (documented blind spot, never used
// for legality).
func DeliversCheck(p *board.Position, target Color, mover Color, to Square, pt PieceType) bool {
	ks := p.KingSquare(target)
	if ks == SqNone {
		return false
	}
	switch pt {
	case Pawn:
		fr, fc := PawnAdvanceDir(mover)
		if fr != 0 {
			return ks.Row() == to.Row()+fr && (ks.Col() == to.Col()-1 || ks.Col() == to.Col()+1)
		}
		return ks.Col() == to.Col()+fc && (ks.Row() == to.Row()-1 || ks.Row() == to.Row()+1)
	case Knight:
		for _, off := range KnightOffsets {
			if SquareOf(to.Row()+off[0], to.Col()+off[1]) == ks {
				return true
			}
		}
		return false
	case King:
		return false
	default:
		for _, d := range RayDirections {
			if !sliderCoversDirection(pt, d) {
				continue
			}
			cur := to
			for {
				cur = cur.To(d)
				if cur == SqNone {
					break
				}
				if cur == ks {
					return true
				}
				if p.PieceAt(cur) != PieceNone {
					break
				}
			}
		}
		return false
	}
}
