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
	"math/rand"

	. "github.com/fourplayerchess/engine/internal/types"
)

// zobrist holds one random 64-bit key per (color, piece type, square) plus
// keys for the side to move, castling rights and en-passant file, matching
// original_source/board.h's piece_hashes_[4][6][14][14] table generalized
// to Go. Filled once at package init() with a fixed seed so every process
// (and every Lazy-SMP worker, which clones a Position) hashes identically.
var zobrist struct {
	piece     [4][7][SqLength]Key // indexed [color][pieceType][square], PtNone row unused
	turn      [4]Key
	castling  [256]Key
	epFile    [BoardDim + 1]Key // +1 slot for "no en passant"
}

func init() {
	r := rand.New(rand.NewSource(0xC0FFEE42))
	for c := 0; c < 4; c++ {
		for pt := 1; pt < 7; pt++ {
			for sq := 0; sq < SqLength; sq++ {
				zobrist.piece[c][pt][sq] = Key(r.Uint64())
			}
		}
		zobrist.turn[c] = Key(r.Uint64())
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = Key(r.Uint64())
	}
	for i := range zobrist.epFile {
		zobrist.epFile[i] = Key(r.Uint64())
	}
}

func pieceKey(p Piece, sq Square) Key {
	if p == PieceNone {
		return 0
	}
	return zobrist.piece[p.Color()][p.Type()][sq]
}

func turnKey(c Color) Key {
	return zobrist.turn[c]
}

func castlingKey(cr CastlingRights) Key {
	return zobrist.castling[uint8(cr)]
}

func epKey(sq Square) Key {
	if sq == SqNone {
		return zobrist.epFile[BoardDim]
	}
	return zobrist.epFile[sq.Col()]
}
