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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourplayerchess/engine/internal/board"
	. "github.com/fourplayerchess/engine/internal/types"
)

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	e := NewEvaluator()
	p := board.NewPosition("")
	// The starting position is symmetric across all four colors, so the
	// team on move should hold no material/positional edge over the other.
	// A full (-infinite, infinite) window disables the lazy cutoff so this
	// checks the exact score, not whatever the early-out would return.
	assert.Equal(t, 0, int(e.Evaluate(p, -ValueInfinite, ValueInfinite)))
}

func TestEvaluateFavorsTeamWithFewerOpposingColors(t *testing.T) {
	e := NewEvaluator()
	normal := board.NewPosition("")

	blueEliminated := board.NewPosition(
		"R-0,1,0,0-1,1,1,1-1,1,1,1-0,0,0,0-0-" +
			board.StartFen[len("R-0,0,0,0-1,1,1,1-1,1,1,1-0,0,0,0-0-"):])

	// With Blue eliminated, Red/Yellow face only Green and should score
	// strictly better than when both opposing colors are still in play.
	assert.Greater(t,
		int(e.Evaluate(blueEliminated, -ValueInfinite, ValueInfinite)),
		int(e.Evaluate(normal, -ValueInfinite, ValueInfinite)))
}
