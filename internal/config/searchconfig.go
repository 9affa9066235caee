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

package config

// searchConfiguration mirrors the teacher's searchconfig.go field set,
// trimmed of the opening-book fields (out of scope here, see DESIGN.md)
// and extended with the Lazy-SMP thread count.
type searchConfiguration struct {
	UseQuiescence  bool
	UseQSStandpat  bool
	UseSEE         bool
	UsePVS         bool
	UseKiller      bool
	UseCounterMove bool
	UseIID         bool
	IIDDepth       int
	IIDReduction   int

	UseTT      bool
	TTSizeMB   int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool

	UseMDP bool

	UseRFP      bool
	RfpMargin   int
	UseNullMove bool
	NmpDepth    int
	NmpReduction int

	UseCheckExt bool

	UseFP       bool
	FpMargin    int
	UseLmp      bool
	LmpMoves    int
	UseLmr      bool
	LmrDepth    int
	LmrMovesSearched int

	UseAspiration bool
	AspirationWindow int

	UseCheckBonus bool

	NumThreads int
}

func setupSearchDefaults() {
	Settings.Search = searchConfiguration{
		UseQuiescence:    true,
		UseQSStandpat:    true,
		UseSEE:           true,
		UsePVS:           true,
		UseKiller:        true,
		UseCounterMove:   true,
		UseIID:           true,
		IIDDepth:         5,
		IIDReduction:     2,
		UseTT:            true,
		TTSizeMB:         64,
		UseTTMove:        true,
		UseTTValue:       true,
		UseQSTT:          true,
		UseMDP:           true,
		UseRFP:           true,
		RfpMargin:        85,
		UseNullMove:      true,
		NmpDepth:         3,
		NmpReduction:     3,
		UseCheckExt:      true,
		UseFP:            true,
		FpMargin:         100,
		UseLmp:           true,
		LmpMoves:         8,
		UseLmr:           true,
		LmrDepth:         3,
		LmrMovesSearched: 4,
		UseAspiration:    true,
		AspirationWindow: 25,
		UseCheckBonus:    true,
		NumThreads:       1,
	}
}
