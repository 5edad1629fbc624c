// Package tsplib — parser robustness fuzzing.
//
// The loader must never panic: every input, however mangled, ends in a
// parsed instance or a categorised sentinel error. The fuzz body also
// stitches random tokens into header-shaped lines via a type provider so
// the keyword grammar gets hit far more often than raw byte noise would
// manage.
package tsplib_test

import (
	"strings"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/katalvlaran/heldkarp/tsplib"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"NAME : a\nTYPE : TSP\nDIMENSION : 3\nEDGE_WEIGHT_TYPE : EUC_2D\nNODE_COORD_SECTION\n1 0 0\n2 3 0\n3 0 4\nEOF\n",
		"NAME : g\nTYPE : TSP\nDIMENSION : 3\nEDGE_WEIGHT_TYPE : GEO\nNODE_COORD_SECTION\n1 38.24 20.42\n2 39.57 26.15\n3 40.56 25.32\nEOF\n",
		"TYPE : ATSP\n",
		"DIMENSION : -1\n",
		"NODE_COORD_SECTION\n",
		"EOF\n",
		"",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	keywords := []string{
		"NAME", "TYPE", "COMMENT", "DIMENSION", "CAPACITY",
		"EDGE_WEIGHT_TYPE", "EDGE_WEIGHT_FORMAT", "EDGE_DATA_FORMAT",
		"NODE_COORD_TYPE", "DISPLAY_DATA_TYPE", "NODE_COORD_SECTION",
		"EDGE_WEIGHT_SECTION", "EOF",
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Raw bytes straight through the parser.
		_, _ = tsplib.Parse(strings.NewReader(string(data)))

		// Header-shaped recombination of the same entropy.
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			return
		}

		var b strings.Builder
		lineCount, err := tp.GetByte()
		if err != nil {
			return
		}
		for i := 0; i < int(lineCount%24); i++ {
			choice, err := tp.GetByte()
			if err != nil {
				break
			}
			value, err := tp.GetString()
			if err != nil {
				break
			}

			kw := keywords[int(choice)%len(keywords)]
			if kw == "NODE_COORD_SECTION" || kw == "EDGE_WEIGHT_SECTION" || kw == "EOF" {
				b.WriteString(kw + "\n" + value + "\n")
			} else {
				b.WriteString(kw + " : " + value + "\n")
			}
		}

		_, _ = tsplib.Parse(strings.NewReader(b.String()))
	})
}
