/*-------------------------------------------------------------
 *
 * Purpose:	Design an IIR cascade from direct-form numerator/
 *		denominator polynomials and print a one-line summary of
 *		the result (order, number of biquad sections, pole
 *		ordering). The per-section coefficients are not printed.
 *
 * Usage:	iirdesign --order 6 --num 1,2,3,4,5,6,7 --den 1,1,.5,.5,.5,.5,.5
 *
 *--------------------------------------------------------------*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/w5rkt/axmodem/internal/iir"
	"github.com/w5rkt/axmodem/internal/polyroot"
)

func main() {
	order := pflag.IntP("order", "o", 2, "Filter order (even).")
	numStr := pflag.String("num", "1,0", "Comma-separated numerator coefficients, highest degree first.")
	denStr := pflag.String("den", "1,0", "Comma-separated denominator coefficients, highest degree first.")
	farthest := pflag.Bool("farthest", false, "Sort poles farthest-from-unit-circle first instead of closest.")
	pflag.Parse()

	numerator, err := parseCoeffs(*numStr)
	if err != nil {
		fail("parsing --num: %v", err)
	}
	denominator, err := parseCoeffs(*denStr)
	if err != nil {
		fail("parsing --den: %v", err)
	}

	how := polyroot.OrderClosest
	if *farthest {
		how = polyroot.OrderFarthest
	}

	cascade := iir.NewCascade(*order, how, numerator, denominator)
	fmt.Printf("cascade: order=%d sections=%d ordering=%s\n", *order, cascade.NumSections(), how)
}

func parseCoeffs(s string) ([]complex64, error) {
	parts := strings.Split(s, ",")
	out := make([]complex64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		out[i] = complex(float32(v), 0)
	}
	return out, nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "iirdesign: "+format+"\n", args...)
	os.Exit(1)
}
