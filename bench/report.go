package bench

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Scientific formats x as a two-decimal mantissa and a power of ten,
// e.g. 12500 → "1.25E4", 0.05 → "5.00E-2", 0 → "0.00E0".
func Scientific(x float64) string {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprintf("%.2fE0", x)
	}
	var (
		sign  = ""
		power int
	)
	if x < 0 {
		sign = "-"
		x = -x
	}
	for x < 1 {
		x *= 10
		power--
	}
	for x >= 10 {
		x /= 10
		power++
	}
	// 9.995 rounds up to "10.00"; renormalize.
	if math.Round(x*100)/100 >= 10 {
		x /= 10
		power++
	}
	return fmt.Sprintf("%s%.2fE%d", sign, x, power)
}

// WriteText renders the report as two sections, exhaustive search then
// nearest-neighbor. Runtime lines carry the sample standard deviation.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	b.WriteString("------ EXHAUSTIVE SEARCH ------\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "Average runtime for exhaustive search with %d cities (ns): %s (sd %s)\n",
			row.Cities, Scientific(float64(row.ExhaustiveMean)), Scientific(float64(row.ExhaustiveStdDev)))
	}

	b.WriteString("\n------ NEAREST-NEIGHBOR ------\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "Average runtime for nearest-neighbor with %d cities (ns): %s (sd %s)\n",
			row.Cities, Scientific(float64(row.NearestMean)), Scientific(float64(row.NearestStdDev)))
		fmt.Fprintf(&b, "Average percent increase for nearest-neighbor with %d cities: %.2f\n",
			row.Cities, row.GapMeanPercent)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
