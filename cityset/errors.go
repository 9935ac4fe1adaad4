package cityset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a city set cannot be built from the
	// requested count or bounding rectangle (n < 1, non-finite sizes, or a
	// rectangle that does not exceed the inward margin).
	ErrInvalidDimensions = errors.New("cityset: invalid dimensions")

	// ErrIndexOutOfRange is returned by accessors given a city index outside [0, n).
	ErrIndexOutOfRange = errors.New("cityset: index out of range")
)

// ---------- error context tags ----------

const (
	ctxCity     = "City"
	ctxDistance = "Distance"
	ctxAt       = "At"
	ctxBuild    = "build"
)

// setErrorf wraps err with the Set method and the offending indices.
func setErrorf(method string, err error, idx ...int) error {
	return fmt.Errorf("Set.%s%s: %w", method, formatArgs(idx), err)
}

// tableErrorf wraps err with the Table method and the offending coordinates.
func tableErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, row, col, err)
}

func formatArgs(idx []int) string {
	if len(idx) == 0 {
		return ""
	}
	var (
		b strings.Builder
		i int
	)
	b.WriteByte('(')
	for i = range idx {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx[i]))
	}
	b.WriteByte(')')
	return b.String()
}
