package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// CoerceWeight converts a weight given as a number or a decimal string to an
// integer, truncating fractions. Strings are always read in base 10, so
// "0700" is 700 and "0x190" is rejected.
func CoerceWeight(v any) (int, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("weight %v out of range", v)
	}
	return int(f), nil
}
