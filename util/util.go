package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// SecToClock formats seconds as h:mm:ss, keeping milliseconds when the
// value is not whole.
func SecToClock(sec float64) string {
	h := int(sec) / 3600
	m := int(sec) / 60 % 60
	s := sec - float64(h*3600+m*60)
	if s == math.Trunc(s) {
		return fmt.Sprintf("%d:%02d:%02d", h, m, int(s))
	}
	return fmt.Sprintf("%d:%02d:%06.3f", h, m, s)
}

// ClockToSec parses "h:mm:ss", "mm:ss" or bare seconds into seconds.
func ClockToSec(clock string) (float64, error) {
	var sec float64
	parts := strings.Split(clock, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid clock value %q: %v", clock, err)
		}
		sec += v * math.Pow(60, float64(len(parts)-1-i))
	}
	return sec, nil
}
