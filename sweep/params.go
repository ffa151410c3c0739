package sweep

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInts parses either a range "start:stop:step" (stop exclusive, step
// defaults to 1) or a comma-separated list such as "100,1000,10000".
func ParseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidConfig)
	}
	if !strings.Contains(s, ":") {
		var out []int
		for _, f := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidConfig, f, err)
			}
			out = append(out, n)
		}
		return out, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: range %q has more than three fields", ErrInvalidConfig, s)
	}
	nums := []int{0, 0, 1}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: range %q: %v", ErrInvalidConfig, s, err)
		}
		nums[i] = n
	}
	start, stop, step := nums[0], nums[1], nums[2]
	if step <= 0 {
		return nil, fmt.Errorf("%w: range %q needs a positive step", ErrInvalidConfig, s)
	}
	var out []int
	for n := start; n < stop; n += step {
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: range %q is empty", ErrInvalidConfig, s)
	}
	return out, nil
}

// ParseFloats parses a comma-separated list of floats such as ".3,.4,.5".
func ParseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidConfig, f, err)
		}
		out = append(out, x)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidConfig)
	}
	return out, nil
}
