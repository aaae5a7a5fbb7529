// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator implements integer addition with an explicit overflow policy.
package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrOverflow is returned by PolicyChecked when a sum does not fit in an int.
	ErrOverflow = errors.New("integer overflow")
	// ErrUnknownPolicy is returned when a policy name cannot be parsed.
	ErrUnknownPolicy = errors.New("unknown overflow policy")
)

// Policy selects what happens when a sum leaves the int range.
type Policy int

const (
	// PolicyWrap wraps around using two's-complement arithmetic.
	PolicyWrap Policy = iota
	// PolicySaturate clamps to math.MaxInt or math.MinInt.
	PolicySaturate
	// PolicyChecked fails with ErrOverflow.
	PolicyChecked
)

func (p Policy) String() string {
	switch p {
	case PolicyWrap:
		return "wrap"
	case PolicySaturate:
		return "saturate"
	case PolicyChecked:
		return "checked"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name. Matching is case-insensitive and
// an empty name selects PolicyWrap.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wrap":
		return PolicyWrap, nil
	case "saturate":
		return PolicySaturate, nil
	case "checked":
		return PolicyChecked, nil
	default:
		return PolicyWrap, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Add returns the sum of two integers, wrapping around on overflow.
func Add(a, b int) int {
	return a + b
}

// Overflows reports whether a+b is outside the int range.
func Overflows(a, b int) bool {
	return (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b)
}

// AddWithPolicy returns a+b, resolving overflow according to p.
func AddWithPolicy(a, b int, p Policy) (int, error) {
	if !Overflows(a, b) {
		return a + b, nil
	}

	switch p {
	case PolicyWrap:
		return Add(a, b), nil
	case PolicySaturate:
		if b > 0 {
			return math.MaxInt, nil
		}
		return math.MinInt, nil
	case PolicyChecked:
		return 0, fmt.Errorf("add %d and %d: %w", a, b, ErrOverflow)
	default:
		return 0, fmt.Errorf("add %d and %d: %w: %s", a, b, ErrUnknownPolicy, p)
	}
}
