// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package calculator

// Calculator adds integers under a fixed overflow policy.
// The zero value wraps on overflow. A Calculator is immutable and safe
// for concurrent use.
type Calculator struct {
	policy Policy
}

// Option configures a Calculator
type Option func(*Calculator)

// WithPolicy sets the overflow policy
func WithPolicy(p Policy) Option {
	return func(c *Calculator) {
		c.policy = p
	}
}

// New creates a Calculator
func New(opts ...Option) *Calculator {
	c := &Calculator{policy: PolicyWrap}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the overflow policy in effect
func (c *Calculator) Policy() Policy {
	return c.policy
}

// Add returns a+b under the calculator's policy
func (c *Calculator) Add(a, b int) (int, error) {
	return AddWithPolicy(a, b, c.policy)
}

// Sum folds Add over values from left to right. An empty input sums to 0.
func (c *Calculator) Sum(values ...int) (int, error) {
	total := 0
	for _, v := range values {
		var err error
		total, err = c.Add(total, v)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}
