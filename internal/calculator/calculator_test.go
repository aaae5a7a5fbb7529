// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	result := Add(2, 3)
	assert.Equal(t, 5, result, "2 + 3 should equal 5")
}

func TestAdd_Properties(t *testing.T) {
	values := []int{0, 1, -1, 2, 3, 42, -1000, 1 << 30, -(1 << 30)}

	for _, a := range values {
		assert.Equal(t, a, Add(a, 0), "identity for %d", a)
		for _, b := range values {
			assert.Equal(t, Add(a, b), Add(b, a), "commutativity for %d, %d", a, b)
			assert.Equal(t, a+b, Add(a, b))
		}
	}
}

func TestAdd_WrapsAtBoundary(t *testing.T) {
	assert.Equal(t, math.MinInt, Add(math.MaxInt, 1))
	assert.Equal(t, math.MaxInt, Add(math.MinInt, -1))
}

func TestOverflows(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{name: "small values", a: 2, b: 3, want: false},
		{name: "max plus zero", a: math.MaxInt, b: 0, want: false},
		{name: "max plus one", a: math.MaxInt, b: 1, want: true},
		{name: "one plus max", a: 1, b: math.MaxInt, want: true},
		{name: "min minus one", a: math.MinInt, b: -1, want: true},
		{name: "min plus max", a: math.MinInt, b: math.MaxInt, want: false},
		{name: "max plus min", a: math.MaxInt, b: math.MinInt, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overflows(tt.a, tt.b))
		})
	}
}

func TestAddWithPolicy(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int
		policy  Policy
		want    int
		wantErr error
	}{
		{name: "wrap in range", a: 2, b: 3, policy: PolicyWrap, want: 5},
		{name: "saturate in range", a: 2, b: 3, policy: PolicySaturate, want: 5},
		{name: "checked in range", a: 2, b: 3, policy: PolicyChecked, want: 5},
		{name: "wrap above max", a: math.MaxInt, b: 1, policy: PolicyWrap, want: math.MinInt},
		{name: "saturate above max", a: math.MaxInt, b: 1, policy: PolicySaturate, want: math.MaxInt},
		{name: "saturate below min", a: math.MinInt, b: -1, policy: PolicySaturate, want: math.MinInt},
		{name: "checked above max", a: math.MaxInt, b: 1, policy: PolicyChecked, wantErr: ErrOverflow},
		{name: "checked below min", a: math.MinInt, b: -5, policy: PolicyChecked, wantErr: ErrOverflow},
		{name: "invalid policy on overflow", a: math.MaxInt, b: 1, policy: Policy(9), wantErr: ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddWithPolicy(tt.a, tt.b, tt.policy)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{input: "", want: PolicyWrap},
		{input: "wrap", want: PolicyWrap},
		{input: "Saturate", want: PolicySaturate},
		{input: " CHECKED ", want: PolicyChecked},
		{input: "panic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, name string) Policy {
	t.Helper()
	p, err := ParsePolicy(name)
	require.NoError(t, err)
	return p
}
