// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

func TestOrder(t *testing.T) {
	t.Run("empty plan", func(t *testing.T) {
		order, err := Order(nil)
		require.NoError(t, err)
		assert.Empty(t, order)
	})

	t.Run("no dependencies keeps declaration order", func(t *testing.T) {
		order, err := Order([]Step{{Name: "c"}, {Name: "a"}, {Name: "b"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, order)
	})

	t.Run("chain declared out of order", func(t *testing.T) {
		steps := []Step{
			{Name: StepTest, Deps: []string{StepBuild}},
			{Name: StepBuild, Deps: []string{StepVet}},
			{Name: StepDeps},
			{Name: StepVet, Deps: []string{StepDeps}},
		}
		order, err := Order(steps)
		require.NoError(t, err)
		assert.Equal(t, []string{StepDeps, StepVet, StepBuild, StepTest}, order)
	})

	t.Run("isolated steps run first", func(t *testing.T) {
		steps := []Step{
			{Name: "a"},
			{Name: "b", Deps: []string{"a"}},
			{Name: "solo"},
		}
		order, err := Order(steps)
		require.NoError(t, err)
		assert.Equal(t, []string{"solo", "a", "b"}, order)
	})

	t.Run("diamond respects every edge", func(t *testing.T) {
		steps := []Step{
			{Name: "root"},
			{Name: "left", Deps: []string{"root"}},
			{Name: "right", Deps: []string{"root"}},
			{Name: "join", Deps: []string{"left", "right"}},
		}
		order, err := Order(steps)
		require.NoError(t, err)
		require.Len(t, order, 4)
		for _, s := range steps {
			for _, dep := range s.Deps {
				assert.Less(t, indexOf(order, dep), indexOf(order, s.Name), "%s before %s", dep, s.Name)
			}
		}
	})

	t.Run("cycle", func(t *testing.T) {
		steps := []Step{
			{Name: "a", Deps: []string{"b"}},
			{Name: "b", Deps: []string{"a"}},
		}
		_, err := Order(steps)
		assert.ErrorIs(t, err, ErrCycle)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		_, err := Order([]Step{{Name: "a", Deps: []string{"missing"}}})
		assert.ErrorIs(t, err, ErrUnknownDependency)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("duplicate step", func(t *testing.T) {
		_, err := Order([]Step{{Name: "a"}, {Name: "a"}})
		assert.ErrorIs(t, err, ErrDuplicateStep)
	})
}
