// Copyright (c) 2025 MyLib Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package build

import (
	"fmt"

	"github.com/gammazero/toposort"
)

// Order performs a topological sort of the steps and returns their names
// in a safe execution order. Steps that take part in no dependency edge run
// first, in declaration order.
func Order(steps []Step) ([]string, error) {
	if len(steps) == 0 {
		return []string{}, nil
	}

	known := make(map[string]bool, len(steps))
	for _, s := range steps {
		if known[s.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStep, s.Name)
		}
		known[s.Name] = true
	}

	edges := make([]toposort.Edge, 0)
	linked := make(map[string]bool, len(steps))
	for _, s := range steps {
		for _, dep := range s.Deps {
			if !known[dep] {
				return nil, fmt.Errorf("%w: step %s depends on %s", ErrUnknownDependency, s.Name, dep)
			}
			edges = append(edges, toposort.Edge{dep, s.Name})
			linked[dep] = true
			linked[s.Name] = true
		}
	}

	order := make([]string, 0, len(steps))
	for _, s := range steps {
		if !linked[s.Name] {
			order = append(order, s.Name)
		}
	}
	if len(edges) == 0 {
		return order, nil
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycle, err)
	}
	for _, node := range sorted {
		order = append(order, node.(string))
	}

	return order, nil
}
