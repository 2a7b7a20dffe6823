// Package order provides the pluggable orderings used to display tasks.
package order

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
)

// Strategy orders a task collection for display.
// Sort must not modify its input and returns a new slice.
type Strategy interface {
	Sort(tasks []model.Task) []model.Task
	Name() string
}

// ByID orders tasks by ascending ID, which is also creation order.
type ByID struct{}

func (ByID) Sort(tasks []model.Task) []model.Task {
	return sortStable(tasks, compareID)
}

func (ByID) Name() string { return "by ID" }

// ByStatus puts incomplete tasks before completed ones, each group by ID.
type ByStatus struct{}

func (ByStatus) Sort(tasks []model.Task) []model.Task {
	return sortStable(tasks, func(a, b model.Task) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		return compareID(a, b)
	})
}

func (ByStatus) Name() string { return "by Status" }

// Alphabetical orders tasks by description, ignoring case.
// Tasks with equal descriptions keep their input order.
type Alphabetical struct{}

func (Alphabetical) Sort(tasks []model.Task) []model.Task {
	return sortStable(tasks, func(a, b model.Task) int {
		return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	})
}

func (Alphabetical) Name() string { return "Alphabetically" }

func compareID(a, b model.Task) int {
	return cmp.Compare(a.ID, b.ID)
}

func sortStable(tasks []model.Task, compare func(a, b model.Task) int) []model.Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []model.Task{}
	}
	slices.SortStableFunc(sorted, compare)
	return sorted
}

// Default returns the strategy a new store starts with.
func Default() Strategy {
	return ByID{}
}

// All returns every strategy in cycling order.
func All() []Strategy {
	return []Strategy{ByID{}, ByStatus{}, Alphabetical{}}
}

// Next returns the strategy following current in All order, wrapping around.
// Unknown strategies are followed by the default.
func Next(current Strategy) Strategy {
	all := All()
	for i, s := range all {
		if current != nil && s.Name() == current.Name() {
			return all[(i+1)%len(all)]
		}
	}
	return Default()
}

// keys maps config and command keys to strategies.
var keys = map[string]Strategy{
	"id":     ByID{},
	"status": ByStatus{},
	"alpha":  Alphabetical{},
}

// aliases are accepted in addition to keys.
var aliases = map[string]string{
	"created":      "id",
	"done":         "status",
	"alphabetical": "alpha",
	"name":         "alpha",
}

// Keys returns the canonical strategy keys in cycling order.
func Keys() []string {
	return []string{"id", "status", "alpha"}
}

// Key returns the canonical key for s, or "" if s is not a known strategy.
func Key(s Strategy) string {
	if s == nil {
		return ""
	}
	for k, v := range keys {
		if v.Name() == s.Name() {
			return k
		}
	}
	return ""
}

// Lookup resolves a key, alias or unique key prefix to a strategy.
func Lookup(key string) (Strategy, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, fmt.Errorf("sort order must not be empty (expected one of: %s)", strings.Join(Keys(), ", "))
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if s, ok := keys[key]; ok {
		return s, nil
	}

	match, err := cli.MatchCommand(key, Keys())
	if err != nil {
		return nil, fmt.Errorf("unknown sort order %q (expected one of: %s)", key, strings.Join(Keys(), ", "))
	}
	return keys[match], nil
}
