// Package profit picks the most profitable mining algorithm from a remote
// quote list. A selection is one linear pass: fetch, parse, navigate, match,
// select. Any structural problem in the response aborts the whole pass.
package profit

import (
	"context"
	"math"
)

// NoIndex is the index reported when no algorithm was selected.
const NoIndex = -1

// Algorithm is one caller-supplied candidate. Name must already be
// normalized to the remote service's convention (lowercase for NiceHash).
type Algorithm struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// Result is the outcome of a selection. Index points into the caller's
// algorithm slice, or is NoIndex. Port is only meaningful when Found.
type Result struct {
	Index int   `json:"index"`
	Port  int32 `json:"port"`
}

// NoResult is returned alongside every error.
var NoResult = Result{Index: NoIndex}

// Found reports whether the result names an algorithm.
func (r Result) Found() bool { return r.Index != NoIndex }

// Selection is a Result annotated with the algorithm name, for output.
type Selection struct {
	Found bool   `json:"found"`
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Port  int32  `json:"port"`
}

// Describe resolves r against the algos it was selected from.
func (r Result) Describe(algos []Algorithm) Selection {
	if !r.Found() || r.Index >= len(algos) {
		return Selection{Index: NoIndex}
	}
	return Selection{Found: true, Index: r.Index, Name: algos[r.Index].Name, Port: r.Port}
}

// Fetcher returns the raw body of one quote request.
//
//go:generate mockgen -package=profit_test -destination=mock_fetcher_test.go -source=profit.go
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// TreeParser turns raw bytes into a generic tree of map[string]any, []any,
// string, json.Number, bool and nil.
type TreeParser interface {
	ParseTree(raw []byte) (any, error)
}

// Zip pairs names with factors.
func Zip(names []string, factors []float64) ([]Algorithm, error) {
	if len(names) != len(factors) {
		return nil, invalidInput("got %d names and %d factors", len(names), len(factors))
	}
	algos := make([]Algorithm, len(names))
	for i := range names {
		algos[i] = Algorithm{Name: names[i], Factor: factors[i]}
	}
	return algos, nil
}

// validate checks caller preconditions before anything touches the network.
func validate(algos []Algorithm) error {
	for i, a := range algos {
		if a.Name == "" {
			return invalidInput("algorithm %d has an empty name", i)
		}
		if math.IsNaN(a.Factor) || math.IsInf(a.Factor, 0) {
			return invalidInput("algorithm %q has a non-finite factor", a.Name)
		}
		if a.Factor < 0 {
			return invalidInput("algorithm %q has a negative factor", a.Name)
		}
	}
	return nil
}
