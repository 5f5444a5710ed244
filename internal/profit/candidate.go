package profit

import "github.com/shopspring/decimal"

// Candidate is the running best of a selection. It is a plain value; each
// selection threads its own copy through the scan.
type Candidate struct {
	Score decimal.Decimal
	Index int
	Port  int32
}

// NewCandidate returns the zero-score baseline. Nothing scoring zero or
// less can replace it.
func NewCandidate() Candidate {
	return Candidate{Score: decimal.Zero, Index: NoIndex}
}

// Consider returns the better of c and the offered score. Ties keep c.
func (c Candidate) Consider(score decimal.Decimal, index int, port int32) Candidate {
	if score.GreaterThan(c.Score) {
		return Candidate{Score: score, Index: index, Port: port}
	}
	return c
}

// Result converts the candidate into a Result.
func (c Candidate) Result() Result {
	if c.Index == NoIndex {
		return NoResult
	}
	return Result{Index: c.Index, Port: c.Port}
}
