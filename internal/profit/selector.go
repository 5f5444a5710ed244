package profit

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// Selector runs selections against one quote source.
type Selector struct {
	fetcher Fetcher
	parser  TreeParser
	logger  *slog.Logger
}

// SelectorOption is a configuration option for a Selector.
type SelectorOption func(*Selector)

// WithParser replaces the default JSONParser.
func WithParser(parser TreeParser) SelectorOption {
	return func(s *Selector) {
		s.parser = parser
	}
}

// WithLogger sets the logger. Selections are silent by default.
func WithLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = logger
	}
}

// NewSelector creates a Selector reading quotes from fetcher.
func NewSelector(fetcher Fetcher, options ...SelectorOption) *Selector {
	s := &Selector{
		fetcher: fetcher,
		parser:  JSONParser{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Select returns the algorithm with the highest factor × paying. On any
// error the result is NoResult; ErrNoMatch means the response was fine but
// nothing scored above zero.
func (s *Selector) Select(ctx context.Context, algos []Algorithm) (Result, error) {
	best := NewCandidate()
	err := s.scan(ctx, algos, func(m Match) {
		best = best.Consider(m.Score, m.Index, m.Port)
	})
	if err != nil {
		s.logger.Warn("selection failed", "err", err)
		return NoResult, err
	}

	res := best.Result()
	if !res.Found() {
		return NoResult, ErrNoMatch
	}
	s.logger.Info("selected algorithm",
		"algorithm", algos[res.Index].Name,
		"index", res.Index,
		"port", res.Port,
		"score", best.Score.String(),
	)
	return res, nil
}

// SelectBestAlgorithm is the sentinel form of Select: it returns
// (NoIndex, 0) for every failure and for "nothing profitable".
func (s *Selector) SelectBestAlgorithm(ctx context.Context, names []string, factors []float64) (int, int32) {
	algos, err := Zip(names, factors)
	if err != nil {
		s.logger.Warn("selection failed", "err", err)
		return NoIndex, 0
	}
	res, err := s.Select(ctx, algos)
	if err != nil {
		return NoIndex, 0
	}
	return res.Index, res.Port
}

// Rank returns every matched quote, best score first. Equal scores keep
// response order. Validation is as strict as Select.
func (s *Selector) Rank(ctx context.Context, algos []Algorithm) ([]Match, error) {
	var matches []Match
	if err := s.scan(ctx, algos, func(m Match) { matches = append(matches, m) }); err != nil {
		s.logger.Warn("ranking failed", "err", err)
		return nil, err
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.GreaterThan(matches[j].Score)
	})
	return matches, nil
}

// scan runs fetch, parse, navigate and match, handing each match to visit
// in response order. It stops at the first error.
func (s *Selector) scan(ctx context.Context, algos []Algorithm, visit func(Match)) error {
	if err := validate(algos); err != nil {
		return err
	}

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	tree, err := s.parser.ParseTree(raw)
	if err != nil {
		return invalid("$", "%v", err)
	}

	records, err := navigate(tree)
	if err != nil {
		return err
	}

	for pos, rec := range records {
		m, ok, err := match(rec, pos, algos)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		s.logger.Debug("matched quote",
			"algorithm", m.Name,
			"paying", m.Price.String(),
			"factor", algos[m.Index].Factor,
			"score", m.Score.String(),
			"port", m.Port,
		)
		visit(m)
	}
	return nil
}
