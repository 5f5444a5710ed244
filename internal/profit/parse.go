package profit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONParser is the default TreeParser. Numbers are kept as json.Number so
// integer ports can be told apart from fractional values.
type JSONParser struct{}

// ParseTree decodes exactly one JSON value from raw. Trailing data after
// that value is an error.
func (JSONParser) ParseTree(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding response: trailing data after top-level value")
	}
	return tree, nil
}
