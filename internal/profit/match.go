package profit

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// maxPriceScale bounds the decimal exponent of a quoted price. Arithmetic
// and comparison on decimals rescale to the larger exponent, so an unbounded
// exponent costs unbounded time and memory.
const maxPriceScale = 64

// Match is a remote record paired with the caller's algorithm it names.
type Match struct {
	Index int             `json:"index"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"paying"`
	Port  int32           `json:"port"`
	Score decimal.Decimal `json:"score"`
}

// match looks rec up in algos by exact name. The first algorithm with that
// name wins. A matched record must carry a decimal "paying" string and an
// integer "port"; otherwise the whole response is rejected.
func match(rec Record, pos int, algos []Algorithm) (Match, bool, error) {
	index := NoIndex
	for k, a := range algos {
		if a.Name == rec.Name {
			index = k
			break
		}
	}
	if index == NoIndex {
		return Match{}, false, nil
	}

	path := fmt.Sprintf("result.simplemultialgo[%d]", pos)

	paying, err := field[string](rec.Fields, path, "paying")
	if err != nil {
		return Match{}, false, err
	}
	price, err := decimal.NewFromString(paying)
	if err != nil {
		return Match{}, false, invalid(path+".paying", "malformed decimal %q", paying)
	}
	if exp := price.Exponent(); exp < -maxPriceScale || exp > maxPriceScale {
		return Match{}, false, invalid(path+".paying", "out of range")
	}

	portNum, err := field[json.Number](rec.Fields, path, "port")
	if err != nil {
		return Match{}, false, err
	}
	port, err := portNum.Int64()
	if err != nil {
		return Match{}, false, invalid(path+".port", "expected integer, got %s", portNum)
	}
	if port < math.MinInt32 || port > math.MaxInt32 {
		return Match{}, false, invalid(path+".port", "%d out of range", port)
	}

	return Match{
		Index: index,
		Name:  rec.Name,
		Price: price,
		Port:  int32(port),
		Score: decimal.NewFromFloat(algos[index].Factor).Mul(price),
	}, true, nil
}
