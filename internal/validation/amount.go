package validation

import (
	"encoding/json"
	"reflect"

	"github.com/shopspring/decimal"
)

// MaxAmount is the exclusive upper bound of a NUMERIC(12,2) money column.
var MaxAmount = decimal.New(1, 10)

// Amount is a decimal that only decodes from a JSON number. Quoted values
// are a type mismatch.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) *Amount {
	return &Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return &json.UnmarshalTypeError{Value: "string", Type: reflect.TypeOf(Amount{})}
	}
	return a.Decimal.UnmarshalJSON(data)
}
