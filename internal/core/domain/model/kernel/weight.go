package kernel

import (
	"errors"
	"fmt"

	"packing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// weightPrecision is the number of fractional kilogram digits kept (grams).
const weightPrecision = 3

var ErrWeightIsNotConstructed = errors.New("Weight must be created via NewWeight or WeightFromString")

// Weight is a non-negative mass in kilograms rounded to the gram.
type Weight struct {
	kg            decimal.Decimal
	isConstructed bool
}

// NewWeight validates kg and rounds it to grams.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), 0, "unbounded")
	}
	return Weight{kg: kg.Round(weightPrecision), isConstructed: true}, nil
}

// WeightFromString parses a decimal kilogram value such as "1.25".
func WeightFromString(s string) (Weight, error) {
	kg, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewWeight(kg)
}

// ZeroWeight is a valid weight of 0 kg.
func ZeroWeight() Weight {
	return Weight{kg: decimal.Zero, isConstructed: true}
}

func (w Weight) Validate() error {
	if !w.isConstructed {
		return ErrWeightIsNotConstructed
	}
	return nil
}

func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

func (w Weight) IsZero() bool {
	return w.kg.IsZero()
}

func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg), isConstructed: true}
}

func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}

func (w Weight) String() string {
	return w.kg.StringFixed(weightPrecision)
}
