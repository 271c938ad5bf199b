package order

import (
	"fmt"

	"packing/internal/pkg/errs"
)

// Status is the upstream order_status value. Only Completed orders are
// eligible for packaging; the other values are carried through unchanged.
type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Completed  Status = "completed"
	Cancelled  Status = "cancelled"
)

func (s Status) Validate() error {
	switch s {
	case Pending, Processing, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
