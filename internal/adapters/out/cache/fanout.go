package cache

import (
	"context"

	"packing/internal/core/ports"
)

// FanOut calls every invalidator in order.
type FanOut []ports.CacheInvalidator

var _ ports.CacheInvalidator = FanOut(nil)

func NewFanOut(invalidators ...ports.CacheInvalidator) FanOut {
	out := make(FanOut, 0, len(invalidators))
	for _, inv := range invalidators {
		if inv != nil {
			out = append(out, inv)
		}
	}
	return out
}

func (f FanOut) Invalidate(ctx context.Context) {
	for _, inv := range f {
		inv.Invalidate(ctx)
	}
}
