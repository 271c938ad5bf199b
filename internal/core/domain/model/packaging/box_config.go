package packaging

import (
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
)

// BoxConfig describes one carton to create: its type, an optional size label
// and an optional estimated weight. Missing size and weight can be filled from
// a preset with WithPreset.
type BoxConfig struct {
	boxType         string
	size            string
	estimatedWeight *kernel.Weight
	isConstructed   bool
}

// NewBoxConfig validates a box configuration. estimatedWeight may be nil.
func NewBoxConfig(boxType, size string, estimatedWeight *kernel.Weight) (BoxConfig, error) {
	boxType = strings.TrimSpace(boxType)
	if boxType == "" {
		return BoxConfig{}, errs.NewValueIsRequiredError("box type")
	}
	if estimatedWeight != nil {
		if err := estimatedWeight.Validate(); err != nil {
			return BoxConfig{}, err
		}
		w := *estimatedWeight
		estimatedWeight = &w
	}
	return BoxConfig{
		boxType:         boxType,
		size:            strings.TrimSpace(size),
		estimatedWeight: estimatedWeight,
		isConstructed:   true,
	}, nil
}

func (c BoxConfig) Validate() error {
	if !c.isConstructed {
		return ErrBoxConfigIsNotConstructed
	}
	return nil
}

func (c BoxConfig) BoxType() string {
	return c.boxType
}

func (c BoxConfig) Size() string {
	return c.size
}

// EstimatedWeight returns the estimate and whether one was given.
func (c BoxConfig) EstimatedWeight() (kernel.Weight, bool) {
	if c.estimatedWeight == nil {
		return kernel.Weight{}, false
	}
	return *c.estimatedWeight, true
}

// WithPreset fills the size and estimated weight when they were not given.
// Values already present win over the preset.
func (c BoxConfig) WithPreset(size string, estimatedWeight *kernel.Weight) BoxConfig {
	if c.size == "" {
		c.size = strings.TrimSpace(size)
	}
	if c.estimatedWeight == nil && estimatedWeight != nil && estimatedWeight.Validate() == nil {
		w := *estimatedWeight
		c.estimatedWeight = &w
	}
	return c
}
