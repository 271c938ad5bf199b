package ports

import "packing/internal/core/domain/model/kernel"

// BoxPreset holds the defaults of one box type.
type BoxPreset struct {
	Size            string
	EstimatedWeight *kernel.Weight
}

// BoxCatalog looks up box presets by box type.
type BoxCatalog interface {
	Preset(boxType string) (BoxPreset, bool)
}
