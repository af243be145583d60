package parcel

import (
	"fmt"
	"strconv"
	"strings"

	"marketplace/internal/pkg/errs"
)

// SizeClass is a discrete volumetric bucket used to scale shipment price.
type SizeClass string

const (
	SizeS   SizeClass = "S"
	SizeM   SizeClass = "M"
	SizeL   SizeClass = "L"
	SizeXL  SizeClass = "XL"
	SizeXXL SizeClass = "XXL"
	// SizeXXXL is the open-ended top bucket.
	SizeXXXL SizeClass = "XXXL"
)

// Volume thresholds in cm³, inclusive upper bounds per class.
const (
	sizeSMaxVolume   = 6_000
	sizeMMaxVolume   = 60_000
	sizeLMaxVolume   = 240_000
	sizeXLMaxVolume  = 768_000
	sizeXXLMaxVolume = 1_500_000
)

// getSizeMultipliers returns the price multiplier per size class.
func getSizeMultipliers() map[SizeClass]float64 {
	return map[SizeClass]float64{
		SizeS:    1,
		SizeM:    1.2,
		SizeL:    1.5,
		SizeXL:   2,
		SizeXXL:  2.5,
		SizeXXXL: 3,
	}
}

// Validate checks that the size class is one of the defined buckets.
func (s SizeClass) Validate() error {
	if _, ok := getSizeMultipliers()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sizeClass",
			fmt.Errorf("%q is not a valid size class", string(s)))
	}
	return nil
}

// Multiplier returns the price multiplier for the size class.
// Unknown classes fall back to the M multiplier.
func (s SizeClass) Multiplier() float64 {
	if m, ok := getSizeMultipliers()[s]; ok {
		return m
	}
	return getSizeMultipliers()[SizeM]
}

// String returns the bucket name.
func (s SizeClass) String() string {
	return string(s)
}

// ClassifyVolume buckets a volume in cm³ into a size class.
// Threshold boundaries are inclusive on the lower class: exactly 6000 cm³ is S.
func ClassifyVolume(volumeCm3 float64) SizeClass {
	switch {
	case volumeCm3 <= sizeSMaxVolume:
		return SizeS
	case volumeCm3 <= sizeMMaxVolume:
		return SizeM
	case volumeCm3 <= sizeLMaxVolume:
		return SizeL
	case volumeCm3 <= sizeXLMaxVolume:
		return SizeXL
	case volumeCm3 <= sizeXXLMaxVolume:
		return SizeXXL
	default:
		return SizeXXXL
	}
}

// ParseDimensions parses an "LxWxH" centimeter string into its volume in cm³.
// Returns an error for missing, malformed, or non-positive dimensions; callers
// decide the fallback (the pricer defaults to size M).
func ParseDimensions(dimensions string) (float64, error) {
	if strings.TrimSpace(dimensions) == "" {
		return 0, errs.NewValueIsRequiredError("dimensions")
	}

	normalized := strings.ToLower(strings.ReplaceAll(dimensions, " ", ""))
	parts := strings.Split(normalized, "x")
	if len(parts) != 3 {
		return 0, errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%q is not in LxWxH format", dimensions))
	}

	volume := 1.0
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("dimensions", err)
		}
		if value <= 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause("dimensions",
				fmt.Errorf("%v is not greater than 0", value))
		}
		volume *= value
	}

	return volume, nil
}

// ClassifyDimensions parses an "LxWxH" string and buckets its volume.
func ClassifyDimensions(dimensions string) (SizeClass, error) {
	volume, err := ParseDimensions(dimensions)
	if err != nil {
		return "", err
	}
	return ClassifyVolume(volume), nil
}
