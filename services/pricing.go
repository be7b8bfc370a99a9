package services

import (
	"math"

	"hotel-pos-backend/models"
)

// Pricing is the derived breakdown of a listed room price.
type Pricing struct {
	BasePrice           float64
	ServiceChargeAmount float64
	VatAmount           float64
}

// ComputePricing splits a listed total price into its base and the included
// service-charge and VAT portions. Percentages come from the partner's hotel
// profile; a nil profile leaves the listed price untouched. Rounding is to
// the nearest integer, half away from zero.
func ComputePricing(listed float64, scIncluded, vatIncluded bool, profile *models.HotelProfile) Pricing {
	pricing := Pricing{BasePrice: listed}
	if profile == nil || (!scIncluded && !vatIncluded) {
		return pricing
	}

	scPercent := profile.ServiceChargePercent
	vatPercent := profile.VatPercent

	combined := 0.0
	if scIncluded {
		combined += scPercent
	}
	if vatIncluded {
		combined += vatPercent
	}
	if combined > 0 {
		pricing.BasePrice = math.Round(listed / (1 + combined/100))
	}
	if scIncluded && scPercent > 0 {
		pricing.ServiceChargeAmount = math.Round(pricing.BasePrice * scPercent / 100)
	}
	if vatIncluded && vatPercent > 0 {
		pricing.VatAmount = math.Round(pricing.BasePrice * vatPercent / 100)
	}
	return pricing
}
