package services

import (
	"testing"

	"hotel-pos-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestComputePricing(t *testing.T) {
	profile := &models.HotelProfile{ServiceChargePercent: 10, VatPercent: 7}

	tests := []struct {
		name        string
		listed      float64
		scIncluded  bool
		vatIncluded bool
		profile     *models.HotelProfile
		want        Pricing
	}{
		{
			name:    "no flags leaves price untouched",
			listed:  1100,
			profile: profile,
			want:    Pricing{BasePrice: 1100},
		},
		{
			name:        "nil profile leaves price untouched",
			listed:      1100,
			scIncluded:  true,
			vatIncluded: true,
			want:        Pricing{BasePrice: 1100},
		},
		{
			name:        "both included",
			listed:      1100,
			scIncluded:  true,
			vatIncluded: true,
			profile:     profile,
			want:        Pricing{BasePrice: 940, ServiceChargeAmount: 94, VatAmount: 66},
		},
		{
			name:       "service charge only",
			listed:     1100,
			scIncluded: true,
			profile:    profile,
			want:       Pricing{BasePrice: 1000, ServiceChargeAmount: 100},
		},
		{
			name:        "vat only",
			listed:      1070,
			vatIncluded: true,
			profile:     profile,
			want:        Pricing{BasePrice: 1000, VatAmount: 70},
		},
		{
			name:        "zero percentages",
			listed:      500,
			scIncluded:  true,
			vatIncluded: true,
			profile:     &models.HotelProfile{},
			want:        Pricing{BasePrice: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePricing(tt.listed, tt.scIncluded, tt.vatIncluded, tt.profile)
			assert.Equal(t, tt.want, got)
		})
	}
}
