package pricing_test

import (
	"math"
	"testing"

	"github.com/blotterhq/blotter/pkg/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_Bond(t *testing.T) {
	bond := pricing.Bond{Issuer: "ACME", FaceValue: 1000, CouponRate: 0.05, MaturityYears: 10}

	got, err := pricing.Price(bond)
	require.NoError(t, err)

	// 5% coupon discounted at 5% prices at par.
	assert.InDelta(t, 1000, got, 0.01)
}

func TestPrice_Swap(t *testing.T) {
	swap := pricing.Swap{Notional: 1_000_000, FixedRate: 0.045, TenorYears: 5}

	got, err := pricing.Price(swap)
	require.NoError(t, err)
	assert.InDelta(t, 1_000_000*0.005*5, got, 0.01)
}

func TestPrice_Option(t *testing.T) {
	call := pricing.OptionContract{Underlying: "AAPL", Strike: 180, Spot: 185.50, IsCall: true}
	put := pricing.OptionContract{Underlying: "AAPL", Strike: 180, Spot: 185.50, IsCall: false}

	gotCall, err := pricing.Price(call)
	require.NoError(t, err)
	assert.InDelta(t, 5.50, gotCall, 0.001)

	gotPut, err := pricing.Price(put)
	require.NoError(t, err)
	assert.Zero(t, gotPut)
}

func TestRisk(t *testing.T) {
	bond := pricing.Bond{Issuer: "ACME", FaceValue: 1000, CouponRate: 0.05, MaturityYears: 10}
	profile, err := pricing.Risk(bond)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, profile.Duration, 0.001)
	assert.InDelta(t, 0.9, profile.DV01, 0.001)

	swap := pricing.Swap{Notional: 1_000_000, FixedRate: 0.045, TenorYears: 5}
	profile, err = pricing.Risk(swap)
	require.NoError(t, err)
	assert.InDelta(t, 500, profile.DV01, 0.001)

	put := pricing.OptionContract{Underlying: "AAPL", Strike: 180, Spot: 185.50}
	profile, err = pricing.Risk(put)
	require.NoError(t, err)
	assert.InDelta(t, -0.45, profile.Delta, 0.001)
}

func TestCapitalCharge_AllTypes(t *testing.T) {
	cases := []struct {
		inst pricing.Instrument
		want float64
	}{
		{pricing.Bond{Issuer: "ACME", FaceValue: 1000, CouponRate: 0.05, MaturityYears: 10}, 80},
		{pricing.Swap{Notional: 1_000_000, FixedRate: 0.045, TenorYears: 5}, 250_000},
		{pricing.OptionContract{Underlying: "AAPL", Strike: 180, Spot: 185.50, IsCall: true}, 1855},
	}
	for _, tc := range cases {
		got, err := pricing.CapitalCharge(tc.inst)
		require.NoError(t, err, "%s", tc.inst)
		assert.InDelta(t, tc.want, got, 0.001, "%s", tc.inst)
	}
}

func TestPrice_BondAboveParWhenCouponExceedsCurve(t *testing.T) {
	rich := pricing.Bond{Issuer: "ACME", FaceValue: 1000, CouponRate: 0.08, MaturityYears: 10}
	got, err := pricing.Price(rich)
	require.NoError(t, err)
	assert.True(t, got > 1000 && !math.IsNaN(got))
}
