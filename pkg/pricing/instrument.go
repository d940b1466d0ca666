package pricing

import (
	"fmt"
	"math"
)

// Instrument is the closed set of priceable instrument types. The sealed
// marker keeps the set closed to this package, so the switch-based reports
// below can be audited for exhaustiveness against the concrete types here.
type Instrument interface {
	fmt.Stringer
	sealed()
}

// Bond is a fixed-coupon bond.
type Bond struct {
	Issuer        string
	FaceValue     float64
	CouponRate    float64
	MaturityYears int
}

func (Bond) sealed() {}

func (b Bond) String() string {
	return fmt.Sprintf("Bond(%s, %.0f face, %.1f%% coupon, %dY)",
		b.Issuer, b.FaceValue, b.CouponRate*100, b.MaturityYears)
}

// Swap is a fixed-for-floating interest rate swap.
type Swap struct {
	Notional   float64
	FixedRate  float64
	TenorYears int
}

func (Swap) sealed() {}

func (s Swap) String() string {
	return fmt.Sprintf("IRS(%.0f notional, %.2f%% fixed, %dY)",
		s.Notional, s.FixedRate*100, s.TenorYears)
}

// OptionContract is a vanilla equity option.
type OptionContract struct {
	Underlying string
	Strike     float64
	Spot       float64
	IsCall     bool
}

func (OptionContract) sealed() {}

func (o OptionContract) String() string {
	style := "Put"
	if o.IsCall {
		style = "Call"
	}
	return fmt.Sprintf("%s %s(K=%.2f, S=%.2f)", o.Underlying, style, o.Strike, o.Spot)
}

// discountRate is the flat curve used for bond present value.
const discountRate = 1.05

// marketRate is the flat floating rate used for swap mark-to-market.
const marketRate = 0.04

// Price returns the mark of an instrument: discounted cash flows for bonds,
// fixed-vs-market carry for swaps, intrinsic value for options.
func Price(inst Instrument) (float64, error) {
	switch v := inst.(type) {
	case Bond:
		pv := 0.0
		for i := 1; i <= v.MaturityYears; i++ {
			pv += (v.FaceValue * v.CouponRate) / math.Pow(discountRate, float64(i))
		}
		pv += v.FaceValue / math.Pow(discountRate, float64(v.MaturityYears))
		return pv, nil
	case Swap:
		return v.Notional * (v.FixedRate - marketRate) * float64(v.TenorYears), nil
	case OptionContract:
		if v.IsCall {
			return math.Max(v.Spot-v.Strike, 0), nil
		}
		return math.Max(v.Strike-v.Spot, 0), nil
	default:
		return 0, fmt.Errorf("price: unhandled instrument type %T", inst)
	}
}
