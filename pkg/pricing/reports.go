package pricing

import "fmt"

// RiskProfile summarizes first-order risk for an instrument. Only the
// measures relevant to the instrument type are populated.
type RiskProfile struct {
	Duration float64
	DV01     float64
	Delta    float64
}

// Risk computes the first-order risk measures for an instrument.
func Risk(inst Instrument) (RiskProfile, error) {
	switch v := inst.(type) {
	case Bond:
		duration := float64(v.MaturityYears) * 0.9
		return RiskProfile{
			Duration: duration,
			DV01:     v.FaceValue * duration * 0.0001,
		}, nil
	case Swap:
		return RiskProfile{
			DV01: v.Notional * float64(v.TenorYears) * 0.0001,
		}, nil
	case OptionContract:
		delta := -0.45
		if v.IsCall {
			delta = 0.55
		}
		return RiskProfile{Delta: delta}, nil
	default:
		return RiskProfile{}, fmt.Errorf("risk: unhandled instrument type %T", inst)
	}
}

// CapitalCharge computes the regulatory capital charge for an instrument.
func CapitalCharge(inst Instrument) (float64, error) {
	switch v := inst.(type) {
	case Bond:
		return v.FaceValue * 0.08, nil
	case Swap:
		return v.Notional * 0.05 * float64(v.TenorYears), nil
	case OptionContract:
		return v.Spot * 100 * 0.10, nil
	default:
		return 0, fmt.Errorf("capital charge: unhandled instrument type %T", inst)
	}
}
