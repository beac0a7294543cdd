package domain

import "fmt"

// RiskTier is the ordinal risk classification derived from the positive-class
// probability.
type RiskTier string

const (
	// RiskTierLow is assigned below LowRiskThreshold.
	RiskTierLow RiskTier = "LOW"
	// RiskTierModerate is assigned between the thresholds, both inclusive.
	RiskTierModerate RiskTier = "MODERATE"
	// RiskTierHigh is assigned above HighRiskThreshold.
	RiskTierHigh RiskTier = "HIGH"
)

// Risk thresholds, in percent of positive-class probability.
const (
	LowRiskThreshold  = 30.0
	HighRiskThreshold = 70.0
)

// RiskTiers lists the tiers in ascending order.
var RiskTiers = []RiskTier{RiskTierLow, RiskTierModerate, RiskTierHigh} //nolint: gochecknoglobals

// ParseRiskTier converts a wire value into a RiskTier.
func ParseRiskTier(s string) (RiskTier, error) {
	switch RiskTier(s) {
	case RiskTierLow, RiskTierModerate, RiskTierHigh:
		return RiskTier(s), nil
	default:
		return "", fmt.Errorf("invalid risk tier: %q", s)
	}
}

// ClassifyRisk maps a positive-class probability in [0, 100] to a tier.
// 30 and 70 themselves are MODERATE.
func ClassifyRisk(probabilityPositive float64) RiskTier {
	switch {
	case probabilityPositive < LowRiskThreshold:
		return RiskTierLow
	case probabilityPositive > HighRiskThreshold:
		return RiskTierHigh
	default:
		return RiskTierModerate
	}
}

// Description returns the probability band of the tier as shown to API clients.
func (t RiskTier) Description() string {
	switch t {
	case RiskTierLow:
		return fmt.Sprintf("< %g%% probability", LowRiskThreshold)
	case RiskTierModerate:
		return fmt.Sprintf("%g-%g%% probability", LowRiskThreshold, HighRiskThreshold)
	case RiskTierHigh:
		return fmt.Sprintf("> %g%% probability", HighRiskThreshold)
	default:
		return ""
	}
}

const (
	messageLowNegative      = "Low risk - Patient is not predicted to be diabetic"
	messageModerateNegative = "Moderate risk - Patient is not predicted to be diabetic, but some risk factors present"
	messageHighPositive     = "High risk - Patient is predicted to be diabetic. Medical consultation recommended"
	messageModeratePositive = "Moderate to high risk - Patient is predicted to be diabetic. " +
		"Please consult a healthcare professional"
)

// OutcomeMessage returns the fixed human-readable message for a predicted
// class and risk tier.
func OutcomeMessage(isPositiveClass bool, tier RiskTier) string {
	if !isPositiveClass {
		if tier == RiskTierLow {
			return messageLowNegative
		}

		return messageModerateNegative
	}
	if tier == RiskTierHigh {
		return messageHighPositive
	}

	return messageModeratePositive
}
