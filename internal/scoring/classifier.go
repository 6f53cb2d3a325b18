package scoring

// RiskLevel is the ordinal classification band derived from a score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// ClassifyCaprini maps a Caprini total to a risk band. Comparisons run
// high-to-low so ties break toward the higher-severity band.
func ClassifyCaprini(score int) RiskLevel {
	switch {
	case score >= 9:
		return RiskVeryHigh
	case score >= 5:
		return RiskHigh
	case score >= 3:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ClassifyWells maps a Wells total to its three-tier band.
func ClassifyWells(score int) RiskLevel {
	switch {
	case score >= 3:
		return RiskHigh
	case score >= 1:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ClassifyBraden maps a Braden total to a risk band. The Braden scale is
// inverted: lower totals mean higher risk.
func ClassifyBraden(score int) RiskLevel {
	switch {
	case score <= 9:
		return RiskVeryHigh
	case score <= 12:
		return RiskHigh
	case score <= 14:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ClassifyMUST maps a MUST total to a risk band.
func ClassifyMUST(score int) RiskLevel {
	switch {
	case score >= 2:
		return RiskHigh
	case score == 1:
		return RiskModerate
	default:
		return RiskLow
	}
}
