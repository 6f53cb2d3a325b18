package scoring

import "math"

// Result pairs a computed total with its classification band.
type Result struct {
	Score     int       `json:"score"`
	RiskLevel RiskLevel `json:"risk_level"`
}

// DVTStrategy names a DVT scoring algorithm. Caprini is the canonical
// strategy and drives the assessment workflow; Wells must be requested
// explicitly by the caller.
type DVTStrategy string

const (
	StrategyCaprini DVTStrategy = "caprini"
	StrategyWells   DVTStrategy = "wells"
)

// CalculateDVT computes the Caprini total: each set flag contributes the
// points of its weight class. No upper bound is applied at summation; bands
// are decided only at classification.
func CalculateDVT(f CapriniFactors) Result {
	score := 0
	for _, set := range f.onePointFlags() {
		if set {
			score++
		}
	}
	for _, set := range f.twoPointFlags() {
		if set {
			score += 2
		}
	}
	for _, set := range f.threePointFlags() {
		if set {
			score += 3
		}
	}
	for _, set := range f.fivePointFlags() {
		if set {
			score += 5
		}
	}
	return Result{Score: score, RiskLevel: ClassifyCaprini(score)}
}

// CalculateWells computes the Wells DVT total. Each criterion scores one
// point and a likely alternative diagnosis subtracts two, so the total can
// go to -2; classification never reports below "low".
func CalculateWells(f WellsFactors) Result {
	score := 0
	for _, set := range []bool{
		f.ActiveCancer, f.ParalysisOrImmobilization, f.RecentlyBedriddenOrSurgery,
		f.LocalizedTenderness, f.EntireLegSwollen, f.CalfSwellingOver3cm,
		f.PittingEdema, f.CollateralSuperficialVeins, f.PreviouslyDocumentedDVT,
	} {
		if set {
			score++
		}
	}
	if f.AlternativeDiagnosisLikely {
		score -= 2
	}
	return Result{Score: score, RiskLevel: ClassifyWells(score)}
}

// CalculateBraden sums the six subscale values. All six must be explicitly
// set and in range; a missing subscale would otherwise silently bias the
// total toward "very high risk".
func CalculateBraden(b BradenSubscores) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, err
	}
	score := b.SensoryPerception + b.Moisture + b.Activity + b.Mobility +
		b.Nutrition + b.FrictionShear
	return Result{Score: score, RiskLevel: ClassifyBraden(score)}, nil
}

// CalculateMUST sums the three MUST components: the caller-supplied BMI
// score, a weight-loss score derived from the loss percentage, and two
// points when an acute disease effect is present.
func CalculateMUST(in MUSTInputs) (Result, error) {
	if in.BMIScore < 0 || in.BMIScore > 2 {
		return Result{}, &ValidationError{Field: "bmi_score", Msg: "must be 0, 1 or 2"}
	}
	if in.WeightLossPct < 0 {
		return Result{}, &ValidationError{Field: "weight_loss_pct", Msg: "must not be negative"}
	}
	score := in.BMIScore
	switch {
	case in.WeightLossPct >= 10:
		score += 2
	case in.WeightLossPct >= 5:
		score++
	}
	if in.AcuteDisease {
		score += 2
	}
	return Result{Score: score, RiskLevel: ClassifyMUST(score)}, nil
}

// CalculateBMI returns weight / (height/100)^2, or 0 when either input is
// non-positive.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / math.Pow(m, 2)
}

// BMIScore derives the MUST BMI component from a body mass index.
func BMIScore(bmi float64) int {
	switch {
	case bmi < 18.5:
		return 2
	case bmi < 20:
		return 1
	default:
		return 0
	}
}
