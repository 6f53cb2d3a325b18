// Package mealplan derives a 7-day therapeutic diet plan from a patient's
// anthropometrics, diagnosis and comorbidity set. Generation is fully
// deterministic: identical profiles always produce identical plans.
package mealplan

import (
	"math"
	"strings"

	"github.com/carelink/carelink/internal/scoring"
)

// ActivityLevel scales the base metabolic estimate.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityModerate:  1.5,
	ActivityActive:    1.7,
}

// Comorbidities are the flags that adjust menus, macros and caps.
type Comorbidities struct {
	Diabetes        bool `json:"diabetes"`
	Hypertension    bool `json:"hypertension"`
	RenalImpairment bool `json:"renal_impairment"`
	LiverDisease    bool `json:"liver_disease"`
}

// Profile is the nutritional and clinical state a plan is generated from.
type Profile struct {
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Diagnosis     string        `json:"diagnosis"`
	Comorbidities Comorbidities `json:"comorbidities"`
}

// NutritionalInfo is the daily macro-nutrient block attached to each day.
// The sodium/potassium/phosphorus caps are present only when the matching
// comorbidity is flagged.
type NutritionalInfo struct {
	Calories       int  `json:"calories"`
	ProteinG       int  `json:"protein_g"`
	CarbsG         int  `json:"carbs_g"`
	FatG           int  `json:"fat_g"`
	FiberG         int  `json:"fiber_g"`
	SodiumCapMg    *int `json:"sodium_cap_mg,omitempty"`
	PotassiumCapMg *int `json:"potassium_cap_mg,omitempty"`
	PhosphorusCapMg *int `json:"phosphorus_cap_mg,omitempty"`
}

// DayPlan is one day's menu selections plus the macro block.
type DayPlan struct {
	Day       int             `json:"day"`
	Breakfast string          `json:"breakfast"`
	Lunch     string          `json:"lunch"`
	Dinner    string          `json:"dinner"`
	Snacks    [2]string       `json:"snacks"`
	Nutrition NutritionalInfo `json:"nutrition"`
}

// WeeklyTotals are each daily macro multiplied by seven.
type WeeklyTotals struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
}

// Plan is the generated 7-day diet plan.
type Plan struct {
	Days                []DayPlan    `json:"days"`
	WeeklyTotals        WeeklyTotals `json:"weekly_totals"`
	SpecialInstructions []string     `json:"special_instructions"`
}

const (
	sodiumCapMg     = 2000
	potassiumCapMg  = 2500
	phosphorusCapMg = 900
)

// woundHealingNeed infers an elevated protein requirement from the primary
// diagnosis text.
func woundHealingNeed(diagnosis string) bool {
	d := strings.ToLower(diagnosis)
	for _, kw := range []string{"wound", "surgery", "burn"} {
		if strings.Contains(d, kw) {
			return true
		}
	}
	return false
}

// Generate derives the 7-day plan. Protein restriction for renal impairment
// takes precedence over the wound-healing uplift.
func Generate(p Profile) (*Plan, error) {
	if p.WeightKg <= 0 {
		return nil, &scoring.ValidationError{Field: "weight_kg", Msg: "must be positive"}
	}
	if p.HeightCm <= 0 {
		return nil, &scoring.ValidationError{Field: "height_cm", Msg: "must be positive"}
	}
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return nil, &scoring.ValidationError{Field: "activity_level", Msg: "must be sedentary, moderate or active"}
	}

	base := p.WeightKg * 24
	calories := int(math.Round(base * mult))

	proteinRate := 1.0
	switch {
	case p.Comorbidities.RenalImpairment:
		proteinRate = 0.6
	case woundHealingNeed(p.Diagnosis):
		proteinRate = 1.5
	}
	protein := int(math.Round(p.WeightKg * proteinRate))

	carbPct := 0.5
	if p.Comorbidities.Diabetes {
		carbPct = 0.4
	}
	carbs := int(math.Round(float64(calories) * carbPct / 4))
	fat := int(math.Round(float64(calories) * 0.3 / 9))
	fiber := int(math.Round(p.WeightKg * 0.4))

	info := NutritionalInfo{
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		FiberG:   fiber,
	}
	if p.Comorbidities.Hypertension {
		cap := sodiumCapMg
		info.SodiumCapMg = &cap
	}
	if p.Comorbidities.RenalImpairment {
		k := potassiumCapMg
		ph := phosphorusCapMg
		info.PotassiumCapMg = &k
		info.PhosphorusCapMg = &ph
	}

	plan := &Plan{
		Days: make([]DayPlan, 7),
		WeeklyTotals: WeeklyTotals{
			Calories: calories * 7,
			ProteinG: protein * 7,
			CarbsG:   carbs * 7,
			FatG:     fat * 7,
			FiberG:   fiber * 7,
		},
		SpecialInstructions: specialInstructions(p),
	}
	for day := 0; day < 7; day++ {
		plan.Days[day] = DayPlan{
			Day:       day + 1,
			Breakfast: breakfastFor(p.Comorbidities.Diabetes, day),
			Lunch:     lunchFor(p.Comorbidities.Hypertension, day),
			Dinner:    dinnerFor(p.Comorbidities.RenalImpairment, day),
			Snacks:    snacksFor(p.Comorbidities.LiverDisease, day),
			Nutrition: info,
		}
	}
	return plan, nil
}

func specialInstructions(p Profile) []string {
	var out []string
	if p.Comorbidities.Diabetes {
		out = append(out, "Avoid refined sugars and sweetened drinks; keep carbohydrate portions consistent across meals.")
	}
	if p.Comorbidities.Hypertension {
		out = append(out, "No added table salt; avoid stock cubes, canned and processed foods.")
	}
	if p.Comorbidities.RenalImpairment {
		out = append(out, "Limit high-potassium fruits (banana, orange) and dairy; protein portions are deliberately restricted.")
	}
	if p.Comorbidities.LiverDisease {
		out = append(out, "Avoid alcohol entirely; prefer small frequent meals and limit fried foods.")
	}
	if woundHealingNeed(p.Diagnosis) && !p.Comorbidities.RenalImpairment {
		out = append(out, "Increased protein target to support wound healing; encourage eggs, fish and beans at each meal.")
	}
	return out
}
