package recommend

import "github.com/carelink/carelink/internal/scoring"

// DefaultCatalog builds the standard recommendation table. The content is
// clinical domain data, kept in one place so it can be reviewed and edited
// without touching lookup logic.
func DefaultCatalog() *Catalog {
	c := &Catalog{entries: map[catalogKey]Advice{}}

	c.put(scoring.TypeDVT, scoring.RiskLow, Advice{
		Clinical: []string{
			"Low VTE risk: early ambulation is the primary preventive measure.",
			"Encourage leg exercises and adequate hydration throughout admission.",
			"No routine pharmacological prophylaxis indicated at this risk level.",
			"Reassess risk if the patient's mobility or clinical condition changes.",
		},
		Interventions: []string{
			"Encourage early and frequent ambulation",
			"Teach active leg and ankle exercises",
			"Reassess VTE risk on change in condition",
		},
	})
	c.put(scoring.TypeDVT, scoring.RiskModerate, Advice{
		Clinical: []string{
			"Moderate VTE risk: mechanical prophylaxis is recommended.",
			"Apply graduated compression stockings unless contraindicated by arterial disease.",
			"Consider pharmacological prophylaxis if additional risk factors develop.",
			"Document calf circumference at baseline and monitor for asymmetric swelling.",
		},
		Interventions: []string{
			"Apply graduated compression stockings",
			"Encourage early ambulation and leg exercises",
			"Monitor calves daily for swelling or tenderness",
			"Reassess VTE risk every 48 hours",
		},
	})
	c.put(scoring.TypeDVT, scoring.RiskHigh, Advice{
		Clinical: []string{
			"High VTE risk: combined mechanical and pharmacological prophylaxis is recommended.",
			"Commence low molecular weight heparin at prophylactic dose unless contraindicated by active bleeding.",
			"Apply intermittent pneumatic compression or graduated compression stockings.",
			"Monitor platelet count while on heparin to detect heparin-induced thrombocytopenia.",
			"Educate the patient on signs of DVT and pulmonary embolism before discharge.",
		},
		Interventions: []string{
			"Commence pharmacological prophylaxis (LMWH) per protocol",
			"Apply intermittent pneumatic compression",
			"Monitor platelet count per heparin protocol",
			"Daily limb assessment for swelling, warmth or tenderness",
			"Patient education on DVT and PE warning signs",
		},
	})
	c.put(scoring.TypeDVT, scoring.RiskVeryHigh, Advice{
		Clinical: []string{
			"Very high VTE risk: combined mechanical and pharmacological prophylaxis is mandatory unless contraindicated.",
			"Commence low molecular weight heparin and continue extended prophylaxis per surgical protocol.",
			"Apply intermittent pneumatic compression whenever the patient is in bed.",
			"Refer to haematology if anticoagulation is contraindicated; consider IVC filter evaluation.",
			"Avoid prolonged immobilization; schedule assisted mobilization at least twice daily.",
			"Urgent senior clinician review of the thromboprophylaxis plan within 24 hours.",
		},
		Interventions: []string{
			"Commence pharmacological prophylaxis (LMWH) immediately",
			"Continuous intermittent pneumatic compression while in bed",
			"Senior review of thromboprophylaxis plan within 24 hours",
			"Haematology referral if anticoagulation contraindicated",
			"Assisted mobilization at least twice daily",
			"Patient and family education on VTE warning signs",
		},
	})

	c.put(scoring.TypePressureSore, scoring.RiskLow, Advice{
		Clinical: []string{
			"Low pressure-injury risk: maintain routine skin care and encourage self-repositioning.",
			"Inspect skin over bony prominences once per shift.",
			"Keep skin clean and dry; use moisturizer on dry areas.",
		},
		Interventions: []string{
			"Skin inspection once per shift",
			"Encourage independent repositioning",
			"Routine skin hygiene and moisturizing",
		},
	})
	c.put(scoring.TypePressureSore, scoring.RiskModerate, Advice{
		Clinical: []string{
			"Moderate pressure-injury risk: implement a scheduled repositioning programme.",
			"Reposition at least every 2-3 hours, alternating lateral and supine positions.",
			"Use a foam pressure-redistributing mattress overlay.",
			"Protect heels by floating them off the bed surface with pillows.",
			"Optimize hydration and protein intake; involve the dietitian if intake is poor.",
		},
		Interventions: []string{
			"Repositioning schedule every 2-3 hours",
			"Provide pressure-redistributing foam mattress",
			"Heel offloading with pillows",
			"Skin inspection every shift with Braden rescore",
			"Dietitian referral if nutritional intake poor",
		},
	})
	c.put(scoring.TypePressureSore, scoring.RiskHigh, Advice{
		Clinical: []string{
			"High pressure-injury risk: reposition every 2 hours and document turns on a turning chart.",
			"Provide an alternating-pressure air mattress.",
			"Apply prophylactic dressings over the sacrum and heels.",
			"Manage moisture from incontinence promptly with barrier cream.",
			"Complete a nutritional screen; pressure-injury risk compounds with malnutrition.",
		},
		Interventions: []string{
			"2-hourly repositioning with documented turning chart",
			"Provide alternating-pressure air mattress",
			"Prophylactic sacral and heel dressings",
			"Barrier cream and prompt incontinence care",
			"Complete nutritional screening",
		},
	})
	c.put(scoring.TypePressureSore, scoring.RiskVeryHigh, Advice{
		Clinical: []string{
			"Very high pressure-injury risk: treat as a clinical priority with a full prevention bundle.",
			"Reposition every 1-2 hours; small positional shifts between full turns.",
			"Provide a low-air-loss or alternating-pressure support surface.",
			"Refer to the tissue-viability team within 24 hours.",
			"Daily full-body skin assessment with photographic documentation of at-risk sites.",
			"Aggressively manage moisture, friction and shear during all transfers.",
		},
		Interventions: []string{
			"1-2 hourly repositioning with turning chart",
			"Provide low-air-loss support surface",
			"Tissue-viability team referral within 24 hours",
			"Daily full-body skin assessment",
			"Use slide sheets for all transfers to reduce shear",
			"Prophylactic dressings over sacrum, heels and trochanters",
		},
	})

	c.put(scoring.TypeNutrition, scoring.RiskLow, Advice{
		Clinical: []string{
			"Low malnutrition risk: continue routine diet and repeat screening weekly.",
			"Document weight weekly while admitted.",
		},
		Interventions: []string{
			"Routine hospital diet",
			"Weekly weight and MUST rescreen",
		},
	})
	c.put(scoring.TypeNutrition, scoring.RiskModerate, Advice{
		Clinical: []string{
			"Moderate malnutrition risk: observe and document food intake for 3 days.",
			"Encourage nourishing drinks between meals.",
			"Repeat MUST screening in 3 days; escalate to dietitian if intake remains inadequate.",
		},
		Interventions: []string{
			"3-day food intake chart",
			"Offer nourishing drinks between meals",
			"Repeat MUST screening in 3 days",
		},
	})
	c.put(scoring.TypeNutrition, scoring.RiskHigh, Advice{
		Clinical: []string{
			"High malnutrition risk: refer to the dietitian within 24 hours.",
			"Commence a structured high-energy, high-protein meal plan adjusted for comorbidities.",
			"Prescribe oral nutritional supplements between meals unless contraindicated.",
			"Weigh twice weekly and chart all oral intake.",
			"Review medications that suppress appetite or cause nausea.",
		},
		Interventions: []string{
			"Dietitian referral within 24 hours",
			"Commence structured therapeutic meal plan",
			"Oral nutritional supplements between meals",
			"Twice-weekly weight with intake charting",
			"Medication review for appetite suppressants",
		},
	})

	return c
}

func (c *Catalog) put(t scoring.AssessmentType, level scoring.RiskLevel, a Advice) {
	c.entries[catalogKey{Type: t, Level: level}] = a
}
