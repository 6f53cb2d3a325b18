package scoring

import "fmt"

// AssessmentType identifies which clinical risk instrument produced a score.
type AssessmentType string

const (
	TypeDVT          AssessmentType = "dvt"
	TypePressureSore AssessmentType = "pressure_sore"
	TypeNutrition    AssessmentType = "nutrition"
)

// ValidType reports whether t is one of the supported assessment types.
func ValidType(t AssessmentType) bool {
	switch t {
	case TypeDVT, TypePressureSore, TypeNutrition:
		return true
	}
	return false
}

// CapriniFactors is the risk-factor checklist for the Caprini VTE score.
// Fields are grouped by the number of points each contributes when set.
type CapriniFactors struct {
	// 1 point each
	Age41To60            bool `json:"age_41_60"`
	MinorSurgery         bool `json:"minor_surgery"`
	BMIOver25            bool `json:"bmi_over_25"`
	SwollenLegs          bool `json:"swollen_legs"`
	VaricoseVeins        bool `json:"varicose_veins"`
	PregnancyPostpartum  bool `json:"pregnancy_postpartum"`
	RecurrentAbortion    bool `json:"recurrent_abortion"`
	OralContraceptives   bool `json:"oral_contraceptives"`
	Sepsis               bool `json:"sepsis"`
	SeriousLungDisease   bool `json:"serious_lung_disease"`
	AbnormalPulmonary    bool `json:"abnormal_pulmonary_function"`
	AcuteMI              bool `json:"acute_mi"`
	CongestiveHeartFail  bool `json:"congestive_heart_failure"`
	InflammatoryBowel    bool `json:"inflammatory_bowel_disease"`
	MedicalBedRest       bool `json:"medical_bed_rest"`

	// 2 points each
	Age61To74            bool `json:"age_61_74"`
	ArthroscopicSurgery  bool `json:"arthroscopic_surgery"`
	MajorSurgeryOver45   bool `json:"major_surgery_45min"`
	LaparoscopicOver45   bool `json:"laparoscopic_45min"`
	Malignancy           bool `json:"malignancy"`
	BedConfinedOver72h   bool `json:"bed_confined_72h"`
	ImmobilizingCast     bool `json:"immobilizing_cast"`
	CentralVenousAccess  bool `json:"central_venous_access"`

	// 3 points each
	Age75Plus            bool `json:"age_75_plus"`
	PersonalHistoryVTE   bool `json:"personal_history_vte"`
	FamilyHistoryVTE     bool `json:"family_history_vte"`
	FactorVLeiden        bool `json:"factor_v_leiden"`
	ProthrombinMutation  bool `json:"prothrombin_20210a"`
	LupusAnticoagulant   bool `json:"lupus_anticoagulant"`
	AnticardiolipinAb    bool `json:"anticardiolipin_antibodies"`
	ElevatedHomocysteine bool `json:"elevated_homocysteine"`
	HeparinThrombocyto   bool `json:"heparin_induced_thrombocytopenia"`
	OtherThrombophilia   bool `json:"other_thrombophilia"`

	// 5 points each
	Stroke               bool `json:"stroke"`
	ElectiveArthroplasty bool `json:"elective_arthroplasty"`
	HipPelvisLegFracture bool `json:"hip_pelvis_leg_fracture"`
	SpinalCordInjury     bool `json:"spinal_cord_injury"`
}

func (f *CapriniFactors) onePointFlags() []bool {
	return []bool{
		f.Age41To60, f.MinorSurgery, f.BMIOver25, f.SwollenLegs,
		f.VaricoseVeins, f.PregnancyPostpartum, f.RecurrentAbortion,
		f.OralContraceptives, f.Sepsis, f.SeriousLungDisease,
		f.AbnormalPulmonary, f.AcuteMI, f.CongestiveHeartFail,
		f.InflammatoryBowel, f.MedicalBedRest,
	}
}

func (f *CapriniFactors) twoPointFlags() []bool {
	return []bool{
		f.Age61To74, f.ArthroscopicSurgery, f.MajorSurgeryOver45,
		f.LaparoscopicOver45, f.Malignancy, f.BedConfinedOver72h,
		f.ImmobilizingCast, f.CentralVenousAccess,
	}
}

func (f *CapriniFactors) threePointFlags() []bool {
	return []bool{
		f.Age75Plus, f.PersonalHistoryVTE, f.FamilyHistoryVTE,
		f.FactorVLeiden, f.ProthrombinMutation, f.LupusAnticoagulant,
		f.AnticardiolipinAb, f.ElevatedHomocysteine, f.HeparinThrombocyto,
		f.OtherThrombophilia,
	}
}

func (f *CapriniFactors) fivePointFlags() []bool {
	return []bool{
		f.Stroke, f.ElectiveArthroplasty, f.HipPelvisLegFracture,
		f.SpinalCordInjury,
	}
}

// WellsFactors is the alternate DVT checklist. Each criterion scores one
// point; a likely alternative diagnosis subtracts two.
type WellsFactors struct {
	ActiveCancer                 bool `json:"active_cancer"`
	ParalysisOrImmobilization    bool `json:"paralysis_or_immobilization"`
	RecentlyBedriddenOrSurgery   bool `json:"recently_bedridden_or_surgery"`
	LocalizedTenderness          bool `json:"localized_tenderness"`
	EntireLegSwollen             bool `json:"entire_leg_swollen"`
	CalfSwellingOver3cm          bool `json:"calf_swelling_over_3cm"`
	PittingEdema                 bool `json:"pitting_edema"`
	CollateralSuperficialVeins   bool `json:"collateral_superficial_veins"`
	PreviouslyDocumentedDVT      bool `json:"previously_documented_dvt"`
	AlternativeDiagnosisLikely   bool `json:"alternative_diagnosis_likely"`
}

// BradenSubscores holds the six Braden subscale values. Sensory perception,
// moisture, activity, mobility and nutrition range 1-4; friction/shear
// ranges 1-3. A zero value means the subscale was never set and fails
// validation rather than silently lowering the total.
type BradenSubscores struct {
	SensoryPerception int `json:"sensory_perception"`
	Moisture          int `json:"moisture"`
	Activity          int `json:"activity"`
	Mobility          int `json:"mobility"`
	Nutrition         int `json:"nutrition"`
	FrictionShear     int `json:"friction_shear"`
}

// Validate checks that every subscale has been explicitly set and is in range.
func (b BradenSubscores) Validate() error {
	check := func(name string, v, max int) error {
		if v < 1 || v > max {
			return &ValidationError{Field: name, Msg: fmt.Sprintf("must be between 1 and %d", max)}
		}
		return nil
	}
	if err := check("sensory_perception", b.SensoryPerception, 4); err != nil {
		return err
	}
	if err := check("moisture", b.Moisture, 4); err != nil {
		return err
	}
	if err := check("activity", b.Activity, 4); err != nil {
		return err
	}
	if err := check("mobility", b.Mobility, 4); err != nil {
		return err
	}
	if err := check("nutrition", b.Nutrition, 4); err != nil {
		return err
	}
	return check("friction_shear", b.FrictionShear, 3)
}

// MUSTInputs are the component inputs to the malnutrition screening score.
type MUSTInputs struct {
	BMIScore       int     `json:"bmi_score"`
	WeightLossPct  float64 `json:"weight_loss_pct"`
	AcuteDisease   bool    `json:"acute_disease"`
}
