package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCaprini(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{2, RiskLow},
		{3, RiskModerate},
		{4, RiskModerate},
		{5, RiskHigh},
		{8, RiskHigh},
		{9, RiskVeryHigh},
		{15, RiskVeryHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCaprini(tt.score), "score %d", tt.score)
	}
}

func TestClassifyBraden_InvertedScale(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{6, RiskVeryHigh},
		{9, RiskVeryHigh},
		{10, RiskHigh},
		{12, RiskHigh},
		{13, RiskModerate},
		{14, RiskModerate},
		{15, RiskLow},
		{23, RiskLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyBraden(tt.score), "score %d", tt.score)
	}
}

func TestClassifyMUST(t *testing.T) {
	assert.Equal(t, RiskLow, ClassifyMUST(0))
	assert.Equal(t, RiskModerate, ClassifyMUST(1))
	assert.Equal(t, RiskHigh, ClassifyMUST(2))
	assert.Equal(t, RiskHigh, ClassifyMUST(6))
}

func TestClassifyWells(t *testing.T) {
	assert.Equal(t, RiskLow, ClassifyWells(-2))
	assert.Equal(t, RiskLow, ClassifyWells(0))
	assert.Equal(t, RiskModerate, ClassifyWells(1))
	assert.Equal(t, RiskModerate, ClassifyWells(2))
	assert.Equal(t, RiskHigh, ClassifyWells(3))
	assert.Equal(t, RiskHigh, ClassifyWells(9))
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeDVT))
	assert.True(t, ValidType(TypePressureSore))
	assert.True(t, ValidType(TypeNutrition))
	assert.False(t, ValidType("wells"))
	assert.False(t, ValidType(""))
}
