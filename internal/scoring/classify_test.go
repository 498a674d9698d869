package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScreening(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name     string
		result   ScaleResult
		expected RiskTier
	}{
		{"two positives of three is medium", ScaleResult{AnsweredCount: 3, PositiveCount: 2, RawScore: 9}, RiskMedium},
		{"one positive is low regardless of raw sum", ScaleResult{AnsweredCount: 3, PositiveCount: 1, RawScore: 11}, RiskLow},
		{"three positives is medium", ScaleResult{AnsweredCount: 3, PositiveCount: 3, RawScore: 15}, RiskMedium},
		{"no answers is low", ScaleResult{}, RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, th.ClassifyScreening(tt.result))
		})
	}
}

func TestClassifyMediumDeepDive(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name     string
		result   ScaleResult
		expected RiskTier
	}{
		{"majority positive escalates", ScaleResult{AnsweredCount: 5, PositiveCount: 3}, RiskHigh},
		{"exactly half stays medium", ScaleResult{AnsweredCount: 6, PositiveCount: 3}, RiskMedium},
		{"minority positive stays medium", ScaleResult{AnsweredCount: 5, PositiveCount: 2}, RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, th.ClassifyMediumDeepDive(tt.result))
		})
	}
}

func TestClassifyFullDeepDive(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, RiskHigh, th.ClassifyFullDeepDive(ScaleResult{Percentage: 70}))
	assert.Equal(t, RiskHigh, th.ClassifyFullDeepDive(ScaleResult{Percentage: 94.5}))
	assert.Equal(t, RiskMedium, th.ClassifyFullDeepDive(ScaleResult{Percentage: 69.9}))
}

func TestClassifySincerity(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, ValidityLow, th.ClassifySincerity(ScaleResult{RawScore: 14}))
	assert.Equal(t, ValidityLow, th.ClassifySincerity(ScaleResult{RawScore: 13}))
	assert.Equal(t, ValidityLow, th.ClassifySincerity(ScaleResult{RawScore: 4}))
	assert.Equal(t, ValidityLow, th.ClassifySincerity(ScaleResult{RawScore: 3}))
	assert.Equal(t, ValidityOK, th.ClassifySincerity(ScaleResult{RawScore: 9}))
	assert.Equal(t, ValidityOK, th.ClassifySincerity(ScaleResult{RawScore: 12}))
	assert.Equal(t, ValidityOK, th.ClassifySincerity(ScaleResult{RawScore: 5}))
}

func TestCustomThresholds(t *testing.T) {
	th := Thresholds{ScreeningPositives: 3, FullPercent: 80, SincerityHigh: 14, SincerityLow: 3}

	assert.Equal(t, RiskLow, th.ClassifyScreening(ScaleResult{AnsweredCount: 3, PositiveCount: 2}))
	assert.Equal(t, RiskMedium, th.ClassifyFullDeepDive(ScaleResult{Percentage: 75}))
	assert.Equal(t, ValidityOK, th.ClassifySincerity(ScaleResult{RawScore: 13}))
}
