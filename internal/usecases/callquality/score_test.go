package callquality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestFluencyScore(t *testing.T) {
	assert.Equal(t, 10.0, FluencyScore("Excelente"))
	assert.Equal(t, 8.0, FluencyScore(" buena "))
	assert.Equal(t, 6.0, FluencyScore("REGULAR"))
	assert.Equal(t, 4.0, FluencyScore("Deficiente"))
	assert.Equal(t, 2.0, FluencyScore("Malo"))
	assert.Equal(t, 0.0, FluencyScore("desconocido"))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{score: 100, expected: ClassExemplary},
		{score: 85, expected: ClassExemplary},
		{score: 84.9, expected: ClassSatisfying},
		{score: 70, expected: ClassSatisfying},
		{score: 50, expected: ClassNeedsWork},
		{score: 49.99, expected: ClassCritical},
		{score: 0, expected: ClassCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.score), "nota %v", tt.score)
	}
}

func TestEvaluate(t *testing.T) {
	call := &domain.CallRecord{
		Salesperson:     "VDE_1",
		DurationSeconds: 90,
		ScriptAdherence: 90,
		Sentiment:       80,
		FluencyRating:   "Buena",
	}

	q := Evaluate(call)

	// 90*0.5 + 80*0.3 + 8*10*0.2
	assert.InDelta(t, 85.0, q.QualityScore, 1e-9)
	assert.Equal(t, 8.0, q.FluencyScore)
	assert.Equal(t, 1.5, q.DurationMinutes)
	assert.Equal(t, ClassExemplary, q.Classification)
	assert.Same(t, call, q.CallRecord)
}
