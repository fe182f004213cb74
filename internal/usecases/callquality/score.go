package callquality

import (
	"strings"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

const (
	ClassExemplary   = "Ejemplar"
	ClassSatisfying  = "Satisfactorio"
	ClassNeedsWork   = "Necesita Mejora"
	ClassCritical    = "Crítico"
	adherenceWeight  = 0.5
	sentimentWeight  = 0.3
	fluencyWeight    = 0.2
	fluencyScale     = 10.0
	secondsPerMinute = 60.0
)

var fluencyScores = map[string]float64{
	"excelente":  10,
	"buena":      8,
	"regular":    6,
	"deficiente": 4,
	"malo":       2,
}

// FluencyScore converte a avaliação textual de fluência em nota de 0 a 10
func FluencyScore(rating string) float64 {
	return fluencyScores[strings.ToLower(strings.TrimSpace(rating))]
}

// QualityScore combina apego ao roteiro, sentimento e fluência numa nota de 0 a 100
func QualityScore(adherence, sentiment, fluency float64) float64 {
	return adherence*adherenceWeight + sentiment*sentimentWeight + fluency*fluencyScale*fluencyWeight
}

// Classify retorna a classificação da nota de qualidade
func Classify(score float64) string {
	switch {
	case score >= 85:
		return ClassExemplary
	case score >= 70:
		return ClassSatisfying
	case score >= 50:
		return ClassNeedsWork
	default:
		return ClassCritical
	}
}

// Evaluate calcula os indicadores de uma ligação
func Evaluate(call *domain.CallRecord) *domain.CallQuality {
	fluency := FluencyScore(call.FluencyRating)
	score := QualityScore(call.ScriptAdherence, call.Sentiment, fluency)

	return &domain.CallQuality{
		CallRecord:      call,
		DurationMinutes: call.DurationSeconds / secondsPerMinute,
		FluencyScore:    fluency,
		QualityScore:    score,
		Classification:  Classify(score),
	}
}
