package domain

import "time"

const CallsTable = "llamadas"

// CallRecord representa a análise de uma ligação de vendas
type CallRecord struct {
	Salesperson     string    `json:"salesperson"`
	File            string    `json:"file"`
	Date            time.Time `json:"date"`
	Month           string    `json:"month"`
	DurationSeconds float64   `json:"duration_seconds"`
	ScriptAdherence float64   `json:"script_adherence"`
	Sentiment       float64   `json:"sentiment"`
	FluencyRating   string    `json:"fluency_rating"`
	Transcript      string    `json:"transcript"`
}

// CallQuality contém os indicadores derivados de uma ligação
type CallQuality struct {
	*CallRecord
	DurationMinutes float64 `json:"duration_minutes"`
	FluencyScore    float64 `json:"fluency_score"`
	QualityScore    float64 `json:"quality_score"`
	Classification  string  `json:"classification"`
}

type CallFilters struct {
	Salespeople []string   `json:"salespeople"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// CallTeamSummary resume a qualidade das ligações da equipe
type CallTeamSummary struct {
	Calls               int                      `json:"calls"`
	MeanAdherence       Ratio                    `json:"mean_adherence"`
	MeanSentiment       Ratio                    `json:"mean_sentiment"`
	MeanDurationMinutes Ratio                    `json:"mean_duration_minutes"`
	Salespeople         []SalespersonCallQuality `json:"salespeople"`
	Details             []*CallQuality           `json:"details"`
}

type SalespersonCallQuality struct {
	Salesperson         string  `json:"salesperson"`
	Calls               int     `json:"calls"`
	MeanAdherence       float64 `json:"mean_adherence"`
	MeanSentiment       float64 `json:"mean_sentiment"`
	MeanDurationMinutes float64 `json:"mean_duration_minutes"`
	MeanQuality         float64 `json:"mean_quality"`
	Classification      string  `json:"classification"`
}

// LanguageAnalysis contém a contagem de vícios de linguagem nas transcrições
type LanguageAnalysis struct {
	Calls       int               `json:"calls"`
	FillerWords []FillerWordCount `json:"filler_words"`
	Total       int               `json:"total"`
}

type FillerWordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
