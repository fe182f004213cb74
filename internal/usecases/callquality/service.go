// Package callquality avalia a qualidade das ligações de vendas
package callquality

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

type Analyzer interface {
	GetTeamSummary(scope domain.AccessScope, filters domain.CallFilters) (*domain.CallTeamSummary, error)
	GetLanguageAnalysis(scope domain.AccessScope, filters domain.CallFilters) (*domain.LanguageAnalysis, error)
}

type Service struct {
	callRepo repository.CallRecordRepository
}

func NewService(callRepo repository.CallRecordRepository) Analyzer {
	return &Service{
		callRepo: callRepo,
	}
}

func (s *Service) GetTeamSummary(scope domain.AccessScope, filters domain.CallFilters) (*domain.CallTeamSummary, error) {
	calls, err := s.callRepo.List(scope, filters)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar ligações")
		return nil, err
	}

	return Summarize(calls), nil
}

func (s *Service) GetLanguageAnalysis(scope domain.AccessScope, filters domain.CallFilters) (*domain.LanguageAnalysis, error) {
	calls, err := s.callRepo.List(scope, filters)
	if err != nil {
		log.WithError(err).Error("Erro ao buscar ligações")
		return nil, err
	}

	return AnalyzeLanguage(calls), nil
}

type salespersonAccumulator struct {
	calls     int
	adherence float64
	sentiment float64
	minutes   float64
	quality   float64
}

// Summarize calcula as médias da equipe e de cada vendedor.
// A classificação do vendedor é feita sobre a média das notas.
func Summarize(calls []*domain.CallRecord) *domain.CallTeamSummary {
	summary := &domain.CallTeamSummary{
		Calls:       len(calls),
		Salespeople: []domain.SalespersonCallQuality{},
		Details:     make([]*domain.CallQuality, 0, len(calls)),
	}

	var adherence, sentiment, minutes float64
	bySalesperson := map[string]*salespersonAccumulator{}

	for _, c := range calls {
		q := Evaluate(c)
		summary.Details = append(summary.Details, q)

		adherence += c.ScriptAdherence
		sentiment += c.Sentiment
		minutes += q.DurationMinutes

		acc, ok := bySalesperson[c.Salesperson]
		if !ok {
			acc = &salespersonAccumulator{}
			bySalesperson[c.Salesperson] = acc
		}
		acc.calls++
		acc.adherence += c.ScriptAdherence
		acc.sentiment += c.Sentiment
		acc.minutes += q.DurationMinutes
		acc.quality += q.QualityScore
	}

	n := float64(len(calls))
	summary.MeanAdherence = domain.NewRatio(adherence, n)
	summary.MeanSentiment = domain.NewRatio(sentiment, n)
	summary.MeanDurationMinutes = domain.NewRatio(minutes, n)

	for sp, acc := range bySalesperson {
		count := float64(acc.calls)
		meanQuality := acc.quality / count
		summary.Salespeople = append(summary.Salespeople, domain.SalespersonCallQuality{
			Salesperson:         sp,
			Calls:               acc.calls,
			MeanAdherence:       acc.adherence / count,
			MeanSentiment:       acc.sentiment / count,
			MeanDurationMinutes: acc.minutes / count,
			MeanQuality:         meanQuality,
			Classification:      Classify(meanQuality),
		})
	}
	sort.Slice(summary.Salespeople, func(i, j int) bool {
		return summary.Salespeople[i].MeanQuality > summary.Salespeople[j].MeanQuality
	})

	return summary
}
