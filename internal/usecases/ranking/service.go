package ranking

import (
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type RankingService interface {
	GetSalespersonRanking(period string) (*domain.SalespersonRankingResponse, error)
}

type SalespersonRankingService struct {
	SalespersonRankingRepository repository.SalespersonRankingRepository
	clock                        metrics.Clock
}

func NewSalespersonRankingService(rankingRepository repository.SalespersonRankingRepository, clock metrics.Clock) RankingService {
	return &SalespersonRankingService{
		SalespersonRankingRepository: rankingRepository,
		clock:                        clock,
	}
}

// GetSalespersonRanking retorna o ranking do período mm-yyyy. Sem período, usa o mês corrente.
func (s *SalespersonRankingService) GetSalespersonRanking(period string) (*domain.SalespersonRankingResponse, error) {
	if period == "" {
		period = utils.MonthPeriod(s.clock.Now())
	}

	ranking, err := s.SalespersonRankingRepository.GetRanking(period)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}
