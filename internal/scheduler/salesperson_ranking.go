package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

type SalespersonRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SalespersonRankingService ordena os vendedores pelo percentual da meta atingido no mês corrente
type SalespersonRankingService struct {
	scheduler           *gocron.Scheduler
	salesRepo           repository.SalesRecordRepository
	budgetRepo          repository.BudgetRecordRepository
	rankingRepo         repository.SalespersonRankingRepository
	clock               metrics.Clock
	config              SalespersonRankingConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSalespersonRankingService(
	salesRepo repository.SalesRecordRepository,
	budgetRepo repository.BudgetRecordRepository,
	rankingRepo repository.SalespersonRankingRepository,
	clock metrics.Clock,
	cfg *config.Config,
) *SalespersonRankingService {
	rankingConfig := SalespersonRankingConfig{
		CronSchedule: cfg.SalespersonRanking.CronSchedule,
		SyncEnabled:  cfg.SalespersonRanking.Enabled,
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rankingConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de vendedores carregada")

	return &SalespersonRankingService{
		scheduler:   gocron.NewScheduler(location),
		salesRepo:   salesRepo,
		budgetRepo:  budgetRepo,
		rankingRepo: rankingRepo,
		clock:       clock,
		config:      rankingConfig,
	}
}

func (s *SalespersonRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de vendedores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de vendedores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateSalespersonRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de vendedores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ranking de vendedores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de vendedores")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SalespersonRankingService) UpdateSalespersonRanking() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de vendedores já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando atualização do ranking de vendedores")

	_, err := s.processRankingWithDate(s.clock.Now())
	if err != nil {
		return err
	}

	logrus.Info("Atualização do ranking de vendedores concluída")
	return nil
}

// processRankingWithDate calcula o cumprimento do mês da data informada para todos os vendedores
// e compara as posições com o ranking já gravado para o mesmo período.
func (s *SalespersonRankingService) processRankingWithDate(processingDate time.Time) ([]*domain.SalespersonRankingItem, error) {
	month := domain.MonthName(processingDate.Month())
	year := processingDate.Year()
	period := utils.MonthPeriod(processingDate)

	sales, err := s.salesRepo.List(domain.Unrestricted())
	if err != nil {
		logrus.WithError(err).Error("SalespersonRankingService: erro ao buscar vendas")
		return nil, err
	}

	budget, err := s.budgetRepo.List(domain.Unrestricted())
	if err != nil {
		logrus.WithError(err).Error("SalespersonRankingService: erro ao buscar metas")
		return nil, err
	}

	engine := metrics.NewEngine(sales, budget, metrics.FixedClock{At: processingDate})
	report, condition, err := engine.GoalAttainment(month, year)
	if err != nil {
		return nil, err
	}
	if condition != domain.ConditionNone {
		logrus.WithFields(logrus.Fields{
			"period":    period,
			"condition": condition,
		}).Info("SalespersonRankingService: sem dados para o ranking do período")
		return []*domain.SalespersonRankingItem{}, nil
	}

	rows := report.Salespeople()

	wg := sync.WaitGroup{}
	rankingBeforeUpdate := make(chan domain.SalespersonRankingItem, len(rows))
	for _, row := range rows {
		wg.Add(1)
		go func(salespersonID string) {
			defer wg.Done()

			previous, err := s.rankingRepo.GetBySalesperson(salespersonID, period)
			if err != nil {
				logrus.WithError(err).WithField("salesperson", salespersonID).Error("SalespersonRankingService: erro ao buscar ranking anterior")
				return
			}
			if previous != nil {
				rankingBeforeUpdate <- *previous
			}
		}(row.SalespersonID)
	}

	wg.Wait()
	close(rankingBeforeUpdate)

	rankingsBeforeUpdate := make(map[string]*domain.SalespersonRankingItem, len(rows))
	for ranking := range rankingBeforeUpdate {
		if ranking.SalespersonID == "" {
			continue
		}
		rankingsBeforeUpdate[ranking.SalespersonID] = &ranking
	}

	updatedRankings := make([]*domain.SalespersonRankingItem, 0, len(rows))
	for _, row := range rows {
		updatedRankings = append(updatedRankings, &domain.SalespersonRankingItem{
			SalespersonID:  row.SalespersonID,
			Period:         period,
			RealizedAmount: row.RealizedAmount,
			TargetAmount:   row.TargetAmount,
			PercentAmount:  row.PercentAmount,
		})
	}

	updatePositions(updatedRankings, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdate(updatedRankings); err != nil {
		logrus.WithError(err).Error("Erro ao salvar ranking de vendedores atualizado")
		return updatedRankings, err
	}

	logrus.WithField("period", period).Info("Ranking de vendedores atualizado")

	return updatedRankings, nil
}

// updatePositions ordena pelo percentual da meta, com percentuais indefinidos por último.
// Empates são resolvidos pelo valor vendido e depois pelo código do vendedor.
func updatePositions(
	updatedRankings []*domain.SalespersonRankingItem,
	rankingsBeforeUpdate map[string]*domain.SalespersonRankingItem,
) {
	sort.SliceStable(updatedRankings, func(i, j int) bool {
		a, b := updatedRankings[i], updatedRankings[j]
		if a.PercentAmount.Valid != b.PercentAmount.Valid {
			return a.PercentAmount.Valid
		}
		if a.PercentAmount.Valid && a.PercentAmount.Value != b.PercentAmount.Value {
			return a.PercentAmount.Value > b.PercentAmount.Value
		}
		if a.RealizedAmount != b.RealizedAmount {
			return a.RealizedAmount > b.RealizedAmount
		}
		return a.SalespersonID < b.SalespersonID
	})

	for i, ranking := range updatedRankings {
		ranking.Position = i + 1

		if before, exists := rankingsBeforeUpdate[ranking.SalespersonID]; exists && before.Position > 0 {
			ranking.PositionChange = before.Position - ranking.Position
			ranking.PreviousPosition = before.Position
		}
	}
}

// TriggerManualSync inicia manualmente uma atualização do ranking.
// Retorna false quando já existe uma atualização em andamento.
func (s *SalespersonRankingService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de vendedores já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de vendedores")
	go func() {
		if err := s.UpdateSalespersonRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de vendedores")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SalespersonRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
