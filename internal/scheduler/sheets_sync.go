// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/pkg/utils"
)

var ErrEmptySalesSheet = errors.New("planilha de vendas sem registros válidos")

// SheetsSyncConfig representa a configuração do agendador de carga das planilhas
type SheetsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SheetsSyncService baixa as planilhas de vendas, metas e ligações e substitui os registros no banco
type SheetsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetsSyncConfig
	sheetsService       sheets.SheetsIntegrator
	snapshotRepo        repository.SnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncResult
	lastError           error
}

func NewSheetsSyncService(
	sheetsService sheets.SheetsIntegrator,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *SheetsSyncService {
	syncConfig := SheetsSyncConfig{
		CronSchedule: appConfig.SheetsSync.CronSchedule,
		SyncEnabled:  appConfig.SheetsSync.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de carga das planilhas carregada")

	return &SheetsSyncService{
		scheduler:     gocron.NewScheduler(location),
		config:        syncConfig,
		sheetsService: sheetsService,
		snapshotRepo:  snapshotRepo,
	}
}

// Start inicia o agendador
func (s *SheetsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Carga das planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de carga das planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Sync(ctx); err != nil {
			logrus.WithError(err).Error("sheets-sync: erro na carga das planilhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar carga das planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de carga das planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// Sync executa uma carga completa. Nada é gravado se alguma planilha falhar.
func (s *SheetsSyncService) Sync(ctx context.Context) (*domain.SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("sheets-sync: carga já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	result, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if err == nil {
		s.lastResult = result
	}
	s.syncMutex.Unlock()

	return result, err
}

func (s *SheetsSyncService) sync(ctx context.Context) (*domain.SyncResult, error) {
	syncID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o id da carga: %w", err)
	}

	result := &domain.SyncResult{SyncID: syncID, StartedAt: time.Now()}
	entry := logrus.WithField("sync_id", syncID)
	entry.Info("sheets-sync: iniciando carga das planilhas")

	download, err := s.download(ctx)
	if err != nil {
		entry.WithError(err).Error("sheets-sync: erro ao baixar as planilhas")
		return nil, err
	}

	if len(download.Sales) == 0 {
		entry.Warn("sheets-sync: planilha de vendas vazia, mantendo os dados atuais")
		return nil, ErrEmptySalesSheet
	}

	if err := s.snapshotRepo.Replace(ctx, syncID, download); err != nil {
		entry.WithError(err).Error("sheets-sync: erro ao gravar a carga, dados atuais mantidos")
		return nil, err
	}

	result.SalesRecords = len(download.Sales)
	result.BudgetRecords = len(download.Budget)
	result.CallRecords = len(download.Calls)
	result.FinishedAt = time.Now()

	entry.WithFields(logrus.Fields{
		"records_sales":  result.SalesRecords,
		"records_budget": result.BudgetRecords,
		"records_calls":  result.CallRecords,
		"duration":       result.FinishedAt.Sub(result.StartedAt).String(),
	}).Info("sheets-sync: carga concluída")

	return result, nil
}

// download baixa as três planilhas em paralelo
func (s *SheetsSyncService) download(ctx context.Context) (*domain.SheetsSnapshot, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		out      = &domain.SheetsSnapshot{}
	)

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		records, err := s.sheetsService.GetSalesRecords(ctx)
		if err != nil {
			fail(err)
			return
		}
		out.Sales = records
	}()

	go func() {
		defer wg.Done()
		records, err := s.sheetsService.GetBudgetRecords(ctx)
		if err != nil {
			fail(err)
			return
		}
		out.Budget = records
	}()

	go func() {
		defer wg.Done()
		records, err := s.sheetsService.GetCallRecords(ctx)
		if err != nil {
			fail(err)
			return
		}
		out.Calls = records
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// TriggerManualSync inicia manualmente uma carga das planilhas.
// Retorna false quando já existe uma carga em andamento.
func (s *SheetsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("sheets-sync: carga já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("sheets-sync: iniciando carga manual das planilhas")
	go func() {
		if _, err := s.Sync(context.Background()); err != nil {
			logrus.WithError(err).Error("sheets-sync: erro na carga manual das planilhas")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SheetsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}
	return status
}
