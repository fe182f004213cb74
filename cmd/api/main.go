package main

import (
	"context"
	"os"
	"path"
	"runtime"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-performance-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/api"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/callquality"
	"github.com/vfg2006/sales-performance-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-performance-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-performance-api/internal/usecases/ranking"
	"github.com/vfg2006/sales-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.WithFields(logrus.Fields{
		"log_level": logrus.GetLevel().String(),
		"timezone":  cfg.App.Location.String(),
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	salesRepo := repository.NewSalesRecordRepository(pgConn)
	budgetRepo := repository.NewBudgetRecordRepository(pgConn)
	callRepo := repository.NewCallRecordRepository(pgConn)
	rankingRepo := repository.NewSalespersonRankingRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)

	clock := metrics.SystemClock{Location: cfg.App.Location}

	authenticator := authenticating.NewService(userRepo, cfg)
	reporter := reporting.NewService(cfg, salesRepo, budgetRepo, clock)
	exporter := exporting.NewService(reporter)
	callAnalyzer := callquality.NewService(callRepo)
	rankingService := ranking.NewSalespersonRankingService(rankingRepo, clock)

	sheetsIntegrator := sheets.New(cfg, sheetsclient.NewClient(cfg))

	sheetsSyncService := scheduler.NewSheetsSyncService(sheetsIntegrator, snapshotRepo, cfg)
	salespersonRankingService := scheduler.NewSalespersonRankingService(salesRepo, budgetRepo, rankingRepo, clock, cfg)

	if err := sheetsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização das planilhas")
	} else {
		logrus.Info("Agendador de sincronização das planilhas iniciado com sucesso")
	}

	if err := salespersonRankingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de vendedores")
	} else {
		logrus.Info("Agendador do ranking de vendedores iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:           reporter,
		Exporter:           exporter,
		CallAnalyzer:       callAnalyzer,
		Ranking:            rankingService,
		Authenticator:      authenticator,
		SheetsSync:         sheetsSyncService,
		SalespersonRanking: salespersonRankingService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource garante que o .env ao lado do main seja encontrado em execução local
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do main")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
