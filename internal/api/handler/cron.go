package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/internal/scheduler"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSheetsSync         = "sheets-sync"
	CronJobTypeSalespersonRanking = "salesperson-ranking"
	CronJobTypeAll                = "all"
)

type manualTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SheetsSync         *scheduler.SheetsSyncService
	SalespersonRanking *scheduler.SalespersonRankingService
}

func (s CronJobServices) jobs() map[string]manualTrigger {
	jobs := map[string]manualTrigger{}
	if s.SheetsSync != nil {
		jobs[CronJobTypeSheetsSync] = s.SheetsSync
	}
	if s.SalespersonRanking != nil {
		jobs[CronJobTypeSalespersonRanking] = s.SalespersonRanking
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		jobs := services.jobs()

		if cronType == CronJobTypeAll {
			started := map[string]bool{}
			for name, job := range jobs {
				started[name] = job.TriggerManualSync()
			}
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron jobs disparadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, ok := jobs[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sheets-sync, salesperson-ranking, all", nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "A cron job já está em execução", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
