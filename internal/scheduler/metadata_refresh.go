package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-pulse-api/internal/config"
	"github.com/vfg2006/retail-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/retail-pulse-api/pkg/utils"
)

// MetadataRefreshConfig representa a configuração do agendador de metadados
type MetadataRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// MetadataRefreshService re-aquece periodicamente os caches de metadados
// (limites de datas e valores distintos de filtro), para que a primeira
// renderização do painel após a expiração não pague o custo da consulta
type MetadataRefreshService struct {
	scheduler            *gocron.Scheduler
	config               MetadataRefreshConfig
	reporter             reporting.Reporter
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
}

// NewMetadataRefreshService cria uma nova instância do serviço de
// atualização de metadados
func NewMetadataRefreshService(
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MetadataRefreshService {
	refreshConfig := MetadataRefreshConfig{
		CronSchedule:   appConfig.MetadataRefresh.CronSchedule,
		RefreshEnabled: appConfig.MetadataRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de metadados carregada")

	return &MetadataRefreshService{
		scheduler:      scheduler,
		config:         refreshConfig,
		reporter:       reporter,
		refreshRunning: false,
	}
}

// Start inicia o agendador
func (s *MetadataRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Atualização periódica de metadados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de metadados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshMetadata(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de metadados: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto da aplicação for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de metadados")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshMetadata executa um ciclo de atualização, ignorando disparos
// sobrepostos
func (s *MetadataRefreshService) refreshMetadata(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de metadados já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	startTime := time.Now()
	s.lastRefreshStartedAt = startTime

	logrus.WithField("run_id", runID).Info("Iniciando atualização dos metadados de filtro")

	if err := s.reporter.RefreshMetadata(ctx); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao atualizar metadados de filtro")
		return
	}

	s.lastRefreshEndedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"duration": time.Since(startTime).String(),
	}).Info("Atualização de metadados concluída")
}

// TriggerManualRefresh inicia manualmente um ciclo de atualização. O ciclo
// roda em segundo plano e sobrevive à requisição que o disparou.
func (s *MetadataRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Atualização de metadados já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando atualização manual de metadados")
	go s.refreshMetadata(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *MetadataRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshEndedAt,
	}
}
