// Package scheduler agenda a varredura diária de sugestões de compra com
// robfig/cron. A cadência vem de SUGGEST_CRON (padrão: 09:00 todos os dias).
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/estoque-pro/estoque-api/internal/application/purchase"
	"github.com/estoque-pro/estoque-api/pkg/logger"
)

// Scheduler dispara a varredura de sugestões na cadência configurada.
type Scheduler struct {
	cron       *cron.Cron
	purchaseUC *purchase.UseCase
	log        *logger.Logger
}

// New constrói o agendador sem iniciá-lo.
func New(purchaseUC *purchase.UseCase, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		purchaseUC: purchaseUC,
		log:        log,
	}
}

// Start registra a varredura na expressão cron dada e inicia o agendador.
func (s *Scheduler) Start(cronExpr string) error {
	_, err := s.cron.AddFunc(cronExpr, s.runSuggestScan)
	if err != nil {
		return fmt.Errorf("agendar varredura de sugestões: %w", err)
	}
	s.cron.Start()
	s.log.Info().Str("cron", cronExpr).Msg("varredura de sugestões agendada")
	return nil
}

// Stop para o agendador e espera o job em curso terminar.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// runSuggestScan executa a varredura e loga o resultado. Falha não derruba o
// agendador: a próxima execução tenta de novo.
func (s *Scheduler) runSuggestScan() {
	suggestions, err := s.purchaseUC.Suggest(context.Background())
	if err != nil {
		s.log.Error().Err(err).Msg("varredura de sugestões falhou")
		return
	}
	s.log.Info().
		Int("low_stock", len(suggestions.LowStock)).
		Int("expiring_soon", len(suggestions.ExpiringSoon)).
		Msg("varredura de sugestões concluída")
}
