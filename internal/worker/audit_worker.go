package worker

// audit_worker.go
// Runs the consistency check for one customer after a money mutation.
// Findings are logged, never auto-corrected: the full report endpoint is the
// operator's view of the same data.

import (
	"context"
	"encoding/json"

	"github.com/Javier-GarciaP/sunbody/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AuditoriaWorker struct {
	svc service.AuditoriaService
}

func NewAuditoriaWorker(svc service.AuditoriaService) *AuditoriaWorker {
	return &AuditoriaWorker{svc: svc}
}

func (w *AuditoriaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AuditoriaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("audit_worker: invalid payload")
		return
	}
	clienteID, err := uuid.Parse(payload.ClienteID)
	if err != nil {
		log.Error().Str("cliente_id", payload.ClienteID).Msg("audit_worker: invalid cliente_id")
		return
	}

	issues, err := w.svc.RunCliente(ctx, clienteID)
	if err != nil {
		log.Error().Err(err).Str("cliente_id", payload.ClienteID).Msg("audit_worker: check failed")
		return
	}
	if len(issues) == 0 {
		log.Debug().Str("cliente_id", payload.ClienteID).Msg("audit_worker: consistent")
		return
	}
	for _, issue := range issues {
		log.Warn().
			Str("cliente_id", payload.ClienteID).
			Str("tipo", issue.Tipo).
			Str("entity_id", issue.EntityID).
			Int64("actual", issue.Actual).
			Int64("esperado", issue.Esperado).
			Msg("audit_worker: inconsistency detected")
	}
}
