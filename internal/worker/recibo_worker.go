package worker

// recibo_worker.go
// Renders the PDF receipt for a sale after the transaction committed.
// Best effort: a failed render never touches the sale itself.

import (
	"context"
	"encoding/json"

	"github.com/Javier-GarciaP/sunbody/internal/infra"
	"github.com/Javier-GarciaP/sunbody/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ReciboWorker struct {
	ventaRepo   repository.VentaRepository
	storagePath string
}

func NewReciboWorker(ventaRepo repository.VentaRepository, storagePath string) *ReciboWorker {
	return &ReciboWorker{ventaRepo: ventaRepo, storagePath: storagePath}
}

func (w *ReciboWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}
	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("recibo_worker: invalid venta_id")
		return
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		// The sale may have been deleted between enqueue and processing.
		log.Warn().Str("venta_id", payload.VentaID).Msg("recibo_worker: venta not found")
		return
	}

	path, err := infra.GenerateReciboPDF(venta, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("recibo_worker: pdf generation failed")
		return
	}
	log.Info().Str("venta_id", payload.VentaID).Str("path", path).Msg("recibo_worker: recibo generated")
}
