package worker

// export_worker.go
// Processes dataset export jobs from QueueExport: flattens the requested sale
// range and ships it to the ML prediction service for retraining.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/dto"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/infra"
)

// ExportJobPayload is the job envelope sent to QueueExport.
type ExportJobPayload struct {
	Desde string `json:"desde"` // YYYY-MM-DD
	Hasta string `json:"hasta"`
}

// DatasetExporter produces the flattened sale rows for a date range. The
// analytics service implements it.
type DatasetExporter interface {
	ExportarVentas(ctx context.Context, desde, hasta time.Time) (*dto.VentaExportResponse, error)
}

type ExportWorker struct {
	exporter DatasetExporter
	ml       *infra.MLClient
}

func NewExportWorker(exporter DatasetExporter, ml *infra.MLClient) *ExportWorker {
	return &ExportWorker{exporter: exporter, ml: ml}
}

func (w *ExportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ExportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("export_worker: invalid payload")
		return nil
	}

	desde, err := time.Parse("2006-01-02", payload.Desde)
	if err != nil {
		log.Error().Str("desde", payload.Desde).Msg("export_worker: invalid desde")
		return nil
	}
	hasta, err := time.Parse("2006-01-02", payload.Hasta)
	if err != nil {
		log.Error().Str("hasta", payload.Hasta).Msg("export_worker: invalid hasta")
		return nil
	}

	dataset, err := w.exporter.ExportarVentas(ctx, desde, hasta.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("export_worker: export: %w", err)
	}

	if err := w.ml.EnviarDataset(ctx, dataset); err != nil {
		return fmt.Errorf("export_worker: ship dataset: %w", err)
	}
	log.Info().
		Int("filas", len(dataset.Filas)).
		Str("desde", payload.Desde).
		Str("hasta", payload.Hasta).
		Msg("export_worker: dataset shipped")
	return nil
}
