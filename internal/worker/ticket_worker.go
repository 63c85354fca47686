package worker

// ticket_worker.go
// Processes ticket jobs from QueueTicket: renders the sale PDF and, when the
// customer left an email, chains an email job with the attachment.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/infra"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
)

// TicketJobPayload is the job envelope sent to QueueTicket.
type TicketJobPayload struct {
	VentaID      string  `json:"venta_id"`
	ClienteEmail *string `json:"cliente_email,omitempty"`
}

type TicketWorker struct {
	ventaRepo      repository.OrdenVentaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewTicketWorker(ventaRepo repository.OrdenVentaRepository, dispatcher *Dispatcher, pdfStoragePath string) *TicketWorker {
	return &TicketWorker{
		ventaRepo:      ventaRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

func (w *TicketWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload TicketJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads never recover; log and drop instead of retrying.
		log.Error().Err(err).Msg("ticket_worker: invalid payload")
		return nil
	}

	ventaID, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("ticket_worker: invalid venta_id")
		return nil
	}

	venta, err := w.ventaRepo.FindByID(ctx, ventaID)
	if err != nil {
		return fmt.Errorf("ticket_worker: venta %s: %w", payload.VentaID, err)
	}

	pdfPath, err := infra.GenerateTicketPDF(venta, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("ticket_worker: pdf: %w", err)
	}
	log.Info().Str("pdf", pdfPath).Str("venta_id", payload.VentaID).Msg("ticket_worker: PDF generated")

	if payload.ClienteEmail != nil && *payload.ClienteEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.ClienteEmail,
			Subject: "Ticket de venta — POS Finanzas",
			Body:    fmt.Sprintf("Adjunto encontrarás tu ticket de compra.\nTotal: $%s", venta.TotalVenta.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			return fmt.Errorf("ticket_worker: enqueue email: %w", err)
		}
		log.Info().Str("email", *payload.ClienteEmail).Msg("ticket_worker: email job enqueued")
	}
	return nil
}
