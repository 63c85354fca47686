package worker

// Jobs that exhaust their retries land in a per-queue Redis list
// ("dlq:<cola>") so an operator can inspect them and re-enqueue
// once the underlying problem (SMTP caído, disco lleno) is fixed.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqPrefix = "dlq:"

// DeadJob is the envelope stored in the dead letter list.
type DeadJob struct {
	Cola     string          `json:"cola"`
	Tipo     string          `json:"tipo"`
	Payload  json.RawMessage `json:"payload"`
	Motivo   string          `json:"motivo"`
	Intentos int             `json:"intentos"`
	FalloEn  time.Time       `json:"fallo_en"`
}

func pushDeadLetter(ctx context.Context, rdb *redis.Client, queue string, job Job, motivo string, intentos int) {
	dead := DeadJob{
		Cola:     queue,
		Tipo:     job.Type,
		Payload:  job.Payload,
		Motivo:   motivo,
		Intentos: intentos,
		FalloEn:  time.Now().UTC(),
	}
	data, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Str("cola", queue).Msg("dlq: no se pudo serializar el job")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("cola", queue).Msg("dlq: no se pudo encolar")
		return
	}
	log.Warn().
		Str("cola", queue).
		Str("tipo", job.Type).
		Str("motivo", motivo).
		Int("intentos", intentos).
		Msg("dlq: job descartado tras agotar reintentos")
}

// DeadLetterCount reports how many jobs wait in a queue's dead letter list.
func DeadLetterCount(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, dlqPrefix+queue).Result()
}

// RequeueDeadLetter moves the oldest dead job back onto its original queue.
// Returns redis.Nil when the dead letter list is empty.
func RequeueDeadLetter(ctx context.Context, rdb *redis.Client, queue string) error {
	raw, err := rdb.RPop(ctx, dlqPrefix+queue).Result()
	if err != nil {
		return err
	}
	var dead DeadJob
	if err := json.Unmarshal([]byte(raw), &dead); err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: dead.Tipo, Payload: dead.Payload})
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}
