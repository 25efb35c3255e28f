// Package archive guarda cópias dos relatórios exportados fora do caminho da requisição.
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const QueueSize = 100

type Job struct {
	Key         string
	ContentType string
	Body        []byte
}

type Uploader interface {
	Upload(ctx context.Context, job Job) error
}

// Key monta relatorios/<yyyy>/<mm>/<uuid>.<ext> no horário informado.
func Key(at time.Time, ext string) string {
	return fmt.Sprintf("relatorios/%04d/%02d/%s.%s", at.Year(), int(at.Month()), uuid.NewString(), ext)
}

type Dispatcher struct {
	uploader Uploader
	timeout  time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Job
	done   chan struct{}
}

func NewDispatcher(uploader Uploader) *Dispatcher {
	d := &Dispatcher{
		uploader: uploader,
		timeout:  30 * time.Second,
		queue:    make(chan Job, QueueSize),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for job := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.uploader.Upload(ctx, job); err != nil {
			slog.Error("report archive failed", "key", job.Key, "error", err)
		}
		cancel()
	}
}

// Dispatch nunca bloqueia; com a fila cheia o job é descartado.
func (d *Dispatcher) Dispatch(job Job) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("report archive closed, dropping job", "key", job.Key)
		return false
	}

	select {
	case d.queue <- job:
		return true
	default:
		slog.Warn("report archive queue full, dropping job", "key", job.Key)
		return false
	}
}

// Close para de aceitar jobs e espera a fila esvaziar ou ctx expirar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
