package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/flotilla/pkg/game"
	"github.com/cbodonnell/flotilla/pkg/log"
	"github.com/cbodonnell/flotilla/pkg/processor"
	"github.com/cbodonnell/flotilla/pkg/queue"
)

// Processor applies a single request.
type Processor interface {
	Process(ctx context.Context, req *processor.Request) (*processor.Result, error)
}

// Outcome pairs a request with what processing it produced.
type Outcome struct {
	Request *processor.Request
	Result  *processor.Result
	Err     error
}

type InstructionWorker struct {
	requestQueue queue.Queue
	processor    Processor
	interval     time.Duration
	outcomes     chan<- Outcome
}

type NewInstructionWorkerOptions struct {
	RequestQueue queue.Queue
	Processor    Processor
	Interval     time.Duration
	// Outcomes is optional and receives one value per processed request.
	Outcomes chan<- Outcome
}

// NewInstructionWorker creates a new InstructionWorker.
// The worker drains the request queue on every tick and processes the
// requests one at a time, in arrival order.
func NewInstructionWorker(opts NewInstructionWorkerOptions) *InstructionWorker {
	return &InstructionWorker{
		requestQueue: opts.RequestQueue,
		processor:    opts.Processor,
		interval:     opts.Interval,
		outcomes:     opts.Outcomes,
	}
}

func (w *InstructionWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.Drain(ctx); err != nil {
				log.Error("Failed to drain request queue: %v", err)
			}
		}
	}
}

// Drain processes every request currently in the queue.
func (w *InstructionWorker) Drain(ctx context.Context) error {
	items, err := w.requestQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read requests: %v", err)
	}

	for _, item := range items {
		req, ok := item.(*processor.Request)
		if !ok {
			log.Error("Unknown request type: %T", item)
			continue
		}
		w.handle(ctx, req)
	}

	return nil
}

func (w *InstructionWorker) handle(ctx context.Context, req *processor.Request) {
	result, err := w.processor.Process(ctx, req)
	switch {
	case err == nil:
		log.Debug("Accepted %s from %s", result.Instruction.Tag(), req.Caller)
	case game.IsRejection(err):
		log.Info("Rejected request from %s: %v", req.Caller, err)
	default:
		log.Error("Failed to process request from %s: %v", req.Caller, err)
	}

	if w.outcomes != nil {
		select {
		case w.outcomes <- Outcome{Request: req, Result: result, Err: err}:
		case <-ctx.Done():
		}
	}
}
