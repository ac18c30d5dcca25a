// Package fetch runs remote operations on behalf of a page and tracks one
// busy flag and one user-facing error message for them.
//
// RunOne awaits a single operation. RunMany starts every operation at once,
// waits for all of them to settle and succeeds only if each one did.
// RunBatch reports a per-operation outcome instead and lets the caller
// choose whether partial success is acceptable. No operation is ever
// cancelled by the orchestrator; the HTTP client timeout bounds each call.
package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bod/internal/client/gateway"
	"github.com/dmitrijs2005/bod/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	FallbackOneMessage  = "Operation failed"
	FallbackManyMessage = "Failed to load data"
)

// Op is one remote operation. Its result is the unwrapped payload.
type Op func(ctx context.Context) (any, error)

// Policy decides how RunBatch judges partial failure.
type Policy int

const (
	// AllOrNothing fails the batch when any operation fails.
	AllOrNothing Policy = iota
	// AllowPartial fails the batch only when every operation fails.
	AllowPartial
)

// OpError names the failing operation of a batch by its input position.
type OpError struct {
	Index int
	Err   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("operation %d: %v", e.Index, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Outcome is the settled result of one operation.
type Outcome struct {
	Value any
	Err   error
}

// BatchResult holds one Outcome per operation, in input order.
type BatchResult struct {
	Outcomes []Outcome
}

// Failed returns the indexes of failed operations.
func (r BatchResult) Failed() []int {
	var idx []int
	for i, o := range r.Outcomes {
		if o.Err != nil {
			idx = append(idx, i)
		}
	}
	return idx
}

// Values returns the payloads in input order; failed slots are nil.
func (r BatchResult) Values() []any {
	out := make([]any, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = o.Value
	}
	return out
}

// Orchestrator is safe for concurrent use. Busy stays true while any run is
// in flight.
type Orchestrator struct {
	limit int
	log   logging.Logger

	mu       sync.RWMutex
	inFlight int
	errMsg   string
}

// New returns an orchestrator running at most limit operations of a batch
// at once; limit <= 0 means no limit.
func New(limit int, log logging.Logger) *Orchestrator {
	if log == nil {
		log = logging.Discard()
	}
	return &Orchestrator{limit: limit, log: log}
}

// Busy reports whether a run is in progress.
func (o *Orchestrator) Busy() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.inFlight > 0
}

// Error returns the message of the last failed run, or "".
func (o *Orchestrator) Error() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.errMsg
}

func (o *Orchestrator) begin() {
	o.mu.Lock()
	o.inFlight++
	o.errMsg = ""
	o.mu.Unlock()
}

func (o *Orchestrator) end(msg string) {
	o.mu.Lock()
	o.inFlight--
	if msg != "" {
		o.errMsg = msg
	}
	o.mu.Unlock()
}

// Message picks the user-facing text for err: the server-supplied message,
// then the error's own text, then fallback.
func Message(err error, fallback string) string {
	if msg, ok := gateway.ServerMessage(err); ok {
		return msg
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// RunOne awaits op and returns its payload. On failure the message is
// stored and the original error returned.
func (o *Orchestrator) RunOne(ctx context.Context, op Op) (v any, err error) {
	o.begin()
	msg := ""
	defer func() { o.end(msg) }()

	v, err = op(ctx)
	if err != nil {
		msg = Message(err, FallbackOneMessage)
		o.log.Warn(ctx, "operation failed", "error", err)
		return nil, err
	}
	return v, nil
}

// RunMany runs ops concurrently and returns their payloads in input order
// if all succeed. Otherwise it returns an *OpError for the first failing
// operation in input order, after every operation has settled.
func (o *Orchestrator) RunMany(ctx context.Context, ops ...Op) ([]any, error) {
	res, err := o.RunBatch(ctx, AllOrNothing, ops...)
	if err != nil {
		return nil, err
	}
	return res.Values(), nil
}

// RunBatch runs ops concurrently and reports every outcome. The error is
// non-nil when policy judges the batch failed.
func (o *Orchestrator) RunBatch(ctx context.Context, policy Policy, ops ...Op) (BatchResult, error) {
	o.begin()
	msg := ""
	defer func() { o.end(msg) }()

	res := BatchResult{Outcomes: make([]Outcome, len(ops))}

	var g errgroup.Group
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}
	for i, op := range ops {
		g.Go(func() error {
			v, err := op(ctx)
			res.Outcomes[i] = Outcome{Value: v, Err: err}
			// outcomes carry the failure; the group must not short-circuit
			return nil
		})
	}
	_ = g.Wait()

	failed := res.Failed()
	if len(failed) == 0 {
		return res, nil
	}

	first := &OpError{Index: failed[0], Err: res.Outcomes[failed[0]].Err}
	msg = Message(first.Err, FallbackManyMessage)
	o.log.Warn(ctx, "batch operation failed", "failed", len(failed), "total", len(ops), "error", first)

	if policy == AllowPartial && len(failed) < len(ops) {
		return res, nil
	}
	return res, first
}

// Call adapts a gateway call to an Op that yields Response.Data.
func Call[T any](fn func(ctx context.Context) (gateway.Response[T], error)) Op {
	return func(ctx context.Context) (any, error) {
		resp, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		return resp.Data, nil
	}
}

// One is a typed RunOne.
func One[T any](ctx context.Context, o *Orchestrator, op Op) (T, error) {
	var zero T
	v, err := o.RunOne(ctx, op)
	if err != nil {
		return zero, err
	}
	return cast[T](v)
}

// Value returns the payload of outcome i as T, or its error.
func Value[T any](r BatchResult, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(r.Outcomes) {
		return zero, fmt.Errorf("outcome %d out of range", i)
	}
	if err := r.Outcomes[i].Err; err != nil {
		return zero, err
	}
	return cast[T](r.Outcomes[i].Value)
}

// Nth returns element i of a RunMany result as T.
func Nth[T any](values []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(values) {
		return zero, fmt.Errorf("value %d out of range", i)
	}
	return cast[T](values[i])
}

func cast[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected payload type %T, want %T", v, zero)
	}
	return t, nil
}
