// Package invoker wraps bound operation calls with the uniform retry
// policy. Every attempt performs a real network call: idempotency is a
// property of the specific remote operation, not something this layer can
// guarantee.
package invoker

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/magenta-aps/sd-connector/internal/pkg/infrastructure/soap"
	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

const (
	defaultInitialInterval = 1 * time.Second
	defaultMaxAttempts     = 7
)

// OperationSource resolves canonical operation names to bound operations.
// Satisfied by the registry.
type OperationSource interface {
	Lookup(name string) (soap.BoundOperation, error)
}

type Invoker struct {
	source  OperationSource
	session *soap.Session

	initialInterval time.Duration
	maxAttempts     uint
}

type Option func(*Invoker)

// WithRetryWait overrides the initial retry delay. Used by tests to run
// the full retry schedule in compressed time.
func WithRetryWait(initial time.Duration) Option {
	return func(iv *Invoker) {
		iv.initialInterval = initial
	}
}

func WithMaxAttempts(attempts uint) Option {
	return func(iv *Invoker) {
		iv.maxAttempts = attempts
	}
}

func New(source OperationSource, session *soap.Session, options ...Option) *Invoker {
	iv := &Invoker{
		source:          source,
		session:         session,
		initialInterval: defaultInitialInterval,
		maxAttempts:     defaultMaxAttempts,
	}

	for _, option := range options {
		option(iv)
	}

	return iv
}

// Call invokes a bound operation with the given field set. Failed attempts
// are retried with exponential backoff until the attempt budget runs out,
// at which point the final error is returned to the caller unchanged. A
// lookup miss is returned immediately: there is nothing to retry when the
// operation was never bound.
func (iv *Invoker) Call(ctx context.Context, name string, fields params.Fields) (*soap.Response, error) {
	op, err := iv.source.Lookup(name)
	if err != nil {
		return nil, err
	}

	requestEnvelope, err := soap.EncodeRequest(op, fields)
	if err != nil {
		return nil, err
	}

	log := logging.GetFromContext(ctx)

	attempt := func() (*soap.Response, error) {
		body, err := iv.session.Call(ctx, op, requestEnvelope)
		if err != nil {
			return nil, err
		}
		return soap.DecodeResponse(body)
	}

	return backoff.Retry(ctx, attempt,
		backoff.WithBackOff(iv.newBackOff()),
		backoff.WithMaxTries(iv.maxAttempts),
		backoff.WithNotify(func(err error, delay time.Duration) {
			log.Warn("retrying operation",
				"operation", name,
				"delay", delay.String(),
				"err", err.Error(),
			)
		}),
	)
}

func (iv *Invoker) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = iv.initialInterval
	b.Multiplier = 2
	// keep the schedule deterministic, delays must never decrease
	b.RandomizationFactor = 0
	return b
}
