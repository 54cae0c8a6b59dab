package identity

import (
	"context"
	"time"
)

// demoAddress is the well-known address handed out by the simulated provider.
const demoAddress = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

// Simulated is the in-process provider used by the demo. It answers after a
// short artificial delay and can be configured to fail, which exercises the
// guest fallback path.
type Simulated struct {
	claims  Claims
	address string
	delay   time.Duration
	fail    bool
}

type SimulatedOption func(*Simulated)

func WithClaims(claims Claims) SimulatedOption {
	return func(s *Simulated) { s.claims = claims }
}

func WithDelay(delay time.Duration) SimulatedOption {
	return func(s *Simulated) { s.delay = delay }
}

// WithFailure makes every call report ErrUnavailable.
func WithFailure() SimulatedOption {
	return func(s *Simulated) { s.fail = true }
}

func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		claims:  Claims{Name: "Anonymous"},
		address: demoAddress,
		delay:   50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Simulated) Connect(ctx context.Context) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	if s.fail {
		return ErrUnavailable
	}

	return nil
}

func (s *Simulated) UserInfo(ctx context.Context) (Claims, error) {
	if s.fail {
		return Claims{}, ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return Claims{}, ErrUnavailable
	}

	return s.claims, nil
}

func (s *Simulated) AccountAddress(ctx context.Context) (string, error) {
	if s.fail {
		return "", ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return "", ErrUnavailable
	}

	return s.address, nil
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ErrUnavailable
	case <-timer.C:
		return nil
	}
}
