package protocol

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/tradewire/protocol/pkg/errs"
	"github.com/tradewire/protocol/pkg/log"
)

// ErrNoSigner is returned by State.Signer when the session was constructed
// without a keyfile. It is a state error, distinct from protocol errors: the
// session simply cannot sign.
var ErrNoSigner = errs.New("no signer configured for this session")

// State is the process-lifetime session state shared by every in-flight
// protocol operation. It owns the signer behind an asynchronous lock:
// acquisition is a context-aware suspension point, so an operation waiting
// for the signer never blocks a worker thread.
//
// State is a shared handle; operations receive it by pointer and must reach
// the signer only through the guarded accessor.
type State struct {
	lock   *semaphore.Weighted
	signer *Signer
	logger log.Logger
}

// NewState constructs session state. keyfilePath may be empty, in which case
// the session has no signer and Signer returns ErrNoSigner; a non-empty path
// must name a loadable keyfile or construction fails.
func NewState(keyfilePath string, logger log.Logger) (*State, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	state := &State{
		lock:   semaphore.NewWeighted(1),
		logger: logger.NewSystem("state"),
	}

	if keyfilePath != "" {
		keyfile, err := LoadKeyfile(keyfilePath)
		if err != nil {
			return nil, err
		}
		signer, err := NewSigner(keyfile)
		if err != nil {
			return nil, err
		}
		state.signer = signer
		state.logger.Info("signer initialized", "keyfile", keyfilePath)
	} else {
		state.logger.Warn("session state created without a signer")
	}

	return state, nil
}

// Signer acquires the state lock and returns the signer together with a
// release function. The caller must invoke release exactly once, and must
// keep the critical section to state mutation only; cryptographic work
// belongs before the acquisition.
//
// Fails with ErrNoSigner when no signer is configured, and with a lock error
// when ctx is cancelled or expires while waiting.
func (s *State) Signer(ctx context.Context) (*Signer, func(), error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return nil, nil, errs.Wrap(err, "state lock unavailable")
	}
	if s.signer == nil {
		s.lock.Release(1)
		return nil, nil, ErrNoSigner
	}
	return s.signer, func() { s.lock.Release(1) }, nil
}

// Logger exposes the session logger for operations that want to correlate
// their logs with the session.
func (s *State) Logger() log.Logger {
	return s.logger
}
