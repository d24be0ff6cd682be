package services

import (
	"context"
	"sync"
	"time"
)

// dispatchStages are the canned status lines the confirmation sequence
// cycles through while "delivering".
var dispatchStages = []string{
	"Establishing Secure Handshake...",
	"Encrypting Statutory Content...",
	"Connecting to SMS Gateway...",
	"SMTP Protocol Synchronized...",
	"Dispatched Successfully.",
}

// DispatchState is a point-in-time snapshot of the running sequence
type DispatchState struct {
	Active        bool   `json:"active"`
	Recipient     string `json:"recipient"`
	Action        string `json:"action"`
	EmailProgress int    `json:"email_progress"`
	SMSProgress   int    `json:"sms_progress"`
	Stage         string `json:"stage"`
}

// DispatchService runs the cosmetic post-transition confirmation
// sequence: two progress counters tick toward 100%, five canned stage
// strings cycle on their own tick, and the whole thing self-terminates
// after a fixed wall-clock duration. It carries no delivery guarantee
// and never touches note state; transitions are committed before the
// sequence starts.
type DispatchService struct {
	mu     sync.Mutex
	state  DispatchState
	cancel context.CancelFunc

	progressTick time.Duration
	stageTick    time.Duration
	duration     time.Duration
}

// NewDispatchService creates a dispatch service with the standard timings
func NewDispatchService() *DispatchService {
	return &DispatchService{
		progressTick: 30 * time.Millisecond,
		stageTick:    800 * time.Millisecond,
		duration:     3500 * time.Millisecond,
	}
}

// Dispatch starts the confirmation sequence for a recipient and action.
// A sequence already in flight is cancelled first. onComplete, if set,
// runs when the sequence finishes on its own (not when superseded).
func (s *DispatchService) Dispatch(recipient, action string, onComplete func()) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.state = DispatchState{
		Active:    true,
		Recipient: recipient,
		Action:    action,
		Stage:     dispatchStages[0],
	}
	progressTick, stageTick, duration := s.progressTick, s.stageTick, s.duration
	s.mu.Unlock()

	go s.run(ctx, progressTick, stageTick, duration, onComplete)
}

func (s *DispatchService) run(ctx context.Context, progressTick, stageTick, duration time.Duration, onComplete func()) {
	progress := time.NewTicker(progressTick)
	defer progress.Stop()
	stages := time.NewTicker(stageTick)
	defer stages.Stop()
	done := time.NewTimer(duration)
	defer done.Stop()

	step := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-progress.C:
			s.mu.Lock()
			if s.state.EmailProgress < 100 {
				s.state.EmailProgress = min(s.state.EmailProgress+2, 100)
			}
			if s.state.SMSProgress < 100 {
				s.state.SMSProgress = min(s.state.SMSProgress+3, 100)
			}
			s.mu.Unlock()
		case <-stages.C:
			step++
			s.mu.Lock()
			s.state.Stage = dispatchStages[min(step, len(dispatchStages)-1)]
			s.mu.Unlock()
		case <-done.C:
			if ctx.Err() != nil {
				// Superseded between the timer firing and this branch
				// running; the replacement owns the state now.
				return
			}
			s.mu.Lock()
			s.state.Active = false
			s.state.Stage = dispatchStages[len(dispatchStages)-1]
			s.cancel = nil
			s.mu.Unlock()
			if onComplete != nil {
				onComplete()
			}
			return
		}
	}
}

// State returns a snapshot of the current sequence for UI polling
func (s *DispatchService) State() DispatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stop cancels any in-flight sequence
func (s *DispatchService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.state.Active = false
}
