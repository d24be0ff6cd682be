package services

import (
	"testing"
	"time"
)

func newTestDispatch() *DispatchService {
	return &DispatchService{
		progressTick: time.Millisecond,
		stageTick:    5 * time.Millisecond,
		duration:     40 * time.Millisecond,
	}
}

func TestDispatchRunsToCompletion(t *testing.T) {
	svc := newTestDispatch()
	done := make(chan struct{})
	svc.Dispatch("Dr. Anil Hirekhan", "FORWARD", func() { close(done) })

	state := svc.State()
	if !state.Active || state.Recipient != "Dr. Anil Hirekhan" || state.Action != "FORWARD" {
		t.Errorf("initial state = %+v", state)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sequence never completed")
	}

	state = svc.State()
	if state.Active {
		t.Error("state still active after completion")
	}
	if state.Stage != "Dispatched Successfully." {
		t.Errorf("final stage = %q", state.Stage)
	}
}

func TestDispatchProgressCapsAtHundred(t *testing.T) {
	svc := newTestDispatch()
	done := make(chan struct{})
	svc.Dispatch("VC", "APPROVE", func() { close(done) })
	<-done

	state := svc.State()
	if state.EmailProgress > 100 || state.SMSProgress > 100 {
		t.Errorf("progress overflow: email=%d sms=%d", state.EmailProgress, state.SMSProgress)
	}
	if state.EmailProgress == 0 && state.SMSProgress == 0 {
		t.Error("progress never advanced")
	}
}

func TestDispatchSupersedesInFlightSequence(t *testing.T) {
	svc := newTestDispatch()
	svc.duration = time.Second

	firstDone := make(chan struct{})
	svc.Dispatch("first", "FORWARD", func() { close(firstDone) })

	secondDone := make(chan struct{})
	svc.duration = 40 * time.Millisecond
	svc.Dispatch("second", "RETURN", func() { close(secondDone) })

	select {
	case <-secondDone:
	case <-time.After(2 * time.Second):
		t.Fatal("second sequence never completed")
	}

	// The superseded sequence must not fire its completion callback.
	select {
	case <-firstDone:
		t.Error("cancelled sequence ran to completion")
	case <-time.After(20 * time.Millisecond):
	}

	if state := svc.State(); state.Recipient != "second" {
		t.Errorf("state belongs to %q, want the superseding sequence", state.Recipient)
	}
}

func TestStopDeactivates(t *testing.T) {
	svc := newTestDispatch()
	svc.duration = time.Second
	svc.Dispatch("someone", "FORWARD", nil)
	svc.Stop()

	if state := svc.State(); state.Active {
		t.Error("state active after Stop")
	}
}
