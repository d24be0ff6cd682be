package services

import (
	"context"
	"log"
	"time"

	"gu-notepro/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long a note may sit with one custodian before the
// morning sweep nudges them.
const staleAfter = 3 * 24 * time.Hour

// ReminderService runs a daily sweep over active notes and fires the
// cosmetic dispatch sequence at custodians sitting on stale files. Like
// the dispatch stub itself it carries no delivery guarantee.
type ReminderService struct {
	noteRepo         repositories.NoteRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	dispatch         *DispatchService
	cron             *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(noteRepo repositories.NoteRepository, refreshTokenRepo repositories.RefreshTokenRepository, dispatch *DispatchService) *ReminderService {
	return &ReminderService{
		noteRepo:         noteRepo,
		refreshTokenRepo: refreshTokenRepo,
		dispatch:         dispatch,
		cron:             cron.New(),
	}
}

// Start schedules the daily sweep (08:30) and the nightly session
// cleanup (03:00)
func (s *ReminderService) Start() {
	s.cron.AddFunc("30 8 * * *", func() {
		if err := s.Sweep(context.Background()); err != nil {
			log.Printf("⚠️ Reminder sweep failed: %v", err)
		}
	})
	s.cron.AddFunc("0 3 * * *", func() {
		if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
			log.Printf("⚠️ Expired session cleanup failed: %v", err)
		}
	})
	s.cron.Start()
	log.Println("✅ Reminder sweep scheduled (daily 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
}

// Sweep nudges custodians of active notes idle past the threshold
func (s *ReminderService) Sweep(ctx context.Context) error {
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-staleAfter)
	for _, note := range notes {
		if note.Status.IsTerminal() {
			continue
		}
		last := note.LastEntry()
		if last == nil || last.Timestamp.After(cutoff) {
			continue
		}
		log.Printf("🔔 Pending reminder: %s held by %s since %s",
			note.ReferenceNo, note.CurrentHandler.Name, last.Timestamp.Format("2006-01-02"))
		if s.dispatch != nil {
			s.dispatch.Dispatch(note.CurrentHandler.Name, "Reminder", nil)
		}
	}
	return nil
}
