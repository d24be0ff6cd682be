package services

import (
	"context"
	"strings"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"
)

// Tray identifies a derived registry view relative to a viewing user
type Tray string

const (
	TrayIn      Tray = "IN_TRAY"
	TrayOut     Tray = "OUT_TRAY"
	TrayAllHits Tray = "ALL_HITS"
)

// TrayStats reports the per-tray counts for a user
type TrayStats struct {
	InTray  int `json:"inTray"`
	OutTray int `json:"outTray"`
	AllHits int `json:"allHits"`
}

// relevantTo reports whether the note has any relationship to the user:
// current custody, authorship, or a historical touch on either side.
func relevantTo(n *domain.NoteSheet, userID string) bool {
	if n.CurrentHandler.ID == userID || n.Creator.ID == userID {
		return true
	}
	for _, h := range n.History {
		if h.From.ID == userID || h.To.ID == userID {
			return true
		}
	}
	return false
}

// inTray: on the user's desk and still active
func inTray(n *domain.NoteSheet, userID string) bool {
	return n.CurrentHandler.ID == userID && !n.Status.IsTerminal()
}

// outTray: touched by the user, currently elsewhere, still active.
// Together with inTray this does NOT partition the relevant set: a note
// touched only as a recipient with no outgoing entry, or a terminal
// note, falls in neither tray.
func outTray(n *domain.NoteSheet, userID string) bool {
	if n.CurrentHandler.ID == userID || n.Status.IsTerminal() {
		return false
	}
	for _, h := range n.History {
		if h.From.ID == userID {
			return true
		}
	}
	return false
}

// matchesSearch applies the case-insensitive substring overlay across
// subject, reference number, creator name and current handler name.
func matchesSearch(n *domain.NoteSheet, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(n.Subject), term) ||
		strings.Contains(strings.ToLower(n.ReferenceNo), term) ||
		strings.Contains(strings.ToLower(n.Creator.Name), term) ||
		strings.Contains(strings.ToLower(n.CurrentHandler.Name), term)
}

// Classify filters the full document set down to one tray view for a
// user, preserving the input order, then applies the search overlay.
func Classify(notes []*domain.NoteSheet, userID string, tray Tray, searchTerm string) []*domain.NoteSheet {
	searchTerm = strings.TrimSpace(searchTerm)
	out := make([]*domain.NoteSheet, 0, len(notes))
	for _, n := range notes {
		if !relevantTo(n, userID) {
			continue
		}
		switch tray {
		case TrayIn:
			if !inTray(n, userID) {
				continue
			}
		case TrayOut:
			if !outTray(n, userID) {
				continue
			}
		}
		if !matchesSearch(n, searchTerm) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// CountTrays computes the per-tray stats from the same predicates the
// list views use, so counts never drift from the materialized lists.
// In-tray and out-tray counts ignore the relevance filter on purpose:
// every note a user holds or has touched already satisfies it.
func CountTrays(notes []*domain.NoteSheet, userID string) TrayStats {
	var stats TrayStats
	for _, n := range notes {
		if inTray(n, userID) {
			stats.InTray++
		}
		if outTray(n, userID) {
			stats.OutTray++
		}
		if relevantTo(n, userID) {
			stats.AllHits++
		}
	}
	return stats
}

// TrayService derives registry views over the full note collection
type TrayService struct {
	noteRepo repositories.NoteRepository
}

// NewTrayService creates a new tray service
func NewTrayService(noteRepo repositories.NoteRepository) *TrayService {
	return &TrayService{noteRepo: noteRepo}
}

// List returns one tray view for a user, newest note first
func (s *TrayService) List(ctx context.Context, userID string, tray Tray, searchTerm string) ([]*domain.NoteSheet, error) {
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Classify(notes, userID, tray, searchTerm), nil
}

// Stats returns the tray counts for a user
func (s *TrayService) Stats(ctx context.Context, userID string) (*TrayStats, error) {
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := CountTrays(notes, userID)
	return &stats, nil
}

// RegistryOverview reports registry-wide per-status counts
type RegistryOverview struct {
	Pending  int `json:"pending"`
	Returned int `json:"returned"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// Overview returns the per-status counts over the whole registry
func (s *TrayService) Overview(ctx context.Context) (*RegistryOverview, error) {
	notes, err := s.noteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	overview := &RegistryOverview{Total: len(notes)}
	for _, n := range notes {
		switch n.Status {
		case domain.StatusPending:
			overview.Pending++
		case domain.StatusReturned:
			overview.Returned++
		case domain.StatusApproved:
			overview.Approved++
		case domain.StatusRejected:
			overview.Rejected++
		}
	}
	return overview, nil
}
