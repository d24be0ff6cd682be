package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"gu-notepro/internal/adapters/persistence/models"
	"gu-notepro/internal/core/domain"
)

// memStaffRepo is an in-memory StaffRepository for tests
type memStaffRepo struct {
	staff map[string]*domain.Staff
}

func newMemStaffRepo(members ...*domain.Staff) *memStaffRepo {
	r := &memStaffRepo{staff: make(map[string]*domain.Staff)}
	for _, m := range members {
		copied := *m
		r.staff[m.ID] = &copied
	}
	return r
}

func (r *memStaffRepo) GetAll(ctx context.Context) ([]*domain.Staff, error) {
	ids := make([]string, 0, len(r.staff))
	for id := range r.staff {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.Staff, 0, len(ids))
	for _, id := range ids {
		copied := *r.staff[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memStaffRepo) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	member, ok := r.staff[id]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *memStaffRepo) Put(ctx context.Context, staff *domain.Staff) error {
	copied := *staff
	r.staff[staff.ID] = &copied
	return nil
}

func (r *memStaffRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.staff[id]; !ok {
		return domain.ErrStaffNotFound
	}
	delete(r.staff, id)
	return nil
}

func (r *memStaffRepo) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var n int64
	for _, m := range r.staff {
		if m.Department == department {
			n++
		}
	}
	return n, nil
}

// memNoteRepo is an in-memory NoteRepository preserving insertion order
type memNoteRepo struct {
	order []string
	notes map[string]*domain.NoteSheet
	fail  error // next Put returns this when set
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{notes: make(map[string]*domain.NoteSheet)}
}

func (r *memNoteRepo) GetAll(ctx context.Context) ([]*domain.NoteSheet, error) {
	out := make([]*domain.NoteSheet, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.notes[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memNoteRepo) GetByID(ctx context.Context, id string) (*domain.NoteSheet, error) {
	note, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	copied := *note
	return &copied, nil
}

func (r *memNoteRepo) Put(ctx context.Context, note *domain.NoteSheet) error {
	if r.fail != nil {
		err := r.fail
		r.fail = nil
		return err
	}
	if _, ok := r.notes[note.ID]; !ok {
		r.order = append(r.order, note.ID)
	}
	copied := *note
	r.notes[note.ID] = &copied
	return nil
}

func (r *memNoteRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// memDeptRepo is an in-memory DepartmentRepository
type memDeptRepo struct {
	names []string
}

func (r *memDeptRepo) GetAll(ctx context.Context) ([]string, error) {
	return append([]string{}, r.names...), nil
}

func (r *memDeptRepo) Put(ctx context.Context, name string) error {
	for _, existing := range r.names {
		if existing == name {
			return nil
		}
	}
	r.names = append(r.names, name)
	return nil
}

func (r *memDeptRepo) Delete(ctx context.Context, name string) error {
	for i, existing := range r.names {
		if existing == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			return nil
		}
	}
	return domain.ErrDepartmentNotFound
}

func (r *memDeptRepo) ReplaceAll(ctx context.Context, names []string) error {
	r.names = append([]string{}, names...)
	return nil
}

// memSettingsRepo is an in-memory SettingsRepository
type memSettingsRepo struct {
	settings domain.Settings
}

func newMemSettingsRepo() *memSettingsRepo {
	return &memSettingsRepo{settings: domain.Settings{
		ID:             domain.SettingsID,
		UniversityName: domain.UniversityName,
	}}
}

func (r *memSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	copied := r.settings
	return &copied, nil
}

func (r *memSettingsRepo) Put(ctx context.Context, settings *domain.Settings) error {
	r.settings = *settings
	return nil
}

// memSeqRepo hands out monotonic sequence numbers per code/year key
type memSeqRepo struct {
	last map[string]int
}

func newMemSeqRepo() *memSeqRepo {
	return &memSeqRepo{last: make(map[string]int)}
}

func (r *memSeqRepo) Next(ctx context.Context, deptCode string, year int) (int, error) {
	key := fmt.Sprintf("%s/%d", deptCode, year)
	if r.last[key] == 0 {
		r.last[key] = 999
	}
	r.last[key]++
	return r.last[key], nil
}

// memRefreshTokenRepo is an in-memory RefreshTokenRepository for tests
type memRefreshTokenRepo struct {
	tokens []*models.RefreshToken
	nextID uint
}

func newMemRefreshTokenRepo() *memRefreshTokenRepo {
	return &memRefreshTokenRepo{}
}

func (r *memRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	r.nextID++
	token.ID = r.nextID
	token.CreatedAt = time.Now()
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *memRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash && t.RevokedAt == nil {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRefreshTokenRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	now := time.Now()
	for _, t := range r.tokens {
		if t.TokenHash == tokenHash {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r *memRefreshTokenRepo) RevokeAllByStaffID(ctx context.Context, staffID string) error {
	now := time.Now()
	for _, t := range r.tokens {
		if t.StaffID == staffID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r *memRefreshTokenRepo) DeleteExpired(ctx context.Context) error {
	kept := r.tokens[:0]
	for _, t := range r.tokens {
		if !t.IsExpired() {
			kept = append(kept, t)
		}
	}
	r.tokens = kept
	return nil
}

func (r *memRefreshTokenRepo) active(staffID string) int {
	n := 0
	for _, t := range r.tokens {
		if t.StaffID == staffID && t.RevokedAt == nil {
			n++
		}
	}
	return n
}
