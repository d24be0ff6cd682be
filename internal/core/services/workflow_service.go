package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"

	"github.com/google/uuid"
)

// Default remark templates supplied when the acting user leaves the
// remark empty. RETURN and REJECT deliberately carry no template: an
// empty remark is recorded as such.
const (
	remarkInitiated = "Note sheet initiated."
	remarkForwarded = "Forwarded."
	remarkApproved  = "Approved."
)

// WorkflowService is the note sheet routing engine. Every transition
// either fully commits (new history entry + status + custodian,
// persisted) or does not happen at all: in-memory state is touched only
// after the store confirms the write.
type WorkflowService struct {
	noteRepo  repositories.NoteRepository
	staffRepo repositories.StaffRepository
	refIssuer *ReferenceIssuer
	dispatch  *DispatchService
	now       func() time.Time
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(
	noteRepo repositories.NoteRepository,
	staffRepo repositories.StaffRepository,
	refIssuer *ReferenceIssuer,
	dispatch *DispatchService,
) *WorkflowService {
	return &WorkflowService{
		noteRepo:  noteRepo,
		staffRepo: staffRepo,
		refIssuer: refIssuer,
		dispatch:  dispatch,
		now:       time.Now,
	}
}

// InitiateInput represents initiate input
type InitiateInput struct {
	Subject     string              `json:"subject"`
	Content     string              `json:"content"`
	RecipientID string              `json:"recipient_id"`
	Remark      string              `json:"remark,omitempty"`
	Attachments []domain.Attachment `json:"attachments,omitempty"`
}

// Initiate creates a new note sheet directly in PENDING custody of the
// chosen recipient, with an INITIATE entry at history[0].
func (s *WorkflowService) Initiate(ctx context.Context, actorID string, input *InitiateInput) (*domain.NoteSheet, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, fmt.Errorf("%w: subject", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content", domain.ErrValidation)
	}
	if input.RecipientID == "" {
		return nil, fmt.Errorf("%w: recipient", domain.ErrValidation)
	}

	actor, err := s.staffRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if input.RecipientID == actor.ID {
		return nil, domain.ErrSelfRecipient
	}
	recipient, err := s.staffRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	refNo, err := s.refIssuer.Issue(ctx, actor.Department)
	if err != nil {
		return nil, err
	}

	now := s.now()
	remark := input.Remark
	if remark == "" {
		remark = remarkInitiated
	}

	note := &domain.NoteSheet{
		ID:             "NS-" + uuid.NewString(),
		Subject:        strings.ToUpper(input.Subject),
		Content:        input.Content,
		ReferenceNo:    refNo,
		DateInitiated:  now,
		Status:         domain.StatusPending,
		Creator:        actor.Snapshot(),
		CurrentHandler: recipient.Snapshot(),
		Attachments:    append([]domain.Attachment{}, input.Attachments...),
		History: []domain.WorkflowEntry{{
			ID:            uuid.NewString(),
			From:          actor.Snapshot(),
			To:            recipient.Snapshot(),
			Timestamp:     now,
			Remark:        remark,
			Action:        domain.ActionInitiate,
			Notifications: domain.NotificationFlags{Email: true, SMS: true},
		}},
	}

	if err := s.noteRepo.Put(ctx, note); err != nil {
		return nil, err
	}

	if s.dispatch != nil {
		s.dispatch.Dispatch(recipient.Name, "Initiation", nil)
	}
	return note, nil
}

// ActionInput represents a workflow action against an existing note
type ActionInput struct {
	Action      domain.WorkflowAction `json:"action"`
	RecipientID string                `json:"recipient_id,omitempty"`
	Remark      string                `json:"remark,omitempty"`
	Attachments []domain.Attachment   `json:"attachments,omitempty"`
}

// Act applies FORWARD, RETURN, APPROVE or REJECT to a note. Terminal
// documents and non-custodian actors are refused here, at the engine
// boundary, not in the caller.
func (s *WorkflowService) Act(ctx context.Context, actorID, noteID string, input *ActionInput) (*domain.NoteSheet, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.Status.IsTerminal() {
		return nil, domain.ErrForbiddenTransition
	}
	if note.CurrentHandler.ID != actorID {
		return nil, domain.ErrNotCustodian
	}

	actor, err := s.staffRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	var (
		to        domain.StaffSnapshot
		newStatus domain.NoteStatus
		remark    = input.Remark
	)

	switch input.Action {
	case domain.ActionForward, domain.ActionReturn:
		if input.RecipientID == "" {
			return nil, fmt.Errorf("%w: recipient", domain.ErrValidation)
		}
		if input.RecipientID == actor.ID {
			return nil, domain.ErrSelfRecipient
		}
		recipient, err := s.staffRepo.GetByID(ctx, input.RecipientID)
		if err != nil {
			return nil, err
		}
		to = recipient.Snapshot()
		if input.Action == domain.ActionForward {
			newStatus = domain.StatusPending
			if remark == "" {
				remark = remarkForwarded
			}
		} else {
			newStatus = domain.StatusReturned
		}
	case domain.ActionApprove:
		// Decisions route the file back to its originator. The stored
		// snapshot is reused as-is to keep the archival identity intact.
		to = note.Creator
		newStatus = domain.StatusApproved
		if remark == "" {
			remark = remarkApproved
		}
	case domain.ActionReject:
		to = note.Creator
		newStatus = domain.StatusRejected
	default:
		return nil, fmt.Errorf("%w: action %q", domain.ErrValidation, input.Action)
	}

	updated := *note
	updated.Status = newStatus
	updated.CurrentHandler = to
	updated.Attachments = append(append([]domain.Attachment{}, note.Attachments...), input.Attachments...)
	updated.History = append(append([]domain.WorkflowEntry{}, note.History...), domain.WorkflowEntry{
		ID:            uuid.NewString(),
		From:          actor.Snapshot(),
		To:            to,
		Timestamp:     s.now(),
		Remark:        remark,
		Action:        input.Action,
		Notifications: domain.NotificationFlags{Email: true, SMS: true},
	})

	if err := s.noteRepo.Put(ctx, &updated); err != nil {
		return nil, err
	}

	if s.dispatch != nil {
		s.dispatch.Dispatch(to.Name, string(input.Action), nil)
	}
	return &updated, nil
}

// Get returns a single note sheet
func (s *WorkflowService) Get(ctx context.Context, noteID string) (*domain.NoteSheet, error) {
	return s.noteRepo.GetByID(ctx, noteID)
}
