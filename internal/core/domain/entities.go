package domain

import "time"

// Role represents staff role in the system
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// NoteStatus represents the workflow status of a note sheet.
// DRAFT and COMPLETED are declared for schema compatibility but are
// never produced by any transition.
type NoteStatus string

const (
	StatusDraft     NoteStatus = "DRAFT"
	StatusPending   NoteStatus = "PENDING"
	StatusReturned  NoteStatus = "RETURNED"
	StatusApproved  NoteStatus = "APPROVED"
	StatusRejected  NoteStatus = "REJECTED"
	StatusCompleted NoteStatus = "COMPLETED"
)

// IsTerminal reports whether the status permits no further transitions.
func (s NoteStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// WorkflowAction represents an action taken on a note sheet
type WorkflowAction string

const (
	ActionInitiate WorkflowAction = "INITIATE"
	ActionForward  WorkflowAction = "FORWARD"
	ActionReturn   WorkflowAction = "RETURN"
	ActionApprove  WorkflowAction = "APPROVE"
	ActionReject   WorkflowAction = "REJECT"
)

// Staff represents a registered official in the directory
type Staff struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Role        Role   `json:"role"`
	Password    string `json:"-"` // Hashed, never serialized
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Photo       string `json:"photo,omitempty"` // Base64 encoded image
}

// StaffSnapshot is an immutable by-value copy of a Staff record, captured
// at transition time. History embeds snapshots rather than live references
// so that later edits to the directory never rewrite the archival record.
type StaffSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
}

// Snapshot captures the staff identity fields by value.
func (s *Staff) Snapshot() StaffSnapshot {
	return StaffSnapshot{
		ID:          s.ID,
		Name:        s.Name,
		Designation: s.Designation,
		Department:  s.Department,
	}
}

// Attachment is a file enclosed with a note sheet. Attachments are
// append-only: once persisted on a note they are never removed.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	Data string `json:"data"` // Base64 payload
}

// NotificationFlags records the cosmetic dispatch outcome for an entry
type NotificationFlags struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// WorkflowEntry is one immutable audit record of a custody transfer or decision
type WorkflowEntry struct {
	ID            string            `json:"id"`
	From          StaffSnapshot     `json:"from"`
	To            StaffSnapshot     `json:"to"`
	Timestamp     time.Time         `json:"timestamp"`
	Remark        string            `json:"remark"`
	Action        WorkflowAction    `json:"action"`
	Notifications NotificationFlags `json:"notificationsSent"`
}

// NoteSheet is the central document entity. Creator, current handler and
// history carry StaffSnapshot values, never foreign keys.
type NoteSheet struct {
	ID             string          `json:"id"`
	Subject        string          `json:"subject"`
	Content        string          `json:"content"`
	ReferenceNo    string          `json:"referenceNo"`
	DateInitiated  time.Time       `json:"dateInitiated"`
	Status         NoteStatus      `json:"status"`
	Creator        StaffSnapshot   `json:"creator"`
	CurrentHandler StaffSnapshot   `json:"currentHandler"`
	History        []WorkflowEntry `json:"history"`
	Attachments    []Attachment    `json:"attachments"`
}

// LastEntry returns the most recent workflow entry, or nil for an empty
// history (which no persisted note should ever have).
func (n *NoteSheet) LastEntry() *WorkflowEntry {
	if len(n.History) == 0 {
		return nil
	}
	return &n.History[len(n.History)-1]
}

// Department is a named organisational unit; the name is the identity.
type Department struct {
	Name string
}

// Settings holds institution-level branding stored under a fixed id
type Settings struct {
	ID             string `json:"id"`
	UniversityName string `json:"universityName"`
	Logo           string `json:"logo,omitempty"` // Base64 encoded logo
}

// SettingsID is the fixed id of the single settings record.
const SettingsID = "main"

// UniversityName is the institution the registry serves.
const UniversityName = "Gondwana University, Gadchiroli"

// UniversityCode prefixes every reference number.
const UniversityCode = "GU"
