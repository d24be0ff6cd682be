package models

import (
	"time"

	"gorm.io/gorm"

	"gu-notepro/internal/core/domain"
)

// Staff represents the staff table (the official directory)
type Staff struct {
	ID          string `gorm:"primaryKey;size:40" json:"id"`
	Name        string `gorm:"size:120;not null" json:"name"`
	Designation string `gorm:"size:160" json:"designation"`
	Department  string `gorm:"size:120;index" json:"department"`
	Role        string `gorm:"size:20;default:'STAFF'" json:"role"`
	Password    string `gorm:"size:255" json:"-"`
	Email       string `gorm:"size:120" json:"email,omitempty"`
	Phone       string `gorm:"size:40" json:"phone,omitempty"`
	Photo       string `gorm:"type:mediumtext" json:"photo,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// ToDomain converts the row to a domain Staff
func (s *Staff) ToDomain() *domain.Staff {
	return &domain.Staff{
		ID:          s.ID,
		Name:        s.Name,
		Designation: s.Designation,
		Department:  s.Department,
		Role:        domain.Role(s.Role),
		Password:    s.Password,
		Email:       s.Email,
		Phone:       s.Phone,
		Photo:       s.Photo,
	}
}

// StaffFromDomain converts a domain Staff to a row
func StaffFromDomain(s *domain.Staff) *Staff {
	return &Staff{
		ID:          s.ID,
		Name:        s.Name,
		Designation: s.Designation,
		Department:  s.Department,
		Role:        string(s.Role),
		Password:    s.Password,
		Email:       s.Email,
		Phone:       s.Phone,
		Photo:       s.Photo,
	}
}

// Note represents the notes table. The row is the full denormalized
// document: creator, current handler, history and attachments are stored
// as JSON snapshot columns rather than foreign keys, so the archival
// record survives later edits to the staff directory.
type Note struct {
	ID             string                 `gorm:"primaryKey;size:48" json:"id"`
	Subject        string                 `gorm:"size:255;not null" json:"subject"`
	Content        string                 `gorm:"type:longtext" json:"content"`
	ReferenceNo    string                 `gorm:"column:reference_no;size:64;index" json:"referenceNo"`
	Status         string                 `gorm:"size:20;index" json:"status"`
	DateInitiated  time.Time              `gorm:"column:date_initiated" json:"dateInitiated"`
	Creator        domain.StaffSnapshot   `gorm:"serializer:json" json:"creator"`
	CurrentHandler domain.StaffSnapshot   `gorm:"column:current_handler;serializer:json" json:"currentHandler"`
	History        []domain.WorkflowEntry `gorm:"serializer:json;type:longtext" json:"history"`
	Attachments    []domain.Attachment    `gorm:"serializer:json;type:longtext" json:"attachments"`
}

func (Note) TableName() string {
	return "notes"
}

// ToDomain converts the row to a domain NoteSheet
func (n *Note) ToDomain() *domain.NoteSheet {
	return &domain.NoteSheet{
		ID:             n.ID,
		Subject:        n.Subject,
		Content:        n.Content,
		ReferenceNo:    n.ReferenceNo,
		DateInitiated:  n.DateInitiated,
		Status:         domain.NoteStatus(n.Status),
		Creator:        n.Creator,
		CurrentHandler: n.CurrentHandler,
		History:        n.History,
		Attachments:    n.Attachments,
	}
}

// NoteFromDomain converts a domain NoteSheet to a row
func NoteFromDomain(n *domain.NoteSheet) *Note {
	return &Note{
		ID:             n.ID,
		Subject:        n.Subject,
		Content:        n.Content,
		ReferenceNo:    n.ReferenceNo,
		DateInitiated:  n.DateInitiated,
		Status:         string(n.Status),
		Creator:        n.Creator,
		CurrentHandler: n.CurrentHandler,
		History:        n.History,
		Attachments:    n.Attachments,
	}
}

// Department represents the departments table; the name string is the id
type Department struct {
	Name string `gorm:"primaryKey;size:120" json:"name"`
}

func (Department) TableName() string {
	return "departments"
}

// Setting represents the settings table (single row under id "main")
type Setting struct {
	ID             string `gorm:"primaryKey;size:20" json:"id"`
	UniversityName string `gorm:"size:160" json:"university_name"`
	Logo           string `gorm:"type:mediumtext" json:"logo,omitempty"`
}

func (Setting) TableName() string {
	return "settings"
}

// RefSequence backs the per-department-per-year reference number counter.
// LastNo starts at 999 so the first issued suffix is 1000 (always 4 digits).
type RefSequence struct {
	DeptCode string `gorm:"primaryKey;size:10"`
	Year     int    `gorm:"primaryKey"`
	LastNo   int    `gorm:"not null"`
}

func (RefSequence) TableName() string {
	return "ref_sequences"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	StaffID   string     `gorm:"size:40;index;not null" json:"staff_id"`
	TokenHash string     `gorm:"size:64;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// AutoMigrate creates all registry tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Staff{},
		&Department{},
		&Note{},
		&Setting{},
		&RefSequence{},
		&RefreshToken{},
	)
}
