package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gu-notepro/internal/adapters/persistence/repositories"
	"gu-notepro/internal/core/domain"
)

// deptCodes maps frequently used units to their statutory three-letter
// codes. Unmapped departments fall back to a derived code.
var deptCodes = map[string]string{
	"Administration":      "ADM",
	"Registrar Office":    "REG",
	"Finance Section":     "FIN",
	"Examination Section": "EXM",
	"Academic Section":    "ACAD",
}

var deptPrefix = regexp.MustCompile(`(?i)^Department of\s+`)

// DeptCode returns the reference code for a department: the fixed table
// entry if present, otherwise the first three letters of the name after
// stripping a leading "Department of", uppercased.
func DeptCode(department string) string {
	if code, ok := deptCodes[department]; ok {
		return code
	}
	stripped := deptPrefix.ReplaceAllString(department, "")
	if len(stripped) > 3 {
		stripped = stripped[:3]
	}
	return strings.ToUpper(stripped)
}

// ReferenceIssuer produces statutory reference numbers of the form
// GU/<DEPT>/<YEAR>/<SEQ>. The suffix comes from a persisted monotonic
// per-department-per-year counter rather than a random draw, so issued
// numbers are unique.
type ReferenceIssuer struct {
	seqRepo repositories.SequenceRepository
	now     func() time.Time
}

// NewReferenceIssuer creates a new reference number issuer
func NewReferenceIssuer(seqRepo repositories.SequenceRepository) *ReferenceIssuer {
	return &ReferenceIssuer{seqRepo: seqRepo, now: time.Now}
}

// Issue allocates the next reference number for the creator's department
func (g *ReferenceIssuer) Issue(ctx context.Context, department string) (string, error) {
	code := DeptCode(department)
	year := g.now().Year()
	seq, err := g.seqRepo.Next(ctx, code, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%d/%d", domain.UniversityCode, code, year, seq), nil
}
