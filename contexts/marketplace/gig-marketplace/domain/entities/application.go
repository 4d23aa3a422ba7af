package entities

import (
	"strings"
	"time"

	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "APPLIED"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
)

type GigApplication struct {
	ApplicationID string
	GigID         string
	StudentID     string
	Proposal      string
	Status        ApplicationStatus
	AppliedAt     time.Time
	ApprovedAt    *time.Time
}

func NewGigApplication(
	applicationID string,
	gigID string,
	studentID string,
	proposal string,
	appliedAt time.Time,
) (GigApplication, error) {
	if strings.TrimSpace(applicationID) == "" ||
		strings.TrimSpace(gigID) == "" ||
		strings.TrimSpace(studentID) == "" {
		return GigApplication{}, domainerrors.ErrInvalidRequest
	}
	return GigApplication{
		ApplicationID: applicationID,
		GigID:         gigID,
		StudentID:     studentID,
		Proposal:      proposal,
		Status:        ApplicationStatusApplied,
		AppliedAt:     appliedAt.UTC(),
	}, nil
}

// ApplicationView is an application enriched with the applicant display name.
type ApplicationView struct {
	Application GigApplication
	StudentName string
}
