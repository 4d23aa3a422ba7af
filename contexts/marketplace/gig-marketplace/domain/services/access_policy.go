package services

import (
	"strings"

	"talentia/contexts/marketplace/gig-marketplace/domain/entities"
	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"
)

type Operation string

const (
	OperationPostGig          Operation = "post_gig"
	OperationListMyGigs       Operation = "list_my_gigs"
	OperationApply            Operation = "apply"
	OperationApprove          Operation = "approve"
	OperationListApplications Operation = "list_applications"
	OperationCreateContract   Operation = "create_contract"
	OperationRelease          Operation = "release"
	OperationGetContract      Operation = "get_contract"
	OperationSendMessage      Operation = "send_message"
	OperationGetConversation  Operation = "get_conversation"
)

// Resource names the parties that own the entity an operation targets.
// Role-only operations leave it empty.
type Resource struct {
	CompanyID string
	StudentID string
}

// Authorize is the single authorization predicate for every ledger and
// conversation operation. It only looks at (caller role, caller id, owners)
// and never at entity status.
func Authorize(operation Operation, caller entities.Caller, resource Resource) error {
	if strings.TrimSpace(caller.UserID) == "" {
		return domainerrors.ErrForbidden
	}

	var allowed bool
	switch operation {
	case OperationPostGig, OperationListMyGigs:
		allowed = caller.Role == entities.RoleCompany
	case OperationApply:
		allowed = caller.Role == entities.RoleStudent
	case OperationApprove, OperationListApplications, OperationCreateContract, OperationRelease:
		allowed = canManageGig(caller, resource.CompanyID)
	case OperationGetContract, OperationSendMessage, OperationGetConversation:
		allowed = canParticipate(caller, resource)
	}
	if !allowed {
		return domainerrors.ErrForbidden
	}
	return nil
}

// PreAuthorize rejects callers whose role can never pass Authorize for the
// operation, before any entity is loaded. A student asking to approve gets
// Forbidden even for an application id that does not exist.
func PreAuthorize(operation Operation, caller entities.Caller) error {
	if strings.TrimSpace(caller.UserID) == "" {
		return domainerrors.ErrForbidden
	}
	switch operation {
	case OperationPostGig, OperationListMyGigs:
		if caller.Role != entities.RoleCompany {
			return domainerrors.ErrForbidden
		}
	case OperationApply:
		if caller.Role != entities.RoleStudent {
			return domainerrors.ErrForbidden
		}
	case OperationApprove, OperationListApplications, OperationCreateContract, OperationRelease:
		if caller.Role != entities.RoleCompany && !caller.IsSuperAdmin() {
			return domainerrors.ErrForbidden
		}
	}
	return nil
}

// canManageGig holds for the owning company and for super-admins. Students
// never manage gigs, whatever ids they present.
func canManageGig(caller entities.Caller, ownerID string) bool {
	if caller.IsSuperAdmin() {
		return true
	}
	return caller.Role == entities.RoleCompany && ownerID != "" && caller.UserID == ownerID
}

func canParticipate(caller entities.Caller, resource Resource) bool {
	if caller.IsSuperAdmin() {
		return true
	}
	if resource.CompanyID != "" && caller.UserID == resource.CompanyID {
		return true
	}
	return resource.StudentID != "" && caller.UserID == resource.StudentID
}
