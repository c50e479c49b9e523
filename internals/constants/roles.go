package constants

import "fmt"

// Role names carried in the JWT role claim.
const (
	RoleStudent     = "student"
	RoleEvaluator   = "evaluator"
	RoleCoordinator = "coordinator"
	RoleAdmin       = "admin"
)

// Forbidden message templates per gate.
const (
	ErrOnlyCoordinatorsCanAccess = "Only coordinators or admins may access %s."
	ErrOnlyEvaluatorsCanAccess   = "Only evaluators may access %s."
	ErrOnlyStudentsCanAccess     = "Only students may access %s."
	ErrOnlyAdminsCanAccess       = "Only admins may access %s."
)

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorEvaluator(feature string) string {
	return fmt.Sprintf(ErrOnlyEvaluatorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================

var (
	AllowedRoles     = []string{RoleStudent, RoleEvaluator, RoleCoordinator, RoleAdmin}
	CoordinatorAndUp = []string{RoleCoordinator, RoleAdmin}
	EvaluatorAndUp   = []string{RoleEvaluator, RoleCoordinator, RoleAdmin}
	StudentOnly      = []string{RoleStudent}
)

func ValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
