package domain

import (
	"fmt"
	"time"
)

// Role is the access-level tag used for route gating.
type Role string

const (
	RolePM       Role = "PM"
	RoleEmployee Role = "EMPLOYEE"
)

// ParseRole validates a role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePM, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// Classification is the seniority tier of an employee.
type Classification string

const (
	ClassificationJuniorDeveloper Classification = "JUNIOR_DEVELOPER"
	ClassificationMidDeveloper    Classification = "MID_DEVELOPER"
	ClassificationSeniorDeveloper Classification = "SENIOR_DEVELOPER"
)

// ParseClassification validates a classification string against the closed set.
func ParseClassification(s string) (Classification, error) {
	switch Classification(s) {
	case ClassificationJuniorDeveloper, ClassificationMidDeveloper, ClassificationSeniorDeveloper:
		return Classification(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidClassification, s)
}

// Employee models a member of the workforce. PasswordHash is never serialised.
type Employee struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Username       string         `json:"username"`
	PasswordHash   string         `json:"-"`
	Role           Role           `json:"role"`
	Classification Classification `json:"classification"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Principal is the resolved identity attached to an authenticated request.
// It is derived from the employee record per request and never persisted.
type Principal struct {
	EmployeeID string
	Username   string
	Role       Role
}

// HasAnyRole reports whether the principal's role is in the given set.
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
