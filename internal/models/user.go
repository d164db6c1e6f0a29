package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of roles the service knows about. Anything else
// on the wire is a validation error, never a silent default.
type Role string

const (
	// RoleSubmitter files tickets and sees only their own.
	RoleSubmitter Role = "AGENT"
	// RoleReviewer sees every ticket, transitions status and adds notes.
	RoleReviewer Role = "CADRE"
)

// ParseRole maps a wire value to a Role. The empty string defaults to
// RoleSubmitter (self-registration); unknown values are rejected.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleSubmitter:
		return RoleSubmitter, nil
	case RoleReviewer:
		return RoleReviewer, nil
	case "":
		return RoleSubmitter, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
