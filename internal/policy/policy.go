// Package policy is the single decision point for who may do what to a
// ticket. It is pure: no I/O, no state, just the identity, the intended
// action, and (for per-ticket actions) the target.
package policy

import (
	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/models"
)

// Action is something an identity intends to do.
type Action int

const (
	CreateTicket Action = iota
	ListTickets
	ViewTicket
	TransitionStatus
	AppendNote
)

// Scope is the visibility predicate attached to an allowed list decision.
type Scope int

const (
	// ScopeNone applies to non-read decisions.
	ScopeNone Scope = iota
	// ScopeAll means every ticket in the store.
	ScopeAll
	// ScopeOwned means only tickets whose OwnerID equals the caller.
	ScopeOwned
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Scope   Scope
}

func allow(s Scope) Decision { return Decision{Allowed: true, Scope: s} }

var deny = Decision{}

// Authorize evaluates the rules in order; the first match wins. target may
// be nil for CreateTicket and ListTickets and must be the concrete ticket
// for the per-ticket actions.
func Authorize(id auth.Identity, action Action, target *models.Ticket) Decision {
	switch action {
	case CreateTicket:
		// Any authenticated identity may file a ticket; ownership is
		// forced to the caller elsewhere, never taken from input.
		return allow(ScopeNone)

	case ListTickets:
		if id.Role == models.RoleReviewer {
			return allow(ScopeAll)
		}
		return allow(ScopeOwned)

	case ViewTicket:
		if id.Role == models.RoleReviewer {
			return allow(ScopeNone)
		}
		if target != nil && target.OwnerID == id.SubjectID {
			return allow(ScopeNone)
		}
		return deny

	case TransitionStatus, AppendNote:
		// Reviewers only; submitters may never mutate, own ticket or not.
		if id.Role == models.RoleReviewer {
			return allow(ScopeNone)
		}
		return deny
	}
	return deny
}
