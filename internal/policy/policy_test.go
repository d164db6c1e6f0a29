package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrineTissaoui/recalammation/internal/auth"
	"github.com/syrineTissaoui/recalammation/internal/models"
)

var (
	alice = auth.Identity{SubjectID: "alice", Role: models.RoleSubmitter}
	bob   = auth.Identity{SubjectID: "bob", Role: models.RoleSubmitter}
	carol = auth.Identity{SubjectID: "carol", Role: models.RoleReviewer}

	aliceTicket = &models.Ticket{ID: "t-1", OwnerID: "alice"}
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		id      auth.Identity
		action  Action
		target  *models.Ticket
		allowed bool
		scope   Scope
	}{
		{"submitter creates", alice, CreateTicket, nil, true, ScopeNone},
		{"reviewer creates", carol, CreateTicket, nil, true, ScopeNone},
		{"submitter lists own", alice, ListTickets, nil, true, ScopeOwned},
		{"reviewer lists all", carol, ListTickets, nil, true, ScopeAll},
		{"owner views", alice, ViewTicket, aliceTicket, true, ScopeNone},
		{"other submitter views", bob, ViewTicket, aliceTicket, false, ScopeNone},
		{"reviewer views any", carol, ViewTicket, aliceTicket, true, ScopeNone},
		{"submitter transitions own", alice, TransitionStatus, aliceTicket, false, ScopeNone},
		{"other submitter transitions", bob, TransitionStatus, aliceTicket, false, ScopeNone},
		{"reviewer transitions", carol, TransitionStatus, aliceTicket, true, ScopeNone},
		{"submitter notes own", alice, AppendNote, aliceTicket, false, ScopeNone},
		{"reviewer notes", carol, AppendNote, aliceTicket, true, ScopeNone},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := Authorize(c.id, c.action, c.target)
			assert.Equal(t, c.allowed, d.Allowed)
			assert.Equal(t, c.scope, d.Scope)
		})
	}
}

func TestAuthorizeUnknownActionDenied(t *testing.T) {
	d := Authorize(carol, Action(99), nil)
	assert.False(t, d.Allowed)
}
