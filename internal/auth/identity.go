// Package auth verifies bearer credentials and carries the resulting
// identity through a request's context.
package auth

import (
	"context"

	"github.com/syrineTissaoui/recalammation/internal/models"
)

// Identity is the verified subject of one request. It is derived fresh
// from the credential on every call and never cached across requests.
type Identity struct {
	SubjectID string
	Role      models.Role
	Email     string
}

type ctxKey struct{}

// WithIdentity returns a child context carrying id for the rest of the
// request.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFrom extracts the request identity, if one was established.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
