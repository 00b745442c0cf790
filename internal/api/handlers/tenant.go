package handlers

import "context"

type tenantKey struct{}

// WithTenant stores the authenticated tenant id for downstream handlers.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenantID)
}

// TenantFrom returns the tenant id placed in the context by the tenant
// middleware, or "" when the request was not tenant-scoped.
func TenantFrom(ctx context.Context) string {
	id, _ := ctx.Value(tenantKey{}).(string)
	return id
}
