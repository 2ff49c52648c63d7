package constant

const (
	// Token type values carried in the "typ" claim.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// AuthScheme is the expected Authorization header scheme.
	AuthScheme = "Bearer"

	// Context keys set by the auth middleware.
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)
