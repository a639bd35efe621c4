package constants

// Echo context keys set by the session middleware
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
	CtxApp      = "app"
	CtxClaims   = "claims"
)
