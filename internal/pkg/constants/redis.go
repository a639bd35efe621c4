package constants

// Redis key formats
const (
	KeyRevokedToken = "session:revoked:%s" // Format: session:revoked:{jti}
	KeyOAuthState   = "oauth:state:%s"     // Format: oauth:state:{state}
	KeyDriverStats  = "driver:stats:%s"    // Format: driver:stats:{driver_id}
)
