package models

// App identifies which client app a session belongs to
type App string

const (
	AppDriver    App = "driver"
	AppPassenger App = "passenger"
)

// Valid reports whether a is a known app
func (a App) Valid() bool {
	return a == AppDriver || a == AppPassenger
}

// Role maps the app onto the role carried in the session token
func (a App) Role() string {
	if a == AppDriver {
		return RoleDriver
	}
	return RolePassenger
}

// SignUpRequest creates an email account with its profile
type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	App         App    `json:"app"`
}

// SignInRequest authenticates an email account for one of the apps
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	App      App    `json:"app"`
}

// AuthResponse is returned after a successful sign up / sign in
type AuthResponse struct {
	Token     string   `json:"token"`
	UserID    string   `json:"user_id"`
	Role      string   `json:"role"`
	ExpiresAt int64    `json:"expires_at"`
	Profile   *Profile `json:"profile,omitempty"`
}

// Session describes the caller of an authenticated request
type Session struct {
	UserID        string         `json:"user_id"`
	Email         string         `json:"email"`
	Role          string         `json:"role"`
	App           App            `json:"app"`
	Greeting      string         `json:"greeting"`
	Profile       *Profile       `json:"profile,omitempty"`
	DriverProfile *DriverProfile `json:"driver_profile,omitempty"`
}

// TokenClaims is what a validated session token carries
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	App       App
	TokenID   string
	ExpiresAt int64
}

// OAuthState is stored in redis between redirect and callback
type OAuthState struct {
	Provider   string `json:"provider"`
	App        App    `json:"app"`
	RedirectTo string `json:"redirect_to"`
}

// OAuthUser is the identity returned by a provider's userinfo endpoint
type OAuthUser struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
