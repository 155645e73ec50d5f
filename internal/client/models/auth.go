package models

// TokenPair carries the access/refresh credentials issued by the backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Credentials is the transient login input. Never persisted.
type Credentials struct {
	Identifier string
	Password   string
}

// RegisterData is the new-account form posted to /auth/register/.
type RegisterData struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	Bio       string `json:"bio,omitempty"`
	Location  string `json:"location,omitempty"`
}

// AuthOutcome discriminates the result of an auth operation.
type AuthOutcome int

const (
	AuthSuccess AuthOutcome = iota
	AuthRequiresVerification
	AuthFailure
)

// AuthResult is the normalized outcome of login/register/reset operations.
// Exactly one branch is populated per call:
//
//   - AuthSuccess:              User (and tokens already stored in the session)
//   - AuthRequiresVerification: Email of the unverified account
//   - AuthFailure:              Message with a human-readable reason
type AuthResult struct {
	Outcome AuthOutcome
	User    *User
	Email   string
	Message string
}

func Success(u *User) AuthResult {
	return AuthResult{Outcome: AuthSuccess, User: u}
}

func RequiresVerification(email string) AuthResult {
	return AuthResult{Outcome: AuthRequiresVerification, Email: email}
}

func Failure(message string) AuthResult {
	return AuthResult{Outcome: AuthFailure, Message: message}
}
