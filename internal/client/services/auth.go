// Package services contains the application services behind the CLI: the
// auth flow controller, the tweet operations, and the third-party image and
// user-suggestion fetchers.
package services

import (
	"context"

	"github.com/maxh33/twitterclone-cli/internal/client/api"
	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/client/session"
	"github.com/maxh33/twitterclone-cli/internal/common"
	"github.com/maxh33/twitterclone-cli/internal/logging"
)

// AuthService orchestrates the named auth operations and normalizes their
// outcomes into AuthResult values. It is the only writer of the session
// store besides the gateway's refresh path.
//
// Contract:
//   - Restore: re-attach a persisted session on startup, no network call.
//   - Login / DemoLogin: authenticate and store tokens on success.
//   - Register, VerifyEmail, ResendVerification, ResetPassword,
//     ConfirmResetPassword: single POSTs; never touch the session.
//   - Refresh: explicit token refresh; invalid refresh token logs out.
//   - Logout: local cleanup always succeeds, server call is best-effort.
type AuthService interface {
	Restore(ctx context.Context) (bool, error)
	Login(ctx context.Context, identifier, password string) models.AuthResult
	DemoLogin(ctx context.Context) models.AuthResult
	Register(ctx context.Context, data models.RegisterData) models.AuthResult
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	VerifyEmail(ctx context.Context, uid, token string) models.AuthResult
	ResendVerification(ctx context.Context, email string) models.AuthResult
	ResetPassword(ctx context.Context, email string) models.AuthResult
	ConfirmResetPassword(ctx context.Context, uid, token, password, password2 string) models.AuthResult

	IsAuthenticated() bool
	IsDemoUser() bool
	CurrentUser() *models.User
}

type authService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sess *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

func (a *authService) Restore(ctx context.Context) (bool, error) {
	return a.session.Restore(ctx)
}

// Login posts credentials and stores the issued tokens on success. An
// unverified account becomes a RequiresVerification result carrying the
// email for a resend action; the session is left untouched.
func (a *authService) Login(ctx context.Context, identifier, password string) models.AuthResult {
	payload, err := a.client.Login(ctx, identifier, password)
	if err != nil {
		if apiErr := api.AsAPIError(err); apiErr != nil && apiErr.Kind == api.KindUnverified {
			email := apiErr.Email
			if email == "" {
				email = identifier
			}
			return models.RequiresVerification(email)
		}
		a.log.Debug(ctx, "login failed", "err", err)
		return models.Failure(err.Error())
	}

	tokens := models.TokenPair{Access: payload.Access, Refresh: payload.Refresh}
	if err := a.session.Set(ctx, tokens, payload.User, false); err != nil {
		a.log.Error(ctx, "failed to persist session", "err", err)
		return models.Failure("Could not save your session. Please try again.")
	}

	a.log.Info(ctx, "logged in", "user", username(payload.User))
	return models.Success(payload.User)
}

// DemoLogin requests a server-issued ephemeral session keyed by a
// client-generated unique identifier, then behaves like Login with the
// demo flag set.
func (a *authService) DemoLogin(ctx context.Context) models.AuthResult {
	sessionID := common.MakeDemoSessionID()

	payload, err := a.client.DemoLogin(ctx, sessionID)
	if err != nil {
		a.log.Debug(ctx, "demo login failed", "err", err)
		return models.Failure(err.Error())
	}

	tokens := models.TokenPair{Access: payload.Access, Refresh: payload.Refresh}
	if err := a.session.Set(ctx, tokens, payload.User, true); err != nil {
		a.log.Error(ctx, "failed to persist session", "err", err)
		return models.Failure("Could not save your session. Please try again.")
	}

	a.log.Info(ctx, "demo session started", "session_id", sessionID)
	return models.Success(payload.User)
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) models.AuthResult {
	msg, err := a.client.Register(ctx, data)
	if err != nil {
		return models.Failure(err.Error())
	}

	res := models.AuthResult{Outcome: models.AuthSuccess, Message: msg}
	return res
}

// Refresh exchanges the stored refresh token via the gateway. The gateway
// clears the session itself when the refresh token is rejected.
func (a *authService) Refresh(ctx context.Context) error {
	_, err := a.client.RefreshTokens(ctx)
	return err
}

// Logout invalidates the refresh token server-side on a best-effort basis,
// then always clears the local session. Network failures never leave the
// client logged in.
func (a *authService) Logout(ctx context.Context) error {
	if rt := a.session.RefreshToken(); rt != "" {
		if err := a.client.Logout(ctx, rt); err != nil {
			a.log.Warn(ctx, "server-side logout failed, clearing local session anyway", "err", err)
		}
	}
	return a.session.Clear(ctx)
}

func (a *authService) VerifyEmail(ctx context.Context, uid, token string) models.AuthResult {
	if err := a.client.VerifyEmail(ctx, uid, token); err != nil {
		return models.Failure(err.Error())
	}
	return models.AuthResult{Outcome: models.AuthSuccess, Message: "Email verified. You can log in now."}
}

func (a *authService) ResendVerification(ctx context.Context, email string) models.AuthResult {
	if err := a.client.ResendVerification(ctx, email); err != nil {
		return models.Failure(err.Error())
	}
	return models.AuthResult{Outcome: models.AuthSuccess, Message: "Verification email sent."}
}

func (a *authService) ResetPassword(ctx context.Context, email string) models.AuthResult {
	if err := a.client.ResetPassword(ctx, email); err != nil {
		return models.Failure(err.Error())
	}
	return models.AuthResult{Outcome: models.AuthSuccess, Message: "Password reset email sent."}
}

func (a *authService) ConfirmResetPassword(ctx context.Context, uid, token, password, password2 string) models.AuthResult {
	if err := a.client.ConfirmResetPassword(ctx, uid, token, password, password2); err != nil {
		return models.Failure(err.Error())
	}
	return models.AuthResult{Outcome: models.AuthSuccess, Message: "Password updated. You can log in now."}
}

func (a *authService) IsAuthenticated() bool { return a.session.IsAuthenticated() }

func (a *authService) IsDemoUser() bool { return a.session.IsDemoUser() }

func (a *authService) CurrentUser() *models.User { return a.session.User() }

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}
