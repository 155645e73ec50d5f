package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
)

// stubInputs replaces the interactive input seams with scripted answers.
// Text prompts pop from texts, password prompts pop from passwords.
func stubInputs(t *testing.T, texts []string, passwords [][]byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			t.Fatal("unexpected text prompt")
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			t.Fatal("unexpected password prompt")
		}
		v := passwords[0]
		passwords = passwords[1:]
		return append([]byte(nil), v...), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuthSvc struct {
	loginIdentifier string
	loginPassword   string
	loginRes        models.AuthResult

	registerData models.RegisterData
	registerRes  models.AuthResult

	demoRes models.AuthResult

	logoutCalled bool
	logoutErr    error

	resendEmail string

	authenticated bool
	demo          bool
	user          *models.User
}

func (f *fakeAuthSvc) Restore(ctx context.Context) (bool, error) { return f.authenticated, nil }
func (f *fakeAuthSvc) Login(ctx context.Context, identifier, password string) models.AuthResult {
	f.loginIdentifier, f.loginPassword = identifier, password
	return f.loginRes
}
func (f *fakeAuthSvc) DemoLogin(ctx context.Context) models.AuthResult { return f.demoRes }
func (f *fakeAuthSvc) Register(ctx context.Context, data models.RegisterData) models.AuthResult {
	f.registerData = data
	return f.registerRes
}
func (f *fakeAuthSvc) Refresh(ctx context.Context) error { return nil }
func (f *fakeAuthSvc) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}
func (f *fakeAuthSvc) VerifyEmail(ctx context.Context, uid, token string) models.AuthResult {
	return models.AuthResult{Outcome: models.AuthSuccess}
}
func (f *fakeAuthSvc) ResendVerification(ctx context.Context, email string) models.AuthResult {
	f.resendEmail = email
	return models.AuthResult{Outcome: models.AuthSuccess}
}
func (f *fakeAuthSvc) ResetPassword(ctx context.Context, email string) models.AuthResult {
	return models.AuthResult{Outcome: models.AuthSuccess}
}
func (f *fakeAuthSvc) ConfirmResetPassword(ctx context.Context, uid, token, password, password2 string) models.AuthResult {
	return models.AuthResult{Outcome: models.AuthSuccess}
}
func (f *fakeAuthSvc) IsAuthenticated() bool { return f.authenticated }

func (f *fakeAuthSvc) IsDemoUser() bool { return f.demo }

func (f *fakeAuthSvc) CurrentUser() *models.User { return f.user }

func TestLogin_PassesCredentials(t *testing.T) {
	f := &fakeAuthSvc{loginRes: models.Success(&models.User{Username: "alice"})}
	a := &App{auth: f}

	stubInputs(t, []string{"alice@example.org"}, [][]byte{[]byte("secret")})

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginIdentifier != "alice@example.org" {
		t.Fatalf("identifier mismatch: %q", f.loginIdentifier)
	}
	if f.loginPassword != "secret" {
		t.Fatalf("password mismatch: %q", f.loginPassword)
	}
}

func TestRegister_CollectsAllFields(t *testing.T) {
	f := &fakeAuthSvc{registerRes: models.AuthResult{Outcome: models.AuthSuccess, Message: "check your email"}}
	a := &App{auth: f}

	stubInputs(t, []string{"alice", "alice@example.org"}, [][]byte{[]byte("pw1"), []byte("pw1")})

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.registerData.Username != "alice" || f.registerData.Email != "alice@example.org" {
		t.Fatalf("register data mismatch: %+v", f.registerData)
	}
	if f.registerData.Password != "pw1" || f.registerData.Password2 != "pw1" {
		t.Fatalf("passwords not forwarded: %+v", f.registerData)
	}
}

func TestLogout_DelegatesToService(t *testing.T) {
	f := &fakeAuthSvc{authenticated: true}
	a := &App{auth: f}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("service Logout not called")
	}
}

func TestResendVerification_ForwardsEmail(t *testing.T) {
	f := &fakeAuthSvc{}
	a := &App{auth: f}

	stubInputs(t, []string{"alice@example.org"}, nil)

	if err := a.ResendVerification(context.Background()); err != nil {
		t.Fatalf("ResendVerification err: %v", err)
	}
	if f.resendEmail != "alice@example.org" {
		t.Fatalf("email mismatch: %q", f.resendEmail)
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		svc  *fakeAuthSvc
		want string
	}{
		{name: "logged out", svc: &fakeAuthSvc{}, want: ""},
		{name: "regular user", svc: &fakeAuthSvc{authenticated: true, user: &models.User{Username: "alice"}}, want: "(alice)"},
		{name: "demo user", svc: &fakeAuthSvc{authenticated: true, demo: true, user: &models.User{Username: "demo_user"}}, want: "(demo_user demo)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{auth: tt.svc}
			if got := a.getStatus(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
