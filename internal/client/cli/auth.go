package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printAuthResult renders a normalized auth outcome for the user. An
// account pending verification gets a hint about the resend command.
func printAuthResult(res models.AuthResult) {
	switch res.Outcome {
	case models.AuthSuccess:
		if res.Message != "" {
			fmt.Println(res.Message)
		} else if res.User != nil {
			fmt.Printf("Logged in as %s\n", res.User.Username)
		} else {
			fmt.Println("Success!")
		}
	case models.AuthRequiresVerification:
		fmt.Printf("Your account %s is not verified yet. Check your inbox or run 'resend'.\n", res.Email)
	case models.AuthFailure:
		fmt.Println(res.Message)
	}
}

// Login prompts for an email or username plus password and authenticates.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	printAuthResult(a.auth.Login(ctx, identifier, string(password)))
	return nil
}

// DemoLogin starts an ephemeral demo session. No input needed.
func (a *App) DemoLogin(ctx context.Context) error {
	res := a.auth.DemoLogin(ctx)
	printAuthResult(res)
	if res.Outcome == models.AuthSuccess {
		fmt.Println("Demo mode: you can browse the feed, search and view profiles. Register to post, like and comment.")
	}
	return nil
}

// Register prompts for the new-account fields and submits them.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	password2, err := getPassword(os.Stdout, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password2)

	printAuthResult(a.auth.Register(ctx, models.RegisterData{
		Username:  username,
		Email:     email,
		Password:  string(password),
		Password2: string(password2),
	}))
	return nil
}

// Logout invalidates the session server-side when possible and always
// clears the local one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if !a.auth.IsAuthenticated() || u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>", u.Username, u.Email)
	if a.auth.IsDemoUser() {
		fmt.Print(" [demo]")
	}
	fmt.Println()
	fmt.Printf("followers: %d, following: %d, tweets: %d\n", u.FollowersCount, u.FollowingCount, u.TweetsCount)
	return nil
}

// ResendVerification asks for the account email and requests a new
// verification message.
func (a *App) ResendVerification(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	printAuthResult(a.auth.ResendVerification(ctx, email))
	return nil
}

// ResetPassword requests a password reset email.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	printAuthResult(a.auth.ResetPassword(ctx, email))
	return nil
}

// ConfirmResetPassword finishes the reset flow with the uid/token pair from
// the reset email and a new password.
func (a *App) ConfirmResetPassword(ctx context.Context) error {
	uid, err := getSimpleText(a.reader, "Enter uid from the reset link", os.Stdout)
	if err != nil {
		return err
	}
	token, err := getSimpleText(a.reader, "Enter token from the reset link", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	password2, err := getPassword(os.Stdout, "Repeat new password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password2)

	printAuthResult(a.auth.ConfirmResetPassword(ctx, uid, token, string(password), string(password2)))
	return nil
}

// VerifyEmail confirms an account with the uid/token pair from the
// verification email.
func (a *App) VerifyEmail(ctx context.Context) error {
	uid, err := getSimpleText(a.reader, "Enter uid from the verification link", os.Stdout)
	if err != nil {
		return err
	}
	token, err := getSimpleText(a.reader, "Enter token from the verification link", os.Stdout)
	if err != nil {
		return err
	}
	printAuthResult(a.auth.VerifyEmail(ctx, uid, token))
	return nil
}
