// Package api is the authenticated request gateway: it owns the HTTP
// transport to the twitter-clone backend, attaches bearer credentials,
// recovers from expired access tokens, and classifies every failure into a
// typed APIError before it reaches a caller.
package api

import (
	"context"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
)

// AuthPayload is the decoded body of a successful login or demo-login.
type AuthPayload struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user,omitempty"`
	Message string       `json:"message,omitempty"`
}

// Client is the surface the services are written against. The concrete
// implementation is HTTPClient; tests substitute a fake.
type Client interface {
	// Auth endpoints. None of these mutate the session store; that is the
	// auth service's job.
	Login(ctx context.Context, identifier, password string) (*AuthPayload, error)
	DemoLogin(ctx context.Context, sessionID string) (*AuthPayload, error)
	Register(ctx context.Context, data models.RegisterData) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	VerifyEmail(ctx context.Context, uid, token string) error
	ResendVerification(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email string) error
	ConfirmResetPassword(ctx context.Context, uid, token, password, password2 string) error

	// RefreshTokens exchanges the stored refresh token for fresh
	// credentials and updates the session store. An invalid refresh token
	// results in a full local logout.
	RefreshTokens(ctx context.Context) (models.TokenPair, error)

	// Tweet endpoints (bearer-authenticated).
	Feed(ctx context.Context, page int) (*models.Feed, error)
	UserTweets(ctx context.Context, username string, page int) (*models.Feed, error)
	SearchTweets(ctx context.Context, query string, page int) (*models.Feed, error)
	Tweet(ctx context.Context, id int64) (*models.Tweet, error)
	CreateTweet(ctx context.Context, content string) (*models.Tweet, error)
	DeleteTweet(ctx context.Context, id int64) error
	LikeTweet(ctx context.Context, id int64) error
	UnlikeTweet(ctx context.Context, id int64) error
	Retweet(ctx context.Context, id int64) error
	Comments(ctx context.Context, tweetID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, tweetID int64, content string) (*models.Comment, error)
	UploadMedia(ctx context.Context, tweetID int64, filename string, data []byte) (*models.MediaAttachment, error)
}
