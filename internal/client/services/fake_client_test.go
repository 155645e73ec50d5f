package services

import (
	"context"

	"github.com/maxh33/twitterclone-cli/internal/client/api"
	"github.com/maxh33/twitterclone-cli/internal/client/models"
)

// fakeClient implements api.Client for service unit tests: preset outputs,
// captured inputs.
type fakeClient struct {
	LoginPayload *api.AuthPayload
	LoginErr     error

	DemoPayload *api.AuthPayload
	DemoErr     error

	RegisterMsg string
	RegisterErr error

	LogoutErr error

	RefreshPair models.TokenPair
	RefreshErr  error

	VerifyEmailErr  error
	ResendErr       error
	ResetErr        error
	ConfirmResetErr error

	FeedRet *models.Feed
	FeedErr error

	TweetRet *models.Tweet
	TweetErr error

	CreateTweetRet *models.Tweet
	CreateTweetErr error

	DeleteErr  error
	LikeErr    error
	UnlikeErr  error
	RetweetErr error

	CommentsRet []models.Comment
	CommentsErr error

	CreateCommentRet *models.Comment
	CreateCommentErr error

	MediaRet *models.MediaAttachment
	MediaErr error

	// captured inputs
	LastLoginIdentifier string
	LastLoginPassword   string
	LastDemoSessionID   string
	LastRegisterData    models.RegisterData
	LastLogoutRefresh   string
	LastFeedPage        int
	LastCreateContent   string
	LastCommentTweetID  int64
	LastCommentContent  string
	LastMediaFilename   string
	LastMediaData       []byte

	CreateTweetCalls int
}

func (f *fakeClient) Login(ctx context.Context, identifier, password string) (*api.AuthPayload, error) {
	f.LastLoginIdentifier = identifier
	f.LastLoginPassword = password
	return f.LoginPayload, f.LoginErr
}

func (f *fakeClient) DemoLogin(ctx context.Context, sessionID string) (*api.AuthPayload, error) {
	f.LastDemoSessionID = sessionID
	return f.DemoPayload, f.DemoErr
}

func (f *fakeClient) Register(ctx context.Context, data models.RegisterData) (string, error) {
	f.LastRegisterData = data
	return f.RegisterMsg, f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context, refreshToken string) error {
	f.LastLogoutRefresh = refreshToken
	return f.LogoutErr
}

func (f *fakeClient) VerifyEmail(ctx context.Context, uid, token string) error {
	return f.VerifyEmailErr
}

func (f *fakeClient) ResendVerification(ctx context.Context, email string) error {
	return f.ResendErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, email string) error {
	return f.ResetErr
}

func (f *fakeClient) ConfirmResetPassword(ctx context.Context, uid, token, password, password2 string) error {
	return f.ConfirmResetErr
}

func (f *fakeClient) RefreshTokens(ctx context.Context) (models.TokenPair, error) {
	return f.RefreshPair, f.RefreshErr
}

func (f *fakeClient) Feed(ctx context.Context, page int) (*models.Feed, error) {
	f.LastFeedPage = page
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) UserTweets(ctx context.Context, username string, page int) (*models.Feed, error) {
	f.LastFeedPage = page
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) SearchTweets(ctx context.Context, query string, page int) (*models.Feed, error) {
	f.LastFeedPage = page
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) Tweet(ctx context.Context, id int64) (*models.Tweet, error) {
	return f.TweetRet, f.TweetErr
}

func (f *fakeClient) CreateTweet(ctx context.Context, content string) (*models.Tweet, error) {
	f.CreateTweetCalls++
	f.LastCreateContent = content
	return f.CreateTweetRet, f.CreateTweetErr
}

func (f *fakeClient) DeleteTweet(ctx context.Context, id int64) error { return f.DeleteErr }

func (f *fakeClient) LikeTweet(ctx context.Context, id int64) error { return f.LikeErr }

func (f *fakeClient) UnlikeTweet(ctx context.Context, id int64) error { return f.UnlikeErr }

func (f *fakeClient) Retweet(ctx context.Context, id int64) error { return f.RetweetErr }

func (f *fakeClient) Comments(ctx context.Context, tweetID int64) ([]models.Comment, error) {
	return f.CommentsRet, f.CommentsErr
}

func (f *fakeClient) CreateComment(ctx context.Context, tweetID int64, content string) (*models.Comment, error) {
	f.LastCommentTweetID = tweetID
	f.LastCommentContent = content
	return f.CreateCommentRet, f.CreateCommentErr
}

func (f *fakeClient) UploadMedia(ctx context.Context, tweetID int64, filename string, data []byte) (*models.MediaAttachment, error) {
	f.LastMediaFilename = filename
	f.LastMediaData = append([]byte(nil), data...)
	return f.MediaRet, f.MediaErr
}

var _ api.Client = (*fakeClient)(nil)
