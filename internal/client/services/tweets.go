package services

import (
	"context"
	"fmt"

	"github.com/maxh33/twitterclone-cli/internal/client/api"
	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/client/session"
	"github.com/maxh33/twitterclone-cli/internal/common"
	"github.com/maxh33/twitterclone-cli/internal/logging"
)

// TweetService exposes the feed and tweet operations. Mutating operations
// are gated for demo sessions: demo accounts can browse everything but get
// common.ErrDemoRestricted when they try to post, like, retweet, comment or
// delete.
type TweetService interface {
	Feed(ctx context.Context, page int) (*models.Feed, error)
	UserTweets(ctx context.Context, username string, page int) (*models.Feed, error)
	Search(ctx context.Context, query string, page int) (*models.Feed, error)
	Get(ctx context.Context, id int64) (*models.Tweet, error)
	Comments(ctx context.Context, tweetID int64) ([]models.Comment, error)

	Post(ctx context.Context, content string) (*models.Tweet, error)
	PostWithMedia(ctx context.Context, content, filename string, media []byte) (*models.Tweet, error)
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) error
	Unlike(ctx context.Context, id int64) error
	Retweet(ctx context.Context, id int64) error
	Comment(ctx context.Context, tweetID int64, content string) (*models.Comment, error)
}

type tweetService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger
}

func NewTweetService(client api.Client, sess *session.Store, log logging.Logger) TweetService {
	return &tweetService{client: client, session: sess, log: log}
}

// guardMutation rejects mutating calls from demo sessions.
func (s *tweetService) guardMutation() error {
	if s.session.IsDemoUser() {
		return common.ErrDemoRestricted
	}
	return nil
}

func (s *tweetService) Feed(ctx context.Context, page int) (*models.Feed, error) {
	if page < 1 {
		page = 1
	}
	return s.client.Feed(ctx, page)
}

func (s *tweetService) UserTweets(ctx context.Context, username string, page int) (*models.Feed, error) {
	if page < 1 {
		page = 1
	}
	return s.client.UserTweets(ctx, username, page)
}

func (s *tweetService) Search(ctx context.Context, query string, page int) (*models.Feed, error) {
	if page < 1 {
		page = 1
	}
	return s.client.SearchTweets(ctx, query, page)
}

func (s *tweetService) Get(ctx context.Context, id int64) (*models.Tweet, error) {
	return s.client.Tweet(ctx, id)
}

func (s *tweetService) Comments(ctx context.Context, tweetID int64) ([]models.Comment, error) {
	return s.client.Comments(ctx, tweetID)
}

func (s *tweetService) Post(ctx context.Context, content string) (*models.Tweet, error) {
	if err := s.guardMutation(); err != nil {
		return nil, err
	}
	tweet, err := s.client.CreateTweet(ctx, content)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "tweet posted", "id", tweet.ID)
	return tweet, nil
}

// PostWithMedia creates the tweet first and then attaches the media file.
// A failed upload does not roll the tweet back; the text-only tweet is
// returned together with the upload error.
func (s *tweetService) PostWithMedia(ctx context.Context, content, filename string, media []byte) (*models.Tweet, error) {
	if err := s.guardMutation(); err != nil {
		return nil, err
	}

	tweet, err := s.client.CreateTweet(ctx, content)
	if err != nil {
		return nil, err
	}

	attachment, err := s.client.UploadMedia(ctx, tweet.ID, filename, media)
	if err != nil {
		return tweet, fmt.Errorf("tweet %d created but media upload failed: %w", tweet.ID, err)
	}
	tweet.Media = append(tweet.Media, *attachment)

	s.log.Info(ctx, "tweet posted with media", "id", tweet.ID, "media_id", attachment.ID)
	return tweet, nil
}

func (s *tweetService) Delete(ctx context.Context, id int64) error {
	if err := s.guardMutation(); err != nil {
		return err
	}
	return s.client.DeleteTweet(ctx, id)
}

func (s *tweetService) Like(ctx context.Context, id int64) error {
	if err := s.guardMutation(); err != nil {
		return err
	}
	return s.client.LikeTweet(ctx, id)
}

func (s *tweetService) Unlike(ctx context.Context, id int64) error {
	if err := s.guardMutation(); err != nil {
		return err
	}
	return s.client.UnlikeTweet(ctx, id)
}

func (s *tweetService) Retweet(ctx context.Context, id int64) error {
	if err := s.guardMutation(); err != nil {
		return err
	}
	return s.client.Retweet(ctx, id)
}

func (s *tweetService) Comment(ctx context.Context, tweetID int64, content string) (*models.Comment, error) {
	if err := s.guardMutation(); err != nil {
		return nil, err
	}
	return s.client.CreateComment(ctx, tweetID, content)
}
