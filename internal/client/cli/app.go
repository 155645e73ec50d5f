package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/maxh33/twitterclone-cli/internal/client/api"
	"github.com/maxh33/twitterclone-cli/internal/client/config"
	"github.com/maxh33/twitterclone-cli/internal/client/services"
	"github.com/maxh33/twitterclone-cli/internal/client/session"
	"github.com/maxh33/twitterclone-cli/internal/logging"
)

type App struct {
	config      *config.Config
	auth        services.AuthService
	tweets      services.TweetService
	images      *services.ImageService
	suggestions *services.SuggestionService
	log         logging.Logger
	reader      *bufio.Reader
	db          *sql.DB
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(os.Stderr)

	db, err := session.OpenDB(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "err", err)
		return nil, err
	}

	sess := session.NewStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.Timeout, sess, log)

	return &App{
		config:      c,
		auth:        services.NewAuthService(apiClient, sess, log),
		tweets:      services.NewTweetService(apiClient, sess, log),
		images:      services.NewImageService(c.UnsplashAccessKey, log),
		suggestions: services.NewSuggestionService(log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		db:          db,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

// getStatus renders the prompt suffix: "(username)" for a regular session,
// "(username demo)" for a demo one, empty when logged out.
func (a *App) getStatus() string {
	if !a.auth.IsAuthenticated() {
		return ""
	}
	s := ""
	if u := a.auth.CurrentUser(); u != nil {
		s = u.Username
	}
	if a.auth.IsDemoUser() {
		if s != "" {
			s += " "
		}
		s += "demo"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
