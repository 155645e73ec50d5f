package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/logging"
)

const randomUserBaseURL = "https://randomuser.me/api/"

// SuggestionService builds "who to follow" entries from the randomuser.me
// generator, the same source the original sidebar used.
type SuggestionService struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

func NewSuggestionService(log logging.Logger) *SuggestionService {
	return &SuggestionService{
		baseURL: randomUserBaseURL,
		httpc:   &http.Client{},
		log:     log,
	}
}

type randomUserResponse struct {
	Results []struct {
		Email string `json:"email"`
		Name  struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Login struct {
			UUID     string `json:"uuid"`
			Username string `json:"username"`
		} `json:"login"`
		Picture struct {
			Medium string `json:"medium"`
		} `json:"picture"`
		Location struct {
			City    string `json:"city"`
			Country string `json:"country"`
		} `json:"location"`
	} `json:"results"`
}

// Fetch returns count suggested users.
func (s *SuggestionService) Fetch(ctx context.Context, count int) ([]models.SuggestedUser, error) {
	if count <= 0 {
		count = 5
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?results=%d", s.baseURL, count), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch suggestions: unexpected status %d", resp.StatusCode)
	}

	var ru randomUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&ru); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}

	users := make([]models.SuggestedUser, 0, len(ru.Results))
	for _, r := range ru.Results {
		users = append(users, models.SuggestedUser{
			ID:       r.Login.UUID,
			Name:     fmt.Sprintf("%s %s", r.Name.First, r.Name.Last),
			Handle:   r.Login.Username,
			Avatar:   r.Picture.Medium,
			Email:    r.Email,
			Location: fmt.Sprintf("%s, %s", r.Location.City, r.Location.Country),
		})
	}
	return users, nil
}
