package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/logging"
)

const unsplashBaseURL = "https://api.unsplash.com"

// ImageService searches Unsplash for attachable images. Without an access
// key (or when Unsplash is unreachable) it degrades to deterministic
// placeholder images instead of failing, so image attachment keeps working
// in local setups.
type ImageService struct {
	accessKey string
	baseURL   string
	httpc     *http.Client
	log       logging.Logger
}

func NewImageService(accessKey string, log logging.Logger) *ImageService {
	return &ImageService{
		accessKey: accessKey,
		baseURL:   unsplashBaseURL,
		httpc:     &http.Client{},
		log:       log,
	}
}

type unsplashPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
	User           struct {
		Name string `json:"name"`
	} `json:"user"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Search returns up to count images for query. An empty query fetches
// random photos.
func (s *ImageService) Search(ctx context.Context, query string, count int) ([]models.Image, error) {
	if count <= 0 {
		count = 10
	}
	if s.accessKey == "" {
		s.log.Warn(ctx, "no unsplash access key configured, using placeholder images")
		return placeholderImages(query, count), nil
	}

	var endpoint string
	if query != "" {
		endpoint = fmt.Sprintf("%s/search/photos?query=%s&per_page=%d", s.baseURL, url.QueryEscape(query), count)
	} else {
		endpoint = fmt.Sprintf("%s/photos/random?count=%d", s.baseURL, count)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)

	resp, err := s.httpc.Do(req)
	if err != nil {
		s.log.Warn(ctx, "unsplash unreachable, using placeholder images", "err", err)
		return placeholderImages(query, count), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode >= 400 {
		s.log.Warn(ctx, "unsplash request failed, using placeholder images", "status", resp.StatusCode)
		return placeholderImages(query, count), nil
	}

	var photos []unsplashPhoto
	if query != "" {
		var sr struct {
			Results []unsplashPhoto `json:"results"`
		}
		if err := json.Unmarshal(body, &sr); err != nil {
			return nil, fmt.Errorf("decode unsplash response: %w", err)
		}
		photos = sr.Results
	} else {
		if err := json.Unmarshal(body, &photos); err != nil {
			return nil, fmt.Errorf("decode unsplash response: %w", err)
		}
	}

	images := make([]models.Image, 0, len(photos))
	for _, p := range photos {
		desc := p.AltDescription
		if desc == "" {
			desc = "Unsplash image"
		}
		images = append(images, models.Image{
			ID:          p.ID,
			URL:         p.URLs.Regular,
			Description: desc,
			AuthorName:  p.User.Name,
			Width:       p.Width,
			Height:      p.Height,
		})
	}
	return images, nil
}

// placeholderImages builds count deterministic stand-in images keyed by the
// query, so repeated searches render the same pictures.
func placeholderImages(query string, count int) []models.Image {
	seed := query
	if seed == "" {
		seed = "random"
	}

	images := make([]models.Image, 0, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("placeholder-%s-%d", seed, i)
		images = append(images, models.Image{
			ID:          id,
			URL:         fmt.Sprintf("https://picsum.photos/seed/%s/800/600", url.PathEscape(id)),
			Description: "Placeholder image",
			Width:       800,
			Height:      600,
		})
	}
	return images
}
