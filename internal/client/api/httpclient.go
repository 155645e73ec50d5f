package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/client/session"
	"github.com/maxh33/twitterclone-cli/internal/common"
	"github.com/maxh33/twitterclone-cli/internal/logging"
	"github.com/maxh33/twitterclone-cli/internal/metrics"
)

// HTTPClient talks JSON/REST to the backend. It reads the bearer token from
// the session store on every request, refreshes it once on 401 (concurrent
// 401s share a single refresh via singleflight), and clears the session when
// the refresh token itself is rejected.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	session *session.Store
	log     logging.Logger

	refreshGroup singleflight.Group

	// now is a test seam for expiry checks.
	now func() time.Time
}

func NewHTTPClient(baseURL string, timeout time.Duration, sess *session.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
		now:     time.Now,
	}
}

// roundTrip performs one HTTP exchange and returns the status plus the full
// body. A nil response (transport failure) is mapped to KindNetwork here so
// no raw *url.Error ever escapes the gateway.
func (c *HTTPClient) roundTrip(ctx context.Context, method, path string, body []byte, contentType string, authed bool) (int, []byte, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return 0, nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		if tok := c.session.AccessToken(); tok != "" {
			req.Header.Set(common.AuthHeaderName, common.BearerPrefix+tok)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.NetworkErrorsTotal.Inc()
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return 0, nil, &APIError{Kind: KindNetwork, Message: networkMessage}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.NetworkErrorsTotal.Inc()
		return 0, nil, &APIError{Kind: KindNetwork, Message: networkMessage}
	}

	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug(ctx, "request done", "method", method, "path", path, "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

// do runs a JSON request. When authed, an expired access token is refreshed
// up front, and a 401 response triggers exactly one refresh-and-retry before
// the caller sees an error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var (
		raw []byte
		err error
	)
	if body != nil {
		raw, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	if authed {
		c.refreshIfExpired(ctx)
	}

	status, data, err := c.roundTrip(ctx, method, path, raw, "application/json", authed)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && authed {
		if _, rerr := c.RefreshTokens(ctx); rerr != nil {
			c.handleRefreshFailure(ctx, rerr)
			return decodeError(status, data)
		}
		status, data, err = c.roundTrip(ctx, method, path, raw, "application/json", authed)
		if err != nil {
			return err
		}
	}

	if status >= 400 {
		return decodeError(status, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}
	return nil
}

// refreshIfExpired proactively refreshes a JWT access token that is past
// (or within 30s of) its exp claim, instead of waiting for the 401.
// Failures are left for the regular 401 path to handle.
func (c *HTTPClient) refreshIfExpired(ctx context.Context) {
	tok := c.session.AccessToken()
	if tok == "" || c.session.RefreshToken() == "" {
		return
	}
	if !tokenExpired(tok, c.now()) {
		return
	}
	if _, err := c.RefreshTokens(ctx); err != nil {
		c.log.Debug(ctx, "proactive token refresh failed", "err", err)
	}
}

// handleRefreshFailure clears the session for unrecoverable refresh
// failures. A network error during refresh is NOT unrecoverable; the user
// keeps their tokens and may retry when connectivity returns.
func (c *HTTPClient) handleRefreshFailure(ctx context.Context, rerr error) {
	if errors.Is(rerr, common.ErrNoRefreshToken) {
		if cerr := c.session.Clear(ctx); cerr != nil {
			c.log.Error(ctx, "failed to clear session", "err", cerr)
		}
	}
}

// RefreshTokens exchanges the stored refresh token for new credentials and
// updates the session store. Concurrent callers share one in-flight refresh.
// A rejected refresh token results in a full local logout.
func (c *HTTPClient) RefreshTokens(ctx context.Context) (models.TokenPair, error) {
	v, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		return c.doRefresh(ctx)
	})
	if err != nil {
		return models.TokenPair{}, err
	}
	return v.(models.TokenPair), nil
}

func (c *HTTPClient) doRefresh(ctx context.Context) (models.TokenPair, error) {
	rt := c.session.RefreshToken()
	if rt == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("missing").Inc()
		return models.TokenPair{}, common.ErrNoRefreshToken
	}

	raw, err := json.Marshal(map[string]string{"refresh": rt})
	if err != nil {
		return models.TokenPair{}, err
	}

	status, data, err := c.roundTrip(ctx, http.MethodPost, "/auth/token/refresh/", raw, "application/json", false)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("network_error").Inc()
		return models.TokenPair{}, err
	}
	if status >= 400 {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		c.log.Info(ctx, "refresh token rejected, logging out", "status", status)
		if cerr := c.session.Clear(ctx); cerr != nil {
			c.log.Error(ctx, "failed to clear session", "err", cerr)
		}
		return models.TokenPair{}, decodeError(status, data)
	}

	var pair models.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode refresh response: %w", err)
	}
	if err := c.session.SetTokens(ctx, pair.Access, pair.Refresh); err != nil {
		return models.TokenPair{}, fmt.Errorf("store refreshed tokens: %w", err)
	}

	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	return pair, nil
}

/*************
 * Auth endpoints
 *************/

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*AuthPayload, error) {
	body := map[string]string{"email": identifier, "password": password}

	var payload AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login/", body, &payload, false); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *HTTPClient) DemoLogin(ctx context.Context, sessionID string) (*AuthPayload, error) {
	body := map[string]string{"session_id": sessionID}

	var payload AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/demo-login/", body, &payload, false); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register/", data, &resp, false); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Logout invalidates the refresh token server-side. Callers must not depend
// on it succeeding; local cleanup happens regardless.
func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refresh": refreshToken}
	return c.do(ctx, http.MethodPost, "/auth/logout/", body, nil, true)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, uid, token string) error {
	body := map[string]string{"uidb64": uid, "token": token}
	return c.do(ctx, http.MethodPost, "/auth/verify-email/", body, nil, false)
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/resend-verification/", body, nil, false)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/password-reset/", body, nil, false)
}

func (c *HTTPClient) ConfirmResetPassword(ctx context.Context, uid, token, password, password2 string) error {
	body := map[string]string{
		"uidb64":    uid,
		"token":     token,
		"password":  password,
		"password2": password2,
	}
	return c.do(ctx, http.MethodPost, "/auth/password-reset/confirm/", body, nil, false)
}

/*************
 * Tweet endpoints
 *************/

func (c *HTTPClient) Feed(ctx context.Context, page int) (*models.Feed, error) {
	path := fmt.Sprintf("/tweets/feed/?page=%d", page)

	var feed models.Feed
	if err := c.do(ctx, http.MethodGet, path, nil, &feed, true); err != nil {
		return nil, err
	}
	return &feed, nil
}

func (c *HTTPClient) UserTweets(ctx context.Context, username string, page int) (*models.Feed, error) {
	path := fmt.Sprintf("/tweets/user_tweets/?username=%s&page=%d", url.QueryEscape(username), page)

	var feed models.Feed
	if err := c.do(ctx, http.MethodGet, path, nil, &feed, true); err != nil {
		return nil, err
	}
	return &feed, nil
}

func (c *HTTPClient) SearchTweets(ctx context.Context, query string, page int) (*models.Feed, error) {
	path := fmt.Sprintf("/tweets/search/?q=%s&page=%d", url.QueryEscape(query), page)

	var feed models.Feed
	if err := c.do(ctx, http.MethodGet, path, nil, &feed, true); err != nil {
		return nil, err
	}
	return &feed, nil
}

func (c *HTTPClient) Tweet(ctx context.Context, id int64) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tweets/%d/", id), nil, &tweet, true); err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (c *HTTPClient) CreateTweet(ctx context.Context, content string) (*models.Tweet, error) {
	body := map[string]string{"content": content}

	var tweet models.Tweet
	if err := c.do(ctx, http.MethodPost, "/tweets/", body, &tweet, true); err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (c *HTTPClient) DeleteTweet(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tweets/%d/", id), nil, nil, true)
}

func (c *HTTPClient) LikeTweet(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tweets/%d/like/", id), nil, nil, true)
}

func (c *HTTPClient) UnlikeTweet(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tweets/%d/unlike/", id), nil, nil, true)
}

func (c *HTTPClient) Retweet(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tweets/%d/retweet/", id), nil, nil, true)
}

func (c *HTTPClient) Comments(ctx context.Context, tweetID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tweets/%d/comments/", tweetID), nil, &comments, true); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, tweetID int64, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}

	var comment models.Comment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tweets/%d/comments/", tweetID), body, &comment, true); err != nil {
		return nil, err
	}
	return &comment, nil
}

// UploadMedia attaches a file to an existing tweet via a multipart form.
func (c *HTTPClient) UploadMedia(ctx context.Context, tweetID int64, filename string, data []byte) (*models.MediaAttachment, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	path := fmt.Sprintf("/tweets/%d/add_media/", tweetID)
	status, respBody, err := c.roundTrip(ctx, http.MethodPost, path, buf.Bytes(), w.FormDataContentType(), true)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		if _, rerr := c.RefreshTokens(ctx); rerr != nil {
			c.handleRefreshFailure(ctx, rerr)
			return nil, decodeError(status, respBody)
		}
		status, respBody, err = c.roundTrip(ctx, http.MethodPost, path, buf.Bytes(), w.FormDataContentType(), true)
		if err != nil {
			return nil, err
		}
	}
	if status >= 400 {
		return nil, decodeError(status, respBody)
	}

	var media models.MediaAttachment
	if err := json.Unmarshal(respBody, &media); err != nil {
		return nil, fmt.Errorf("decode media response: %w", err)
	}
	return &media, nil
}

var _ Client = (*HTTPClient)(nil)
