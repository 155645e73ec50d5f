package models

import "encoding/json"

// Tweet mirrors the backend tweet resource.
type Tweet struct {
	ID           int64             `json:"id"`
	Content      string            `json:"content"`
	Author       User              `json:"author"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at,omitempty"`
	LikesCount   int               `json:"likes_count"`
	RetweetCount int               `json:"retweet_count"`
	IsLiked      bool              `json:"is_liked,omitempty"`
	Media        []MediaAttachment `json:"media,omitempty"`
}

// MediaAttachment is an uploaded file linked to a tweet.
type MediaAttachment struct {
	ID        int64  `json:"id"`
	File      string `json:"file"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Comment is a reply attached to a tweet.
type Comment struct {
	ID        int64  `json:"id"`
	TweetID   int64  `json:"tweet,omitempty"`
	Content   string `json:"content"`
	Author    User   `json:"author"`
	CreatedAt string `json:"created_at"`
}

// Feed is the paginated envelope the backend wraps tweet lists in.
type Feed struct {
	Count    int     `json:"count"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
	Results  []Tweet `json:"results"`
}

// HasNext reports whether another page is available.
func (f *Feed) HasNext() bool { return f.Next != "" }

// UnmarshalJSON accepts both the paginated envelope and a bare tweet array
// (the backend returns the latter when pagination is disabled).
func (f *Feed) UnmarshalJSON(data []byte) error {
	type envelope Feed
	var e envelope
	if err := json.Unmarshal(data, &e); err == nil && e.Results != nil {
		*f = Feed(e)
		return nil
	}

	var tweets []Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return err
	}
	f.Count = len(tweets)
	f.Next = ""
	f.Previous = ""
	f.Results = tweets
	return nil
}
