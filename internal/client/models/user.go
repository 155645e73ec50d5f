// Package models defines the view models exchanged between the API client,
// the session store, and the CLI. They mirror the backend's JSON shapes.
package models

import "encoding/json"

// User is a read-only projection of the backend's user representation.
// It is never mutated locally, only replaced by a fresh fetch.
type User struct {
	ID             json.Number `json:"id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	Bio            string      `json:"bio,omitempty"`
	Location       string      `json:"location,omitempty"`
	ProfilePicture string      `json:"profile_picture,omitempty"`
	FollowersCount int         `json:"followers_count"`
	FollowingCount int         `json:"following_count"`
	TweetsCount    int         `json:"tweets_count"`
	IsVerified     bool        `json:"is_verified"`
	IsDemoUser     bool        `json:"is_demo_user"`
	CreatedAt      string      `json:"created_at,omitempty"`
}

// SuggestedUser is a "who to follow" entry built from the random-user
// generator API.
type SuggestedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Location string `json:"location,omitempty"`
}
