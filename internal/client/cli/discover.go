package cli

import (
	"context"
	"fmt"
)

// Images searches stock photos to attach to a tweet.
func (a *App) Images(ctx context.Context, query string) error {
	images, err := a.images.Search(ctx, query, 5)
	if err != nil {
		printErr(err)
		return err
	}
	for _, img := range images {
		fmt.Printf("%s  %s", img.ID, img.URL)
		if img.AuthorName != "" {
			fmt.Printf("  (by %s)", img.AuthorName)
		}
		fmt.Println()
	}
	return nil
}

// Suggest prints a few accounts worth following.
func (a *App) Suggest(ctx context.Context) error {
	users, err := a.suggestions.Fetch(ctx, 5)
	if err != nil {
		printErr(err)
		return err
	}
	for _, u := range users {
		fmt.Printf("@%s  %s  %s\n", u.Handle, u.Name, u.Location)
	}
	return nil
}
