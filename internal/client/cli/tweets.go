package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maxh33/twitterclone-cli/internal/client/models"
	"github.com/maxh33/twitterclone-cli/internal/common"
)

const demoUpsell = "Demo accounts can browse only. Register to post, like, retweet and comment."

// printErr renders a command error for the user, translating the demo
// restriction into an upsell hint.
func printErr(err error) {
	if errors.Is(err, common.ErrDemoRestricted) {
		fmt.Println(demoUpsell)
		return
	}
	fmt.Println(err.Error())
}

func printTweet(tw *models.Tweet) {
	fmt.Printf("#%d @%s (%s)\n", tw.ID, tw.Author.Username, tw.CreatedAt)
	fmt.Println(tw.Content)
	for _, m := range tw.Media {
		fmt.Printf("  [media] %s\n", m.File)
	}
	fmt.Printf("  likes: %d, retweets: %d\n", tw.LikesCount, tw.RetweetCount)
}

func printFeed(feed *models.Feed, page int) {
	if len(feed.Results) == 0 {
		fmt.Println("No tweets.")
		return
	}
	for _, tw := range feed.Results {
		printTweet(&tw)
	}
	if feed.HasNext() {
		fmt.Printf("-- page %d of %d tweets, 'feed %d' for more --\n", page, feed.Count, page+1)
	}
}

// Feed prints one page of the home timeline.
func (a *App) Feed(ctx context.Context, page int) error {
	feed, err := a.tweets.Feed(ctx, page)
	if err != nil {
		printErr(err)
		return err
	}
	printFeed(feed, page)
	return nil
}

// UserTweets prints one page of a single user's tweets.
func (a *App) UserTweets(ctx context.Context, username string, page int) error {
	feed, err := a.tweets.UserTweets(ctx, username, page)
	if err != nil {
		printErr(err)
		return err
	}
	printFeed(feed, page)
	return nil
}

// Search prints tweets matching the query.
func (a *App) Search(ctx context.Context, query string) error {
	feed, err := a.tweets.Search(ctx, query, 1)
	if err != nil {
		printErr(err)
		return err
	}
	printFeed(feed, 1)
	return nil
}

// Post collects the tweet text (and an optional image file) and publishes it.
func (a *App) Post(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "Enter tweet text (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Println("Nothing to post.")
		return nil
	}

	path, err := getSimpleText(a.reader, "Attach image file path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var tweet *models.Tweet
	if path == "" {
		tweet, err = a.tweets.Post(ctx, content)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			printErr(err)
			return err
		}
		tweet, err = a.tweets.PostWithMedia(ctx, content, filepath.Base(path), data)
	}
	if err != nil {
		printErr(err)
		if tweet == nil {
			return err
		}
		// tweet went through, only the media upload failed
	}

	fmt.Printf("Posted tweet #%d\n", tweet.ID)
	return nil
}

func (a *App) Like(ctx context.Context, id int64) error {
	if err := a.tweets.Like(ctx, id); err != nil {
		printErr(err)
		return err
	}
	fmt.Printf("Liked tweet #%d\n", id)
	return nil
}

func (a *App) Unlike(ctx context.Context, id int64) error {
	if err := a.tweets.Unlike(ctx, id); err != nil {
		printErr(err)
		return err
	}
	fmt.Printf("Unliked tweet #%d\n", id)
	return nil
}

func (a *App) Retweet(ctx context.Context, id int64) error {
	if err := a.tweets.Retweet(ctx, id); err != nil {
		printErr(err)
		return err
	}
	fmt.Printf("Retweeted #%d\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, id int64) error {
	if err := a.tweets.Delete(ctx, id); err != nil {
		printErr(err)
		return err
	}
	fmt.Printf("Deleted tweet #%d\n", id)
	return nil
}

// Comments prints the replies under a tweet.
func (a *App) Comments(ctx context.Context, id int64) error {
	comments, err := a.tweets.Comments(ctx, id)
	if err != nil {
		printErr(err)
		return err
	}
	if len(comments) == 0 {
		fmt.Println("No comments.")
		return nil
	}
	for _, c := range comments {
		fmt.Printf("#%d @%s: %s\n", c.ID, c.Author.Username, c.Content)
	}
	return nil
}

// Comment posts a reply under a tweet.
func (a *App) Comment(ctx context.Context, id int64, text string) error {
	comment, err := a.tweets.Comment(ctx, id, text)
	if err != nil {
		printErr(err)
		return err
	}
	fmt.Printf("Commented on tweet #%d (comment #%d)\n", id, comment.ID)
	return nil
}
