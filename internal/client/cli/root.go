package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the twitterclone CLI (type 'help' for commands)")

	restored, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore previous session", "err", err)
	}
	if restored {
		if u := a.auth.CurrentUser(); u != nil {
			fmt.Printf("Welcome back, %s!\n", u.Username)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
