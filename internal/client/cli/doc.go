// Package cli implements the interactive twitterclone shell.
//
// The REPL reads one command per line and dispatches to handlers on App,
// which delegate to the auth and tweet services. Type 'help' inside the
// shell for the command list. Demo sessions can browse everything but are
// told to register when they try a mutating command.
package cli
