package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/konkrer/hack-or-snooze/internal/config"
)

// status renders the REPL prompt suffix, e.g. "(alice) ".
func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.Username + ") "
}

// Run executes the command surface: one-shot subcommands for scripted use,
// and the interactive REPL when invoked without arguments. Every command
// starts by restoring a persisted session, so e.g. `snooze submit` works
// in a fresh process after an earlier `snooze login`.
func (a *App) Run(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "snooze",
		Short: "Terminal client for a hack-or-snooze story service",
		Long: `snooze reads and posts stories on a hack-or-snooze style
story-sharing service: browse the latest links, submit your own,
and keep favorites. Run without arguments for an interactive session.

Settings flags, parsed before any command:
  -a URL      base URL of the story service API
  -t SECONDS  request timeout
  -d PATH     local state database
  -c FILE     JSON config file
  -v          verbose logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Startup(cmd.Context())
			printlnFn("Welcome to snooze (type 'help' for commands)")
			runREPL(cmd.Context(), a, a.status, bufio.NewScanner(os.Stdin))
			return nil
		},
	}

	// One-shot variants of the REPL commands. Handlers report failures to
	// the user themselves; the non-nil error only sets the exit code.
	// prep says how much state the command needs before it runs: the full
	// startup (session + story collection), just the restored session, or
	// nothing at all.
	const (
		prepNone = iota
		prepSession
		prepFull
	)
	for _, c := range []struct {
		use, short string
		prep       int
		run        func(context.Context) error
	}{
		{"list", "List all stories", prepSession, a.List},
		{"login", "Log in and persist the session", prepNone, a.Login},
		{"signup", "Create an account and persist the session", prepNone, a.SignUp},
		{"logout", "Log out and clear the persisted session", prepNone, a.Logout},
		{"submit", "Submit a new story", prepSession, a.Submit},
		{"edit", "Edit one of your stories", prepFull, a.Edit},
		{"delete", "Delete one of your stories", prepFull, a.Delete},
		{"fav", "Toggle a story in your favorites", prepSession, a.Favorite},
		{"favorites", "List your favorite stories", prepSession, a.Favorites},
		{"mine", "List stories you posted", prepSession, a.Mine},
		{"profile", "Show your account details", prepSession, a.Profile},
	} {
		c := c
		root.AddCommand(&cobra.Command{
			Use:          c.use,
			Short:        c.short,
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				switch c.prep {
				case prepFull:
					a.Startup(cmd.Context())
				case prepSession:
					a.restoreOnly(cmd.Context())
				}
				return c.run(cmd.Context())
			},
		})
	}

	// The config package parsed its flags (-a/-t/-d/-v/-c) straight off
	// os.Args before cobra runs; strip them here so cobra only sees the
	// command words.
	root.SetArgs(config.StripArgs(os.Args[1:]))

	return root.ExecuteContext(ctx)
}

// restoreOnly restores the persisted session without fetching stories.
func (a *App) restoreOnly(ctx context.Context) {
	opCtx, cancel := a.opCtx(ctx)
	defer cancel()
	user, err := a.session.Restore(opCtx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	a.user = user
}
