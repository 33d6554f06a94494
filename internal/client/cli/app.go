package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/placeprep/ppclient/internal/client/api"
	"github.com/placeprep/ppclient/internal/client/config"
	"github.com/placeprep/ppclient/internal/client/repositories/tokens"
	"github.com/placeprep/ppclient/internal/client/search"
	"github.com/placeprep/ppclient/internal/client/session"
	"github.com/placeprep/ppclient/internal/client/storage"
	"github.com/placeprep/ppclient/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the REPL commands to the session store, the API client and the
// search controller.
type App struct {
	config  *config.Config
	client  api.Client
	session *session.Store
	search  *search.Controller
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

// NewApp assembles the client: local token database, HTTP client, session
// store and search controller.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	client, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	repo := tokens.NewSQLiteRepository(db)

	return &App{
		config:  c,
		client:  client,
		session: session.NewStore(client, repo, log),
		search:  search.NewController(client, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the session and enters the prompt loop. The restore resolves
// before the first prompt, so guarded commands never run while the session
// is still loading.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	a.session.Restore(ctx)

	if a.session.IsAuthenticated() {
		printlnFn("Welcome back,", a.session.User().Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// requireAuth is the route guard: only a validated session passes, never raw
// token presence. Restore has resolved by the time the REPL runs, so the
// loading branch only guards against future callers.
func (a *App) requireAuth() bool {
	if a.session.Loading() {
		printlnFn("Session check still in progress, try again")
		return false
	}
	if !a.session.IsAuthenticated() {
		printlnFn("Please login first ('login' or 'register')")
		return false
	}
	return true
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Name + ")"
	}
	return ""
}
