package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/FBurak/Restaurant-Web/internal/client/client"
	"github.com/FBurak/Restaurant-Web/internal/client/config"
	"github.com/FBurak/Restaurant-Web/internal/client/console"
	"github.com/FBurak/Restaurant-Web/internal/client/editbuffer"
	"github.com/FBurak/Restaurant-Web/internal/client/services"
	"github.com/FBurak/Restaurant-Web/internal/filex"
	"github.com/FBurak/Restaurant-Web/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	api      client.Client
	auth     services.AuthService
	policy   editbuffer.Policy
	notifier console.Notifier
	session  *console.Session
	reader   *bufio.Reader
	out      io.Writer
	closers  []io.Closer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	policy, err := editbuffer.ParsePolicy(c.SnapshotPolicy)
	if err != nil {
		return nil, err
	}

	if err := filex.EnsureParentDir(c.LogFile); err != nil {
		return nil, err
	}
	lg, logCloser, err := logging.NewFile(c.LogFile, slog.LevelDebug)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		lg.Error(ctx, "error initializing database", "error", err)
		_ = logCloser.Close()
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		_ = logCloser.Close()
		return nil, err
	}

	a := newApp(c, lg, apiClient, services.NewAuthService(apiClient, db, lg), policy)
	a.closers = []io.Closer{closerFunc(db.Close), logCloser}
	return a, nil
}

func newApp(c *config.Config, lg logging.Logger, api client.Client, as services.AuthService, policy editbuffer.Policy) *App {
	return &App{
		config:   c,
		log:      lg,
		api:      api,
		auth:     as,
		policy:   policy,
		notifier: newColorNotifier(os.Stdout),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Run resumes or establishes a session and serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.shutdown(ctx)

	printBanner(a.out, a.config.RestaurantID)

	st, err := a.auth.Resolve(ctx)
	if err != nil {
		a.notifier.Notify(console.Notice{Level: console.LevelError, Text: "could not resume session: " + err.Error(), Err: err})
	}
	if st.Status == services.StatusSignedIn {
		_ = a.openSession(ctx)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
	_ = a.ConfirmLeave(ctx)
}

func (a *App) shutdown(ctx context.Context) {
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "close client", "error", err)
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	st := a.auth.State()
	if st.Status != services.StatusSignedIn {
		return st.Status.String()
	}
	s := st.Identity.Email + "@" + a.config.RestaurantID
	if a.session != nil && a.session.Dirty() {
		s += " *"
	}
	return s
}

func (a *App) openSession(ctx context.Context) error {
	s := console.New(a.api, console.Options{
		RestaurantID: a.config.RestaurantID,
		Policy:       a.policy,
		Logger:       a.log,
		Notifier:     a.notifier,
		Auth:         a.auth,
	})
	if err := s.Open(ctx); err != nil {
		return err
	}
	a.session = s
	return nil
}
