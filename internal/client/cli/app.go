// Package cli implements the interactive portal client. Every screen change
// is a navigation through the access gate; the conversation screens mount
// the cache and change listener while they are open.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/clientportal/internal/client/backend"
	"github.com/dmitrijs2005/clientportal/internal/client/config"
	"github.com/dmitrijs2005/clientportal/internal/client/conversation"
	"github.com/dmitrijs2005/clientportal/internal/client/gate"
	"github.com/dmitrijs2005/clientportal/internal/client/onboarding"
	"github.com/dmitrijs2005/clientportal/internal/client/session"
	"github.com/dmitrijs2005/clientportal/internal/client/store"
	"github.com/dmitrijs2005/clientportal/internal/filex"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	backend     backend.Backend
	session     *session.Session
	resolver    *onboarding.Resolver
	cache       *conversation.Cache
	coordinator *conversation.Coordinator
	listener    *conversation.Listener
	reader      *bufio.Reader

	mu   sync.Mutex
	path string

	// Lifecycle of the currently open conversation view.
	viewCancel context.CancelFunc
}

func (a *App) currentPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.path
}

func (a *App) setPath(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.path = path
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	dataDir, err := filex.EnsureSubdDir("data")
	if err != nil {
		return nil, err
	}

	db, err := store.InitDatabase(ctx, filepath.Join(dataDir, c.DatabaseFile))
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}
	tokens := store.NewSQLiteRepository(db)

	b, err := backend.NewGRPCBackend(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	sess := session.New(b, tokens)
	resolver := onboarding.NewResolver(b)
	cache := conversation.NewCache(b)

	return &App{
		config:      c,
		backend:     b,
		session:     sess,
		resolver:    resolver,
		cache:       cache,
		coordinator: conversation.NewCoordinator(b, cache),
		listener:    conversation.NewListener(b, cache, c.ResubscribeMinBackoff, c.ResubscribeMaxBackoff),
		reader:      bufio.NewReader(os.Stdin),
		path:        gate.PathHome,
	}, nil
}

// Run settles the session, then hands control to the REPL. Settling happens
// before the first prompt so no gate decision is ever made on a
// half-restored session.
func (a *App) Run(ctx context.Context) {

	log.Printf("Restoring session...")
	st := a.session.Settle(ctx)
	if st.Authenticated() {
		log.Printf("Signed in as %s", st.Identity.Email)
	} else {
		log.Printf("Not signed in")
	}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	go a.watchGate(watchCtx)

	defer a.closeConversationView()

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// watchGate re-evaluates the open screen whenever the session or the
// onboarding status changes and announces a lost-access redirect. It never
// navigates on its own; the user drives navigation from the prompt.
func (a *App) watchGate(ctx context.Context) {

	sessCh, cancelSess := a.session.Subscribe()
	defer cancelSess()
	statusCh, cancelStatus := a.resolver.Subscribe()
	defer cancelStatus()

	for {
		select {
		case <-ctx.Done():
			return
		case <-sessCh:
		case <-statusCh:
		}

		st := a.session.Snapshot()
		if st.Settling {
			continue
		}

		path := a.currentPath()
		route, ok := routes[path]
		if !ok {
			continue
		}

		if d := gate.Decide(st, a.currentStatus(ctx, st), route); d.Outcome != gate.Render {
			log.Printf("Access to %s changed: %s", path, d.Outcome)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

// status renders the REPL prompt: who is signed in and which screen is open.
func (a *App) status() string {
	st := a.session.Snapshot()
	if !st.Authenticated() {
		return "anonymous"
	}
	return st.Identity.Email + " " + a.currentPath()
}

func (a *App) closeConversationView() {
	if a.viewCancel != nil {
		a.viewCancel()
		a.viewCancel = nil
	}
}
