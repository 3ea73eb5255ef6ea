package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/clientportal/internal/client/gate"
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/client/session"
)

// currentStatus resolves the onboarding status behind the gate decision.
// Anonymous sessions have none; the gate redirects them before the status
// matters.
func (a *App) currentStatus(ctx context.Context, st session.State) *models.OnboardingStatus {
	if !st.Authenticated() {
		return nil
	}
	return a.resolver.Resolve(ctx, st.Identity.ID)
}

// routes is the navigable surface. The conversation screens require a
// completed onboarding; the home screen does not.
var routes = map[string]gate.Route{
	gate.PathHome:       {Path: gate.PathHome},
	gate.PathOnboarding: {Path: gate.PathOnboarding, RequiresOnboarding: true},
	"/messages":         {Path: "/messages", RequiresOnboarding: true},
	"/files":            {Path: "/files", RequiresOnboarding: true},
}

// Go navigates to path through the access gate and opens whatever screen
// the decision points at. Redirects are silent gating, not errors.
func (a *App) Go(ctx context.Context, path string) error {

	route, ok := routes[path]
	if !ok {
		return fmt.Errorf("unknown path: %s", path)
	}

	st := a.session.Snapshot()
	decision := gate.Decide(st, a.currentStatus(ctx, st), route)

	switch decision.Outcome {
	case gate.Render:
		return a.open(ctx, route.Path)
	case gate.RedirectAuth:
		log.Printf("Sign in to continue (you will return to %s)", decision.From)
		return nil
	case gate.RedirectOnboarding:
		log.Printf("Finish onboarding first (you will return to %s)", decision.From)
		return a.open(ctx, gate.PathOnboarding)
	case gate.RedirectHome:
		return a.open(ctx, gate.PathHome)
	}
	return nil
}

// open switches the current screen, managing the conversation view
// lifecycle: opening a conversation screen mounts the cache key and starts
// the change listener, leaving it tears both down.
func (a *App) open(ctx context.Context, path string) error {

	current := a.currentPath()
	if current == path {
		return a.show(ctx, path)
	}

	if isConversationPath(current) && !isConversationPath(path) {
		a.closeConversationView()
		a.cache.Unmount(a.conversationKey())
	}

	if isConversationPath(path) && !isConversationPath(current) {
		key := a.conversationKey()
		viewCtx, cancel := context.WithCancel(ctx)
		a.viewCancel = cancel
		a.cache.Mount(viewCtx, key)
		go a.listener.Listen(viewCtx, key)
	}

	a.setPath(path)
	return a.show(ctx, path)
}

func isConversationPath(path string) bool {
	return path == "/messages" || path == "/files"
}

// conversationKey is the participant id of the signed-in identity; the
// portal shows each client exactly one conversation, their own.
func (a *App) conversationKey() string {
	st := a.session.Snapshot()
	if !st.Authenticated() {
		return ""
	}
	return st.Identity.ID
}

func (a *App) show(ctx context.Context, path string) error {
	switch path {
	case gate.PathHome:
		log.Printf("Home. Commands: go /messages, go /files, go /onboarding")
		return nil
	case gate.PathOnboarding:
		log.Printf("Onboarding. Run 'onboard' to submit your company details")
		return nil
	case "/messages":
		return a.Messages(ctx)
	case "/files":
		return a.Files(ctx)
	}
	return nil
}
