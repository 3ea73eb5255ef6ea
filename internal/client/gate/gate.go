// Package gate decides, for one navigation request, whether the requested
// screen may render or where the user must be redirected instead. Decide is
// a pure function over snapshots; the caller performs the redirect and
// re-evaluates whenever the session or onboarding status changes.
package gate

import (
	"github.com/dmitrijs2005/clientportal/internal/client/models"
	"github.com/dmitrijs2005/clientportal/internal/client/session"
)

// Well-known paths of the routing surface.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathOnboarding = "/onboarding"
)

// Route is one navigable screen. RequiresOnboarding marks screens reachable
// only after the company setup is complete.
type Route struct {
	Path               string
	RequiresOnboarding bool
}

type Outcome int

const (
	Render Outcome = iota
	RedirectAuth
	RedirectOnboarding
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case RedirectAuth:
		return "redirect-auth"
	case RedirectOnboarding:
		return "redirect-onboarding"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Decision is the gate's verdict. From carries the originally requested
// path on redirects so the flow can return the user there afterwards.
type Decision struct {
	Outcome Outcome
	From    string
}

// Decide evaluates the gating rules in order; the first matching rule wins.
// The caller must not invoke Decide while the session is settling: a
// decision made on a half-restored session would flash a redirect to the
// sign-in screen for a user who is about to be authenticated.
func Decide(s session.State, status *models.OnboardingStatus, route Route) Decision {

	if !s.Authenticated() {
		return Decision{Outcome: RedirectAuth, From: route.Path}
	}

	// A nil status means resolution never happened; the resolver already
	// reports a failed lookup as incomplete unless completed was observed
	// earlier, so the flag can be trusted as-is.
	completed := status != nil && status.Completed

	if route.RequiresOnboarding && !completed {
		if route.Path == PathOnboarding {
			// Already on the onboarding screen; redirecting again would loop.
			return Decision{Outcome: Render}
		}
		return Decision{Outcome: RedirectOnboarding, From: route.Path}
	}

	if route.Path == PathOnboarding && completed {
		return Decision{Outcome: RedirectHome, From: route.Path}
	}

	return Decision{Outcome: Render}
}
