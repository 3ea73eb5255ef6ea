package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/clientportal/internal/common"
)

// Onboard collects the company details and submits the one-time completion.
// On success the cached status is refreshed immediately so the gate opens
// protected screens without a stale window.
func (a *App) Onboard(ctx context.Context) error {

	st := a.session.Snapshot()
	if !st.Authenticated() {
		log.Printf("Sign in first")
		return common.ErrorUnauthorized
	}

	name, err := GetSimpleText(a.reader, "Company name", os.Stdout)
	if err != nil {
		return err
	}
	vatID, err := GetSimpleText(a.reader, "VAT id (optional)", os.Stdout)
	if err != nil {
		return err
	}
	address, err := GetSimpleText(a.reader, "Address (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.backend.CompleteOnboarding(ctx, st.Identity.ID, name, vatID, address); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Printf("Onboarding was already completed")
		} else {
			log.Printf("Onboarding failed: %s", err.Error())
			return err
		}
	}

	status := a.resolver.Refresh(ctx, st.Identity.ID)
	if status.Completed {
		log.Printf("Onboarding complete, welcome aboard")
		return a.Go(ctx, "/")
	}

	log.Printf("Onboarding is not confirmed yet, try again")
	return nil
}
