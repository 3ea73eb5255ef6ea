package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/clientportal/internal/client/gate"
	"github.com/dmitrijs2005/clientportal/internal/common"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	_, err = a.session.Register(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			log.Printf("This email is already registered")
		} else {
			log.Printf("Registration unsuccessful: %s", err.Error())
		}
		return err
	}

	log.Printf("Registered. You can now log in")
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.session.SignIn(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			log.Printf("Wrong email or password")
		} else if errors.Is(err, common.ErrorUnavailable) {
			log.Printf("Server unavailable, try again later")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successful")
	return a.Go(ctx, a.currentPath())
}

func (a *App) Logout(ctx context.Context) error {

	st := a.session.Snapshot()
	if st.Authenticated() {
		a.resolver.Forget(st.Identity.ID)
		a.cache.Unmount(st.Identity.ID)
	}

	a.closeConversationView()
	a.session.SignOut(ctx)
	a.setPath(gate.PathHome)

	log.Printf("Signed out")
	return nil
}
