package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mkravets/bookshelf/internal/client/api"
	"github.com/mkravets/bookshelf/internal/shared"
)

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

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
	defer shared.WipeByteArray(password)

	user, err := a.client.Signup(ctx, userName, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Registered %s, you can now log in", user.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.client.Login(ctx, userName, password); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			log.Printf("Login unsuccessful: invalid username or password")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.userName = userName
	log.Printf("Login successful")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user, err := a.client.Me(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("%d: %s <%s>", user.ID, user.Username, user.Email))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	log.Printf("Logged out")
	return nil
}
