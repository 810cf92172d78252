package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vitahealth/credvault/internal/client/models"
	"github.com/vitahealth/credvault/internal/client/services"
	"github.com/vitahealth/credvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for profile data and credentials and attempts to create
// a new account. Expected failures (duplicate email, validation) are
// rendered inline next to the offending field rather than returned.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println("name: must not be empty")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		fmt.Println("email: must not be empty")
		return nil
	}

	roleText, err := getSimpleText(a.reader, "Enter role (patient/doctor)", os.Stdout)
	if err != nil {
		return err
	}
	role := models.Role(roleText)
	if !role.Valid() {
		fmt.Println("role: must be patient or doctor")
		return nil
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		fmt.Println("password: must not be empty")
		return nil
	}

	pub, err := a.authService.Register(ctx, services.RegisterParams{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Println("email: already registered")
			return nil
		case errors.Is(err, common.ErrStorageUnavailable):
			fmt.Println("Something went wrong, please try again")
			return nil
		}
		return err
	}

	a.session = pub
	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and tries to authenticate. A failed match
// is reported without distinguishing an unknown email from a wrong
// password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	pub, err := a.authService.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Println("Invalid email or password")
			return nil
		case errors.Is(err, common.ErrStorageUnavailable):
			fmt.Println("Something went wrong, please try again")
			return nil
		}
		return err
	}

	a.session = pub
	a.log.Info(ctx, "logged in", "email", pub.Email, "role", pub.Role)
	return nil
}

// Logout clears the durable session and the in-memory mirror.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Println("Logged out")
	return nil
}

// WhoAmI prints the current session, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	pub, err := a.authService.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if pub == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> — %s, registered %s\n",
		pub.Name, pub.Email, pub.Role, pub.CreatedAt.Format("2006-01-02"))
	return nil
}
