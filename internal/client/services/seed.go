package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitahealth/credvault/internal/client/models"
	"github.com/vitahealth/credvault/internal/cryptox"
	"github.com/vitahealth/credvault/internal/dbx"
)

// demoAccount mirrors the development accounts the VitaHealth front end
// ships with so a fresh install has something to log in to.
type demoAccount struct {
	email    string
	password string
	role     models.Role
}

var demoAccounts = []demoAccount{
	{email: "mary@vitahealth.com", password: "password123", role: models.RolePatient},
	{email: "raphel@vitahealth.com", password: "password123", role: models.RoleDoctor},
	{email: "rejoice@test.com", password: "test123", role: models.RolePatient},
	{email: "dr.smith@test.com", password: "test123", role: models.RoleDoctor},
}

// demoName derives a display name from the email's local part, prefixing
// doctors with "Dr.".
func demoName(email string, role models.Role) string {
	name, _, _ := strings.Cut(email, "@")
	if role == models.RoleDoctor {
		return fmt.Sprintf("Dr. %s", name)
	}
	return name
}

// SeedDemoAccounts populates an empty store with the standard development
// accounts. A store that already holds any account is left untouched, and no
// session is established.
func (a *authService) SeedDemoAccounts(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getRepo(tx)

		accounts, err := loadAccounts(ctx, repo)
		if err != nil {
			return err
		}
		if len(accounts) > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, d := range demoAccounts {
			salt := cryptox.NewSalt()
			accounts = append(accounts, models.Account{
				Id:        uuid.NewString(),
				Name:      demoName(d.email, d.role),
				Email:     d.email,
				Role:      d.role,
				CreatedAt: now,
				Salt:      salt,
				Verifier:  cryptox.HashPassword([]byte(d.password), salt),
			})
		}

		return saveAccounts(ctx, repo, accounts)
	})
}
