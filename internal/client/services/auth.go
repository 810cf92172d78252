// Package services contains application services for the CredVault client.
// This file defines the credential store and session manager: registration,
// login, logout, and tracking of the single current session.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitahealth/credvault/internal/client/models"
	"github.com/vitahealth/credvault/internal/client/repositories/kv"
	"github.com/vitahealth/credvault/internal/common"
	"github.com/vitahealth/credvault/internal/cryptox"
	"github.com/vitahealth/credvault/internal/dbx"
)

// Durable storage keys. The account list and the session are each rewritten
// as a whole on mutation, so a crash between compute and persist leaves the
// prior state intact.
const (
	usersKey   = "users"
	sessionKey = "session"
)

// RegisterParams carries the input for account creation. Password is a byte
// slice so the caller can wipe it after the call returns.
type RegisterParams struct {
	Name     string
	Email    string
	Password []byte
	Role     models.Role

	// Optional profile fields.
	Avatar         string
	Phone          string
	DateOfBirth    string
	Specialization string
	LicenseNumber  string
}

// AuthService defines the credential store and session manager.
//
// Contract:
//   - Register: create an account, establish it as the current session.
//   - Login: verify credentials, establish the account as the current session.
//   - Logout: clear the current session; idempotent.
//   - CurrentSession: pure read of the persisted session, (nil, nil) when
//     anonymous.
//   - ValidateSession: startup check that the persisted session still refers
//     to an existing account.
//   - SeedDemoAccounts: populate an empty store with development accounts.
//
// All methods honor context cancellation; Register and Login are the two
// operations a caller may abandon mid-flight, in which case the result is
// simply discarded.
type AuthService interface {
	Register(ctx context.Context, p RegisterParams) (*models.PublicAccount, error)
	Login(ctx context.Context, email string, password []byte) (*models.PublicAccount, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.PublicAccount, error)
	ValidateSession(ctx context.Context) error
	SeedDemoAccounts(ctx context.Context) error
}

// authService is the concrete AuthService backed by the local key-value
// store. It assumes a single logical writer: one client process mutating the
// account list and session at a time.
type authService struct {
	db *sql.DB
}

// NewAuthService constructs an AuthService bound to the given database.
func NewAuthService(db *sql.DB) AuthService {
	return &authService{db: db}
}

func (a *authService) getRepo(db dbx.DBTX) kv.Repository {
	return kv.NewSQLiteRepository(db)
}

// storageErr wraps a low-level read/write failure into the sentinel the UI
// renders as a generic "try again".
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
}

func loadAccounts(ctx context.Context, repo kv.Repository) ([]models.Account, error) {
	raw, err := repo.Get(ctx, usersKey)
	if err != nil {
		return nil, storageErr(err)
	}
	if raw == nil {
		return nil, nil
	}
	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, storageErr(err)
	}
	return accounts, nil
}

func saveAccounts(ctx context.Context, repo kv.Repository, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return storageErr(err)
	}
	if err := repo.Set(ctx, usersKey, raw); err != nil {
		return storageErr(err)
	}
	return nil
}

func saveSession(ctx context.Context, repo kv.Repository, pub *models.PublicAccount) error {
	raw, err := json.Marshal(pub)
	if err != nil {
		return storageErr(err)
	}
	if err := repo.Set(ctx, sessionKey, raw); err != nil {
		return storageErr(err)
	}
	return nil
}

// Register creates a new account and establishes it as the current session.
//
// The store enforces only email uniqueness (exact match); name and password
// emptiness are the calling UI's concern, mirroring where validation sits in
// the rest of the product. On duplicate email the transaction rolls back and
// nothing is persisted.
func (a *authService) Register(ctx context.Context, p RegisterParams) (*models.PublicAccount, error) {
	if p.Email == "" {
		return nil, fmt.Errorf("%w: email must not be empty", common.ErrorValidation)
	}
	if !p.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, p.Role)
	}

	salt := cryptox.NewSalt()
	account := models.Account{
		Id:             uuid.NewString(),
		Name:           p.Name,
		Email:          p.Email,
		Role:           p.Role,
		CreatedAt:      time.Now().UTC(),
		Salt:           salt,
		Verifier:       cryptox.HashPassword(p.Password, salt),
		Avatar:         p.Avatar,
		Phone:          p.Phone,
		DateOfBirth:    p.DateOfBirth,
		Specialization: p.Specialization,
		LicenseNumber:  p.LicenseNumber,
	}

	pub := account.Public()

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getRepo(tx)

		accounts, err := loadAccounts(ctx, repo)
		if err != nil {
			return err
		}
		for _, existing := range accounts {
			if existing.Email == p.Email {
				return common.ErrDuplicateEmail
			}
		}

		accounts = append(accounts, account)
		if err := saveAccounts(ctx, repo, accounts); err != nil {
			return err
		}
		return saveSession(ctx, repo, pub)
	})
	if err != nil {
		return nil, err
	}

	return pub, nil
}

// Login looks up the stored account by exact email match and verifies the
// password against the stored salt/verifier pair. A missing account and a
// wrong password both yield ErrInvalidCredentials so callers cannot probe
// for account existence. On success the matched account becomes the current
// session.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.PublicAccount, error) {
	repo := a.getRepo(a.db)

	accounts, err := loadAccounts(ctx, repo)
	if err != nil {
		return nil, err
	}

	var found *models.Account
	for i := range accounts {
		if accounts[i].Email == email {
			found = &accounts[i]
			break
		}
	}
	if found == nil || !cryptox.VerifyPassword(password, found.Salt, found.Verifier) {
		return nil, common.ErrInvalidCredentials
	}

	pub := found.Public()
	if err := saveSession(ctx, repo, pub); err != nil {
		return nil, err
	}
	return pub, nil
}

// Logout clears the current session. Calling it with no active session is a
// no-op, not an error.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.getRepo(a.db).Delete(ctx, sessionKey); err != nil {
		return storageErr(err)
	}
	return nil
}

// CurrentSession returns the persisted session, or (nil, nil) when
// anonymous. It does not revalidate the account against the store on every
// read; see ValidateSession.
func (a *authService) CurrentSession(ctx context.Context) (*models.PublicAccount, error) {
	raw, err := a.getRepo(a.db).Get(ctx, sessionKey)
	if err != nil {
		return nil, storageErr(err)
	}
	if raw == nil {
		return nil, nil
	}
	var pub models.PublicAccount
	if err := json.Unmarshal(raw, &pub); err != nil {
		return nil, storageErr(err)
	}
	return &pub, nil
}

// ValidateSession drops a persisted session whose account no longer exists
// in the store. Intended to run once at process start; between validations
// the session is trusted as-is.
func (a *authService) ValidateSession(ctx context.Context) error {
	pub, err := a.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if pub == nil {
		return nil
	}

	repo := a.getRepo(a.db)
	accounts, err := loadAccounts(ctx, repo)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if account.Id == pub.Id {
			return nil
		}
	}

	if err := repo.Delete(ctx, sessionKey); err != nil {
		return storageErr(err)
	}
	return nil
}
