package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/vitahealth/credvault/internal/client/config"
	"github.com/vitahealth/credvault/internal/client/models"
	"github.com/vitahealth/credvault/internal/client/services"
	"github.com/vitahealth/credvault/internal/client/storage"
	"github.com/vitahealth/credvault/internal/logging"
)

// App is the interactive client. It holds the auth service, the in-memory
// mirror of the current session, and the input reader.
type App struct {
	config      *config.Config
	authService services.AuthService
	session     *models.PublicAccount
	reader      *bufio.Reader
	log         logging.Logger
	db          *sql.DB
}

// NewApp opens the local vault, optionally seeds demo accounts, validates
// any persisted session, and restores it into memory.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	as := services.NewAuthService(db)

	if c.SeedDemo {
		if err := as.SeedDemoAccounts(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	// revalidate once at startup; between validations the persisted
	// session is trusted as-is
	if err := as.ValidateSession(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	session, err := as.CurrentSession(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if session != nil {
		log.Info(ctx, "restored session", "email", session.Email, "role", session.Role)
	}

	return &App{
		config:      c,
		authService: as,
		session:     session,
		reader:      bufio.NewReader(os.Stdin),
		log:         log,
		db:          db,
	}, nil
}

// Close releases the underlying database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Email, a.session.Role)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Welcome to CredVault CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
