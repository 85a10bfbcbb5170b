package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/piiguard/internal/config"
	"github.com/dmitrijs2005/piiguard/internal/cryptox"
	"github.com/dmitrijs2005/piiguard/internal/keystore"
	"github.com/dmitrijs2005/piiguard/internal/logging"
	"github.com/dmitrijs2005/piiguard/internal/pseudo"
	"github.com/dmitrijs2005/piiguard/internal/repositories/repomanager"
	"github.com/dmitrijs2005/piiguard/internal/repositories/users"
	"github.com/dmitrijs2005/piiguard/internal/transform"
)

const (
	CmdInit         = "init"
	CmdList         = "list"
	CmdPseudonymize = "pseudonymize"
	CmdEncrypt      = "encrypt"
	CmdDecrypt      = "decrypt"
	CmdSelfCheck    = "selfcheck"
	CmdDemo         = "demo"
)

// ErrSelfCheckFailed is returned by Run when the self-check finds a record
// whose email does not look encrypted.
var ErrSelfCheckFailed = errors.New("encryption self-check failed")

// ErrUnknownCommand is returned by Run for a command it does not know.
var ErrUnknownCommand = errors.New("unknown command")

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	manager repomanager.RepositoryManager
	codec   *cryptox.Codec
	gen     transform.PersonGenerator
	driver  *transform.Driver
	out     io.Writer
}

// New obtains the key, builds the codec and opens the record store named
// by cfg. Key errors wrap common.ErrKeyRead or common.ErrKeyWrite; store
// errors wrap common.ErrStore. Nothing is opened when the key cannot be
// obtained.
func New(ctx context.Context, cfg *config.Config, logger logging.Logger, out io.Writer) (*App, error) {
	policy, err := transform.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}

	key, err := keystore.Obtain(cfg.KeyPath)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "key loaded", "path", cfg.KeyPath, "fingerprint", keystore.Fingerprint(key))

	codec, err := cryptox.NewCodec(key)
	if err != nil {
		return nil, err
	}

	db, m, err := repomanager.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "record store opened", "postgres", repomanager.IsPostgres(cfg.DatabasePath))

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		manager: m,
		codec:   codec,
		gen:     pseudo.New(),
		driver:  transform.NewDriver(policy, logger),
		out:     out,
	}, nil
}

// Close releases the record store.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) users() users.Repository {
	return a.manager.Users(a.db)
}

var commands = []string{CmdInit, CmdList, CmdPseudonymize, CmdEncrypt, CmdDecrypt, CmdSelfCheck, CmdDemo}

// IsCommand reports whether Run accepts name. The empty name selects the demo.
func IsCommand(name string) bool {
	return name == "" || slices.Contains(commands, name)
}

// CheckCommand returns an error wrapping ErrUnknownCommand when Run would
// reject name.
func CheckCommand(name string) error {
	if IsCommand(name) {
		return nil
	}
	return fmt.Errorf("%w %q (want one of %s)", ErrUnknownCommand, name, strings.Join(commands, ", "))
}

// Run executes one operator command. An empty command runs the demo.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case CmdInit:
		return a.InitAndSeed(ctx)
	case CmdList:
		return a.List(ctx)
	case CmdPseudonymize:
		_, err := a.PseudonymizeAll(ctx)
		return err
	case CmdEncrypt:
		_, err := a.EncryptAllEmails(ctx)
		return err
	case CmdDecrypt:
		return a.DecryptAndDisplay(ctx)
	case CmdSelfCheck:
		ok, err := a.SelfCheck(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSelfCheckFailed
		}
		return nil
	case CmdDemo, "":
		return a.Demo(ctx)
	}
	return CheckCommand(command)
}
