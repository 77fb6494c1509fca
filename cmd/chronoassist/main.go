package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mwhite/chronoassist/internal/cli"
	"github.com/mwhite/chronoassist/internal/cli/formatter"
	"github.com/mwhite/chronoassist/internal/config"
	"github.com/mwhite/chronoassist/internal/db"
	"github.com/mwhite/chronoassist/internal/identity"
	"github.com/mwhite/chronoassist/internal/llm"
	"github.com/mwhite/chronoassist/internal/repository"
	"github.com/mwhite/chronoassist/internal/script"
	"github.com/mwhite/chronoassist/internal/service"
	"github.com/mwhite/chronoassist/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	userID, err := identity.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolving user identity: %w", err)
	}

	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	notesRepo := repository.NewSQLiteNotesRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	provisionRepo := repository.NewSQLiteProvisionRepo(database)

	// Proposal replacement is delete-then-insert and imports are multi-row;
	// the transactional wrappers keep a failed write from committing half a
	// batch.
	uow := db.NewSQLiteUnitOfWork(database)
	historicalRepo := repository.NewTxHistoricalRepo(database, uow)
	proposedRepo := repository.NewTxProposedRepo(database, uow)

	// Action log
	var observer service.ActionObserver = service.NoopActionObserver{}
	if cfg.Log.Path != "" {
		logFile, err := os.OpenFile(cfg.Log.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		observer = service.NewActionLogObserver(logFile)
	}

	// LLM client
	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, llmObserver)
	suggester := suggest.NewService(llmClient)

	// External scripts
	scriptLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	runner := script.ExecRunner{Timeout: time.Duration(cfg.Scripts.TimeoutSecond) * time.Second}
	scraper := script.NewScraper(runner, cfg.Scripts.Command, cfg.Scripts.ScrapePath, scriptLogger)
	submitter := script.NewSubmitter(runner, cfg.Scripts.Command, cfg.Scripts.SubmitPath, scriptLogger)

	// Wire services
	settingsSvc := service.NewSettingsService(settingsRepo)
	app := &cli.App{
		Notes:      service.NewNotesService(notesRepo),
		Settings:   settingsSvc,
		Proposals:  service.NewProposalService(notesRepo, settingsSvc, historicalRepo, proposedRepo, suggester, observer),
		History:    service.NewHistoryService(historicalRepo, settingsSvc, scraper, observer),
		Submission: service.NewSubmissionService(proposedRepo, historicalRepo, submitter, observer),
		UserID:     userID,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	if err := service.NewUserService(provisionRepo).Ensure(context.Background(), userID); err != nil {
		return err
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
