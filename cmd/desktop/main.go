package main

import (
	"context"
	"errors"
	"log"
	"time"

	"flashcards/internal/app/catalog"
	"flashcards/internal/app/session"
	"flashcards/internal/config"
	"flashcards/internal/logger"
	"flashcards/internal/random"
	"flashcards/internal/storage"
	"flashcards/internal/ui"
)

func main() {
	cfg, err := config.Init(".")

	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg.Env)

	if err != nil {
		log.Fatal(err)
	}

	defer lg.Sync()

	profileFile := storage.NewProfileFile(cfg.ProfilePath)

	profile, loadErr := profileFile.Load()

	if errors.Is(loadErr, storage.ErrMalformedProfile) {
		lg.Warn("saved profile is malformed, starting from scratch", "path", profileFile.Path(), "error", loadErr)
	} else if loadErr != nil {
		lg.Fatal("failed to load profile", "path", profileFile.Path(), "error", loadErr)
	}

	lessons, err := catalog.New(catalog.DefaultBank(), profile.CompletedLessons)

	if err != nil {
		lg.Fatal("failed to build lessons catalog", "error", err)
	}

	randSource, err := random.NewSource()

	if err != nil {
		lg.Fatal("failed to seed random source", "error", err)
	}

	s := session.New(lessons, profileFile, profile, random.NewShuffler(randSource))

	journal, err := storage.OpenJournal(context.Background(), cfg.JournalPath)

	if err != nil {
		lg.Error("answers journal is not available", "path", cfg.JournalPath, "error", err)
	} else {
		defer journal.Close()
	}

	appImpl := newQuizApp(s, journal, cfg.ReportPath, lg)

	lg.Info("starting", "profile", cfg.ProfilePath, "xp", profile.XP)

	err = ui.Run(appImpl, ui.WindowSize{Width: cfg.Window.Width, Height: cfg.Window.Height}, loadErr)

	if err != nil {
		lg.Error("ui failed", "error", err)
	}

	if journal != nil {
		err = journal.EraseOutdatedData(
			context.Background(),
			cfg.JournalMaxSessions,
			time.Now().Add(cfg.JournalRetention*-1),
		)

		if err != nil {
			lg.Warn("failed to erase outdated journal data", "error", err)
		}
	}
}
