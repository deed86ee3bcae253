// Command import-songs runs the CSV song import pipeline from the command
// line, outside the HTTP server. It authenticates as an existing teacher
// by email and imports lesson history for one student.
//
// Flags:
//
//	--file           path to the CSV file (date,title,author)
//	--teacher        email of the teacher to run the import as
//	--student        UUID of the student
//	--validate-only  report matches without writing anything
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/adapter/postgres"
	lessonrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/lesson"
	lessonsongrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/lessonsong"
	songrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/song"
	userrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/user"
	"github.com/tabline/tabline-backend/internal/app"
	"github.com/tabline/tabline-backend/internal/app/csvsongs"
	"github.com/tabline/tabline-backend/internal/config"
	"github.com/tabline/tabline-backend/internal/service/songimport"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

func main() {
	fileFlag := flag.String("file", "", "path to the CSV file")
	teacherFlag := flag.String("teacher", "", "email of the teacher to run the import as")
	studentFlag := flag.String("student", "", "UUID of the student")
	validateFlag := flag.Bool("validate-only", false, "report matches without writing anything")
	flag.Parse()

	if *fileFlag == "" || *teacherFlag == "" || *studentFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	studentID, err := uuid.Parse(*studentFlag)
	if err != nil {
		log.Fatalf("invalid student UUID: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	file, err := os.Open(*fileFlag)
	if err != nil {
		logger.Error("open CSV file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	rows, err := csvsongs.Parse(file)
	file.Close()
	if err != nil {
		logger.Error("parse CSV file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	teacher, err := users.GetByEmail(ctx, *teacherFlag)
	if err != nil {
		logger.Error("look up teacher", slog.String("email", *teacherFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx = ctxutil.WithUserID(ctx, teacher.ID)
	ctx = ctxutil.WithRole(ctx, string(teacher.Role))

	svc := songimport.NewService(logger, songimport.Config{
		MatchThreshold:  cfg.Import.MatchThreshold,
		MatchConfidence: cfg.Import.MatchConfidence,
		MaxRows:         cfg.Import.MaxRows,
	}, songrepo.New(pool), lessonrepo.New(pool), lessonsongrepo.New(pool))

	result, err := svc.ImportSongs(ctx, songimport.ImportInput{
		StudentID:    studentID,
		Rows:         rows,
		ValidateOnly: *validateFlag,
	})
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, row := range result.Results {
		if !row.Success {
			logger.Warn("row failed",
				slog.Int("row", row.RowIndex),
				slog.String("title", row.Title),
				slog.String("error", row.Error),
			)
		}
	}

	logger.Info("import finished",
		slog.Bool("validate_only", *validateFlag),
		slog.Int("total_rows", result.Summary.TotalRows),
		slog.Int("songs_matched", result.Summary.SongsMatched),
		slog.Int("songs_created", result.Summary.SongsCreated),
		slog.Int("lessons_created", result.Summary.LessonsCreated),
		slog.Int("lessons_existing", result.Summary.LessonsExisting),
		slog.Int("errors", result.Summary.Errors),
	)

	if result.Summary.Errors > 0 {
		os.Exit(1)
	}
}
