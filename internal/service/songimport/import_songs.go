package songimport

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// cachedSong remembers how a title was resolved earlier in the same run.
// The cache is keyed by the lowercased, trimmed title and lives only for
// the duration of one import.
type cachedSong struct {
	id           uuid.UUID
	matchStatus  domain.MatchStatus
	matchedTitle string
	score        *float64
}

// importRun carries the mutable state of one import invocation.
type importRun struct {
	input   ImportInput
	results []RowResult
	summary Summary
	cache   map[string]cachedSong
}

// ImportSongs reconciles parsed CSV rows against the song catalog and the
// student's lesson history.
//
// Rows are processed in date groups. Each group gets one lesson: an
// existing lesson on that calendar day is reused, otherwise a completed
// lesson is created. Each row's title is fuzzy-matched against the
// catalog; unmatched titles become new songs. Resolved songs are linked
// to the group's lesson idempotently.
//
// A failing row or group never aborts the run. With ValidateOnly set, no
// writes happen: rows report how they would resolve.
func (s *Service) ImportSongs(ctx context.Context, input ImportInput) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg.MaxRows); err != nil {
		return nil, err
	}

	run := &importRun{
		input:   input,
		results: make([]RowResult, 0, len(input.Rows)),
		summary: Summary{TotalRows: len(input.Rows)},
		cache:   make(map[string]cachedSong),
	}

	groups := groupRowsByDate(input.Rows, s.now())

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.processGroup(ctx, run, userID, group)
	}

	s.log.Info("songs import finished",
		"teacher_id", userID,
		"student_id", input.StudentID,
		"validate_only", input.ValidateOnly,
		"total_rows", run.summary.TotalRows,
		"songs_matched", run.summary.SongsMatched,
		"songs_created", run.summary.SongsCreated,
		"lessons_created", run.summary.LessonsCreated,
		"errors", run.summary.Errors,
	)

	return &ImportResult{Results: run.results, Summary: run.summary}, nil
}

// processGroup handles all rows sharing one date: date validation, lesson
// resolution, then per-row song resolution and linking.
func (s *Service) processGroup(ctx context.Context, run *importRun, teacherID uuid.UUID, group dateGroup) {
	day, ok := normalizeDate(group.date)
	if !ok {
		s.failGroup(run, group, false, "Invalid date: "+group.date)
		return
	}

	var lessonID *uuid.UUID
	lessonCreated := false

	if !run.input.ValidateOnly {
		existing, err := s.lessons.FindByDay(ctx, teacherID, run.input.StudentID, day)
		switch {
		case err == nil:
			lessonID = &existing.ID
			run.summary.LessonsExisting++
		case errors.Is(err, domain.ErrNotFound):
			created, insErr := s.lessons.Insert(ctx, &domain.Lesson{
				ID:          uuid.New(),
				TeacherID:   teacherID,
				StudentID:   run.input.StudentID,
				Title:       ImportedLessonTitle,
				Status:      domain.LessonStatusCompleted,
				ScheduledAt: day,
			})
			if insErr != nil {
				s.failGroup(run, group, false, "Failed to create lesson: "+insErr.Error())
				return
			}
			lessonID = &created.ID
			lessonCreated = true
			run.summary.LessonsCreated++
		default:
			s.failGroup(run, group, false, "Failed to create lesson: "+err.Error())
			return
		}
	}

	for _, idx := range group.indices {
		s.processRow(ctx, run, idx, lessonID, lessonCreated)
	}
}

// processRow resolves one row's song and links it to the group's lesson.
func (s *Service) processRow(ctx context.Context, run *importRun, idx int, lessonID *uuid.UUID, lessonCreated bool) {
	row := run.input.Rows[idx]
	author := strings.TrimSpace(row.Author)
	if author == "" {
		author = domain.UnknownAuthor
	}

	result := RowResult{
		RowIndex:      idx,
		Date:          row.Date,
		Title:         row.Title,
		Author:        author,
		MatchStatus:   domain.MatchStatusNew,
		LessonCreated: lessonCreated,
	}

	key := strings.ToLower(strings.TrimSpace(row.Title))

	var songID *uuid.UUID

	if cached, ok := run.cache[key]; ok {
		id := cached.id
		songID = &id
		result.MatchStatus = cached.matchStatus
		result.MatchedSongTitle = cached.matchedTitle
		result.MatchScore = cached.score
	} else {
		matches, err := s.songs.FindSimilar(ctx, row.Title, s.cfg.MatchThreshold, 1)
		if err != nil {
			s.failRow(run, result, err.Error())
			return
		}

		if len(matches) > 0 {
			best := matches[0]
			id := best.ID
			score := best.Similarity
			songID = &id
			result.MatchScore = &score
			result.MatchedSongTitle = best.Title
			if best.Similarity >= s.cfg.MatchConfidence {
				result.MatchStatus = domain.MatchStatusMatched
				run.summary.SongsMatched++
			} else {
				result.MatchStatus = domain.MatchStatusLowConfidence
			}
		}

		if songID == nil && !run.input.ValidateOnly {
			created, err := s.songs.Insert(ctx, &domain.Song{
				ID:     uuid.New(),
				Title:  row.Title,
				Author: author,
			})
			if err != nil {
				s.failRow(run, result, "Failed to create song: "+err.Error())
				return
			}
			songID = &created.ID
			result.SongCreated = true
			run.summary.SongsCreated++
		}

		if songID != nil {
			run.cache[key] = cachedSong{
				id:           *songID,
				matchStatus:  result.MatchStatus,
				matchedTitle: result.MatchedSongTitle,
				score:        result.MatchScore,
			}
		}
	}

	if !run.input.ValidateOnly && songID != nil && lessonID != nil {
		err := s.lessonSongs.Upsert(ctx, &domain.LessonSong{
			LessonID: *lessonID,
			SongID:   *songID,
			Status:   domain.LessonSongStatusToLearn,
		})
		if err != nil {
			s.failRow(run, result, err.Error())
			return
		}
	}

	result.Success = true
	result.SongID = songID
	result.LessonID = lessonID
	run.results = append(run.results, result)
}

// failGroup records a failure result for every row in the group. The raw
// author is echoed back untouched since the row never got resolved.
func (s *Service) failGroup(run *importRun, group dateGroup, lessonCreated bool, msg string) {
	for _, idx := range group.indices {
		row := run.input.Rows[idx]
		run.results = append(run.results, RowResult{
			RowIndex:      idx,
			Date:          row.Date,
			Title:         row.Title,
			Author:        row.Author,
			Success:       false,
			Error:         msg,
			MatchStatus:   domain.MatchStatusNew,
			LessonCreated: lessonCreated,
		})
		run.summary.Errors++
	}
}

// failRow records a failure result for a single row.
func (s *Service) failRow(run *importRun, result RowResult, msg string) {
	result.Success = false
	result.Error = msg
	result.SongID = nil
	result.LessonID = nil
	run.results = append(run.results, result)
	run.summary.Errors++
}
