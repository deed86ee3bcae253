package lesson

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

var _ lessonSongRepo = &lessonSongRepoMock{}

type lessonSongRepoMock struct {
	UpsertFunc       func(ctx context.Context, link *domain.LessonSong) error
	ListByLessonFunc func(ctx context.Context, lessonID uuid.UUID) ([]domain.LessonSongDetail, error)
	UpdateStatusFunc func(ctx context.Context, lessonID, songID uuid.UUID, status domain.LessonSongStatus) error

	calls struct {
		Upsert []struct {
			Ctx  context.Context
			Link *domain.LessonSong
		}
		ListByLesson []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx      context.Context
			LessonID uuid.UUID
			SongID   uuid.UUID
			Status   domain.LessonSongStatus
		}
	}
	lockUpsert       sync.RWMutex
	lockListByLesson sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *lessonSongRepoMock) Upsert(ctx context.Context, link *domain.LessonSong) error {
	if mock.UpsertFunc == nil {
		panic("lessonSongRepoMock.UpsertFunc: method is nil but lessonSongRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Link *domain.LessonSong
	}{Ctx: ctx, Link: link}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, link)
}

func (mock *lessonSongRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Link *domain.LessonSong
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *lessonSongRepoMock) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.LessonSongDetail, error) {
	if mock.ListByLessonFunc == nil {
		panic("lessonSongRepoMock.ListByLessonFunc: method is nil but lessonSongRepo.ListByLesson was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockListByLesson.Lock()
	mock.calls.ListByLesson = append(mock.calls.ListByLesson, callInfo)
	mock.lockListByLesson.Unlock()
	return mock.ListByLessonFunc(ctx, lessonID)
}

func (mock *lessonSongRepoMock) ListByLessonCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockListByLesson.RLock()
	calls := mock.calls.ListByLesson
	mock.lockListByLesson.RUnlock()
	return calls
}

func (mock *lessonSongRepoMock) UpdateStatus(ctx context.Context, lessonID, songID uuid.UUID, status domain.LessonSongStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("lessonSongRepoMock.UpdateStatusFunc: method is nil but lessonSongRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
		SongID   uuid.UUID
		Status   domain.LessonSongStatus
	}{Ctx: ctx, LessonID: lessonID, SongID: songID, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, lessonID, songID, status)
}

func (mock *lessonSongRepoMock) UpdateStatusCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
	SongID   uuid.UUID
	Status   domain.LessonSongStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
