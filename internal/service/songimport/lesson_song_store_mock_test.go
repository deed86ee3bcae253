package songimport

import (
	"context"
	"sync"

	"github.com/tabline/tabline-backend/internal/domain"
)

var _ lessonSongStore = &lessonSongStoreMock{}

type lessonSongStoreMock struct {
	UpsertFunc func(ctx context.Context, link *domain.LessonSong) error

	calls struct {
		Upsert []struct {
			Ctx  context.Context
			Link *domain.LessonSong
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *lessonSongStoreMock) Upsert(ctx context.Context, link *domain.LessonSong) error {
	if mock.UpsertFunc == nil {
		panic("lessonSongStoreMock.UpsertFunc: method is nil but lessonSongStore.Upsert was just called")
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

func (mock *lessonSongStoreMock) UpsertCalls() []struct {
	Ctx  context.Context
	Link *domain.LessonSong
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
