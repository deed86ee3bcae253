package song

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

var _ songRepo = &songRepoMock{}

type songRepoMock struct {
	FindSimilarFunc func(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error)
	InsertFunc      func(ctx context.Context, song *domain.Song) (*domain.Song, error)
	GetByIDFunc     func(ctx context.Context, songID uuid.UUID) (*domain.Song, error)
	ListFunc        func(ctx context.Context, search *string, limit, offset int) ([]domain.Song, int, error)

	calls struct {
		FindSimilar []struct {
			Ctx        context.Context
			Title      string
			Threshold  float64
			MaxResults int
		}
		Insert []struct {
			Ctx  context.Context
			Song *domain.Song
		}
		GetByID []struct {
			Ctx    context.Context
			SongID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Search *string
			Limit  int
			Offset int
		}
	}
	lockFindSimilar sync.RWMutex
	lockInsert      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
}

func (mock *songRepoMock) FindSimilar(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error) {
	if mock.FindSimilarFunc == nil {
		panic("songRepoMock.FindSimilarFunc: method is nil but songRepo.FindSimilar was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Title      string
		Threshold  float64
		MaxResults int
	}{Ctx: ctx, Title: title, Threshold: threshold, MaxResults: maxResults}
	mock.lockFindSimilar.Lock()
	mock.calls.FindSimilar = append(mock.calls.FindSimilar, callInfo)
	mock.lockFindSimilar.Unlock()
	return mock.FindSimilarFunc(ctx, title, threshold, maxResults)
}

func (mock *songRepoMock) FindSimilarCalls() []struct {
	Ctx        context.Context
	Title      string
	Threshold  float64
	MaxResults int
} {
	mock.lockFindSimilar.RLock()
	calls := mock.calls.FindSimilar
	mock.lockFindSimilar.RUnlock()
	return calls
}

func (mock *songRepoMock) Insert(ctx context.Context, song *domain.Song) (*domain.Song, error) {
	if mock.InsertFunc == nil {
		panic("songRepoMock.InsertFunc: method is nil but songRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Song *domain.Song
	}{Ctx: ctx, Song: song}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, song)
}

func (mock *songRepoMock) InsertCalls() []struct {
	Ctx  context.Context
	Song *domain.Song
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *songRepoMock) GetByID(ctx context.Context, songID uuid.UUID) (*domain.Song, error) {
	if mock.GetByIDFunc == nil {
		panic("songRepoMock.GetByIDFunc: method is nil but songRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		SongID uuid.UUID
	}{Ctx: ctx, SongID: songID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, songID)
}

func (mock *songRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	SongID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *songRepoMock) List(ctx context.Context, search *string, limit, offset int) ([]domain.Song, int, error) {
	if mock.ListFunc == nil {
		panic("songRepoMock.ListFunc: method is nil but songRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Search *string
		Limit  int
		Offset int
	}{Ctx: ctx, Search: search, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, search, limit, offset)
}

func (mock *songRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Search *string
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
