package songimport

import (
	"context"
	"sync"

	"github.com/tabline/tabline-backend/internal/domain"
)

var _ songCatalog = &songCatalogMock{}

type songCatalogMock struct {
	FindSimilarFunc func(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error)
	InsertFunc      func(ctx context.Context, song *domain.Song) (*domain.Song, error)

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
	}
	lockFindSimilar sync.RWMutex
	lockInsert      sync.RWMutex
}

func (mock *songCatalogMock) FindSimilar(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error) {
	if mock.FindSimilarFunc == nil {
		panic("songCatalogMock.FindSimilarFunc: method is nil but songCatalog.FindSimilar was just called")
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

func (mock *songCatalogMock) FindSimilarCalls() []struct {
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

func (mock *songCatalogMock) Insert(ctx context.Context, song *domain.Song) (*domain.Song, error) {
	if mock.InsertFunc == nil {
		panic("songCatalogMock.InsertFunc: method is nil but songCatalog.Insert was just called")
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

func (mock *songCatalogMock) InsertCalls() []struct {
	Ctx  context.Context
	Song *domain.Song
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
