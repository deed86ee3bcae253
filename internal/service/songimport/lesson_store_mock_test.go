package songimport

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

var _ lessonStore = &lessonStoreMock{}

type lessonStoreMock struct {
	FindByDayFunc func(ctx context.Context, teacherID, studentID uuid.UUID, day time.Time) (*domain.Lesson, error)
	InsertFunc    func(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)

	calls struct {
		FindByDay []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			StudentID uuid.UUID
			Day       time.Time
		}
		Insert []struct {
			Ctx    context.Context
			Lesson *domain.Lesson
		}
	}
	lockFindByDay sync.RWMutex
	lockInsert    sync.RWMutex
}

func (mock *lessonStoreMock) FindByDay(ctx context.Context, teacherID, studentID uuid.UUID, day time.Time) (*domain.Lesson, error) {
	if mock.FindByDayFunc == nil {
		panic("lessonStoreMock.FindByDayFunc: method is nil but lessonStore.FindByDay was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		StudentID uuid.UUID
		Day       time.Time
	}{Ctx: ctx, TeacherID: teacherID, StudentID: studentID, Day: day}
	mock.lockFindByDay.Lock()
	mock.calls.FindByDay = append(mock.calls.FindByDay, callInfo)
	mock.lockFindByDay.Unlock()
	return mock.FindByDayFunc(ctx, teacherID, studentID, day)
}

func (mock *lessonStoreMock) FindByDayCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	StudentID uuid.UUID
	Day       time.Time
} {
	mock.lockFindByDay.RLock()
	calls := mock.calls.FindByDay
	mock.lockFindByDay.RUnlock()
	return calls
}

func (mock *lessonStoreMock) Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	if mock.InsertFunc == nil {
		panic("lessonStoreMock.InsertFunc: method is nil but lessonStore.Insert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Lesson *domain.Lesson
	}{Ctx: ctx, Lesson: lesson}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, lesson)
}

func (mock *lessonStoreMock) InsertCalls() []struct {
	Ctx    context.Context
	Lesson *domain.Lesson
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}
