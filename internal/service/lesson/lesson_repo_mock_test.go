package lesson

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	InsertFunc        func(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	GetByIDFunc       func(ctx context.Context, lessonID uuid.UUID) (*domain.Lesson, error)
	ListByStudentFunc func(ctx context.Context, teacherID, studentID uuid.UUID, limit, offset int) ([]domain.Lesson, int, error)
	UpdateStatusFunc  func(ctx context.Context, teacherID, lessonID uuid.UUID, status domain.LessonStatus) error
	SoftDeleteFunc    func(ctx context.Context, teacherID, lessonID uuid.UUID) error

	calls struct {
		Insert []struct {
			Ctx    context.Context
			Lesson *domain.Lesson
		}
		GetByID []struct {
			Ctx      context.Context
			LessonID uuid.UUID
		}
		ListByStudent []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			StudentID uuid.UUID
			Limit     int
			Offset    int
		}
		UpdateStatus []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			LessonID  uuid.UUID
			Status    domain.LessonStatus
		}
		SoftDelete []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			LessonID  uuid.UUID
		}
	}
	lockInsert        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByStudent sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockSoftDelete    sync.RWMutex
}

func (mock *lessonRepoMock) Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	if mock.InsertFunc == nil {
		panic("lessonRepoMock.InsertFunc: method is nil but lessonRepo.Insert was just called")
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

func (mock *lessonRepoMock) InsertCalls() []struct {
	Ctx    context.Context
	Lesson *domain.Lesson
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *lessonRepoMock) GetByID(ctx context.Context, lessonID uuid.UUID) (*domain.Lesson, error) {
	if mock.GetByIDFunc == nil {
		panic("lessonRepoMock.GetByIDFunc: method is nil but lessonRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
	}{Ctx: ctx, LessonID: lessonID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, lessonID)
}

func (mock *lessonRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *lessonRepoMock) ListByStudent(ctx context.Context, teacherID, studentID uuid.UUID, limit, offset int) ([]domain.Lesson, int, error) {
	if mock.ListByStudentFunc == nil {
		panic("lessonRepoMock.ListByStudentFunc: method is nil but lessonRepo.ListByStudent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		StudentID uuid.UUID
		Limit     int
		Offset    int
	}{Ctx: ctx, TeacherID: teacherID, StudentID: studentID, Limit: limit, Offset: offset}
	mock.lockListByStudent.Lock()
	mock.calls.ListByStudent = append(mock.calls.ListByStudent, callInfo)
	mock.lockListByStudent.Unlock()
	return mock.ListByStudentFunc(ctx, teacherID, studentID, limit, offset)
}

func (mock *lessonRepoMock) ListByStudentCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	StudentID uuid.UUID
	Limit     int
	Offset    int
} {
	mock.lockListByStudent.RLock()
	calls := mock.calls.ListByStudent
	mock.lockListByStudent.RUnlock()
	return calls
}

func (mock *lessonRepoMock) UpdateStatus(ctx context.Context, teacherID, lessonID uuid.UUID, status domain.LessonStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("lessonRepoMock.UpdateStatusFunc: method is nil but lessonRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		LessonID  uuid.UUID
		Status    domain.LessonStatus
	}{Ctx: ctx, TeacherID: teacherID, LessonID: lessonID, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, teacherID, lessonID, status)
}

func (mock *lessonRepoMock) UpdateStatusCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	LessonID  uuid.UUID
	Status    domain.LessonStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *lessonRepoMock) SoftDelete(ctx context.Context, teacherID, lessonID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("lessonRepoMock.SoftDeleteFunc: method is nil but lessonRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		LessonID  uuid.UUID
	}{Ctx: ctx, TeacherID: teacherID, LessonID: lessonID}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, teacherID, lessonID)
}

func (mock *lessonRepoMock) SoftDeleteCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	LessonID  uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
