package domain

// LessonStatus represents the lifecycle state of a lesson.
type LessonStatus string

const (
	LessonStatusScheduled LessonStatus = "SCHEDULED"
	LessonStatusCompleted LessonStatus = "COMPLETED"
	LessonStatusCancelled LessonStatus = "CANCELLED"
)

func (s LessonStatus) String() string { return string(s) }

func (s LessonStatus) IsValid() bool {
	switch s {
	case LessonStatusScheduled, LessonStatusCompleted, LessonStatusCancelled:
		return true
	}
	return false
}

// LessonSongStatus represents a student's learning progress on a song
// within a lesson. Values are stored lowercase.
type LessonSongStatus string

const (
	LessonSongStatusToLearn    LessonSongStatus = "to_learn"
	LessonSongStatusInProgress LessonSongStatus = "in_progress"
	LessonSongStatusLearned    LessonSongStatus = "learned"
)

func (s LessonSongStatus) String() string { return string(s) }

func (s LessonSongStatus) IsValid() bool {
	switch s {
	case LessonSongStatusToLearn, LessonSongStatusInProgress, LessonSongStatusLearned:
		return true
	}
	return false
}

// MatchStatus classifies how an imported song title was resolved against
// the catalog: matched (similarity >= confidence threshold), low_confidence
// (candidate found below the threshold), or new (no candidate).
type MatchStatus string

const (
	MatchStatusMatched       MatchStatus = "matched"
	MatchStatusLowConfidence MatchStatus = "low_confidence"
	MatchStatusNew           MatchStatus = "new"
)

func (m MatchStatus) String() string { return string(m) }

func (m MatchStatus) IsValid() bool {
	switch m {
	case MatchStatusMatched, MatchStatusLowConfidence, MatchStatusNew:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleTeacher, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// CanTeach reports whether the role may own lessons and run imports.
func (r UserRole) CanTeach() bool {
	return r == UserRoleTeacher || r == UserRoleAdmin
}
