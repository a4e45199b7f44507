package domain

// StudyStatus is the learner's tri-state self-assessment of an item.
type StudyStatus string

const (
	StudyStatusLearned   StudyStatus = "learned"
	StudyStatusConfused  StudyStatus = "confused"
	StudyStatusUndecided StudyStatus = "undecided"
)

func (s StudyStatus) String() string { return string(s) }

func (s StudyStatus) IsValid() bool {
	switch s {
	case StudyStatusLearned, StudyStatusConfused, StudyStatusUndecided:
		return true
	}
	return false
}

// ParseStudyStatus maps a stored status to a StudyStatus.
// Anything that is not explicitly learned or confused is undecided.
func ParseStudyStatus(s string) StudyStatus {
	switch StudyStatus(s) {
	case StudyStatusLearned:
		return StudyStatusLearned
	case StudyStatusConfused:
		return StudyStatusConfused
	default:
		return StudyStatusUndecided
	}
}

// StatusForOutcome returns the status an item receives after a study answer.
func StatusForOutcome(success bool) StudyStatus {
	if success {
		return StudyStatusLearned
	}
	return StudyStatusConfused
}

// SyncAction is the kind of mutation recorded in the local sync queue.
type SyncAction string

const (
	SyncActionInsert SyncAction = "INSERT"
	SyncActionUpdate SyncAction = "UPDATE"
	SyncActionDelete SyncAction = "DELETE"
)

func (a SyncAction) String() string { return string(a) }

func (a SyncAction) IsValid() bool {
	switch a {
	case SyncActionInsert, SyncActionUpdate, SyncActionDelete:
		return true
	}
	return false
}
