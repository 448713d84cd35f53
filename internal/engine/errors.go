package engine

import "fmt"

// ErrUnknownQuestion indicates the submitted question ID exists in
// neither bank pool nor the session's generated scenario questions.
// Fatal to the current call; the caller must not persist state.
type ErrUnknownQuestion struct {
	QuestionID string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("unknown question: %q", e.QuestionID)
}

// ErrDuplicateAnswer rejects a replayed submission for a question the
// session already answered. Non-fatal; state is unchanged and the
// caller should return the previously selected next question.
type ErrDuplicateAnswer struct {
	QuestionID string
}

func (e *ErrDuplicateAnswer) Error() string {
	return fmt.Sprintf("question already answered: %q", e.QuestionID)
}
