// Package scoring turns questionnaire answers into classification levels,
// policy flags, and network exposure.
package scoring

import "github.com/eivindstn/helsegrad/internal/catalog"

// Answers maps question ID to the selected option IDs. Single-select
// questions hold at most one entry.
type Answers map[string][]string

// NewAnswers returns an empty answer set.
func NewAnswers() Answers {
	return make(Answers)
}

// Selected returns the option IDs chosen for a question.
func (a Answers) Selected(questionID string) []string {
	return a[questionID]
}

// Includes reports whether the given option is among the selections for a
// question.
func (a Answers) Includes(questionID, optionID string) bool {
	for _, id := range a[questionID] {
		if id == optionID {
			return true
		}
	}
	return false
}

// Answered reports whether the question has at least one selection.
func (a Answers) Answered(questionID string) bool {
	return len(a[questionID]) > 0
}

// AnsweredCount returns the number of questions with at least one selection.
func (a Answers) AnsweredCount() int {
	n := 0
	for _, ids := range a {
		if len(ids) > 0 {
			n++
		}
	}
	return n
}

// Set replaces the selections for a question.
func (a Answers) Set(questionID string, optionIDs ...string) {
	if len(optionIDs) == 0 {
		delete(a, questionID)
		return
	}
	a[questionID] = optionIDs
}

// Toggle flips an option for the given question. Single-select questions
// replace their selection. Multi-select questions add or remove the option,
// with "none" being mutually exclusive with every other option.
func (a Answers) Toggle(q *catalog.Question, optionID string) {
	if !q.MultiSelect {
		a[q.ID] = []string{optionID}
		return
	}

	current := a[q.ID]
	for i, id := range current {
		if id == optionID {
			a[q.ID] = append(current[:i:i], current[i+1:]...)
			if len(a[q.ID]) == 0 {
				delete(a, q.ID)
			}
			return
		}
	}

	if optionID == "none" {
		a[q.ID] = []string{"none"}
		return
	}
	// Adding a real option clears a previous "none".
	kept := make([]string, 0, len(current)+1)
	for _, id := range current {
		if id != "none" {
			kept = append(kept, id)
		}
	}
	a[q.ID] = append(kept, optionID)
}

// Clone returns a deep copy of the answer set.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for q, ids := range a {
		cp := make([]string, len(ids))
		copy(cp, ids)
		out[q] = cp
	}
	return out
}
