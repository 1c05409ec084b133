package trivia

import "errors"

// ErrNotFound marks a missing row or an empty listing page.
var ErrNotFound = errors.New("resource not found")

// Question is a stored trivia question in its client wire shape.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// Category labels a group of questions, e.g. "Science".
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuizCategory identifies the category a quiz round draws from.
// ID 0 selects every category.
type QuizCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the fields accepted when creating a question.
// Absent request fields arrive as zero values and are stored as-is.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int64
	Difficulty int32
}

// CategoryListing is the result of the categories listing operation.
type CategoryListing struct {
	Categories map[int64]string
	Total      int64
}

// QuestionListing is the result of the paginated questions listing.
// CurrentCategory is a parallel array of the category of each question on
// the page, duplicates included.
type QuestionListing struct {
	Questions       []Question
	Total           int64
	Categories      map[int64]string
	CurrentCategory []int64
}

// CategoryQuestionListing is a paginated listing restricted to one category.
// Total counts every match before pagination.
type CategoryQuestionListing struct {
	Questions []Question
	Total     int64
}

// SearchResult holds every question matching a search term.
type SearchResult struct {
	Questions       []Question
	Total           int64
	CurrentCategory []int64
}

// DeleteResult returns the refreshed listing after a deletion.
type DeleteResult struct {
	Deleted   int64
	Questions []Question
	Total     int64
}

// CreateResult returns the new row id and the refreshed first page.
type CreateResult struct {
	Created   int64
	Questions []Question
	Total     int64
}
