package trivia

import "strings"

// filterQuestions keeps the questions whose text contains term, ignoring
// case, preserving input order. An empty term matches everything; callers
// treat it as "no search" before reaching this point.
func filterQuestions(term string, items []Question) []Question {
	needle := strings.ToLower(term)
	matches := make([]Question, 0, len(items))
	for _, q := range items {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}
