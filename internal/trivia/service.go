package trivia

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// DefaultPageSize is the listing window used when no override is configured.
const DefaultPageSize = 10

type questionStore interface {
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	InsertQuestion(ctx context.Context, q NewQuestion) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) error
}

type categoryStore interface {
	ListCategories(ctx context.Context) ([]Category, error)
	CountCategories(ctx context.Context) (int64, error)
}

// Service implements the listing, mutation and quiz-selection operations
// over the question and category stores. It holds no state of its own;
// every call fetches fresh rows.
type Service struct {
	questions  questionStore
	categories categoryStore
	pageSize   int
	pick       func(n int) int
	logger     zerolog.Logger
}

// ServiceOptions tunes listing and selection behavior.
type ServiceOptions struct {
	// PageSize bounds each listing window; DefaultPageSize when zero.
	PageSize int
	// Pick overrides the uniform random draw, for deterministic tests.
	Pick func(n int) int
}

func NewService(questions questionStore, categories categoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	pick := opts.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return &Service{
		questions:  questions,
		categories: categories,
		pageSize:   size,
		pick:       pick,
		logger:     logger.With().Str("component", "trivia").Logger(),
	}
}

// ListCategories returns the id→type mapping for every category plus the
// store-wide count. ErrNotFound when the collection is empty.
func (s *Service) ListCategories(ctx context.Context) (CategoryListing, error) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return CategoryListing{}, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return CategoryListing{}, ErrNotFound
	}
	total, err := s.categories.CountCategories(ctx)
	if err != nil {
		return CategoryListing{}, fmt.Errorf("count categories: %w", err)
	}
	return CategoryListing{Categories: categoryMap(cats), Total: total}, nil
}

// ListQuestions returns one page of the full question listing together with
// the store-wide total, the category mapping, and the parallel category list
// for the page. ErrNotFound when the requested page is empty, which also
// covers out-of-range page numbers.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionListing, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return QuestionListing{}, fmt.Errorf("list questions: %w", err)
	}
	window := Paginate(page, s.pageSize, all)
	if len(window) == 0 {
		return QuestionListing{}, ErrNotFound
	}
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		return QuestionListing{}, fmt.Errorf("list categories: %w", err)
	}
	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return QuestionListing{}, fmt.Errorf("count questions: %w", err)
	}
	return QuestionListing{
		Questions:       window,
		Total:           total,
		Categories:      categoryMap(cats),
		CurrentCategory: categoryColumn(window),
	}, nil
}

// ListQuestionsByCategory pages through the questions of one category.
// Total counts every match before pagination.
func (s *Service) ListQuestionsByCategory(ctx context.Context, categoryID int64, page int) (CategoryQuestionListing, error) {
	matches, err := s.questions.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return CategoryQuestionListing{}, fmt.Errorf("list questions by category: %w", err)
	}
	window := Paginate(page, s.pageSize, matches)
	if len(window) == 0 {
		return CategoryQuestionListing{}, ErrNotFound
	}
	return CategoryQuestionListing{Questions: window, Total: int64(len(matches))}, nil
}

// DeleteQuestion removes one question and returns the refreshed listing for
// the requested page. ErrNotFound when no question has that id.
func (s *Service) DeleteQuestion(ctx context.Context, id int64, page int) (DeleteResult, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		return DeleteResult{}, err
	}
	remaining, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("refresh listing: %w", err)
	}
	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("count questions: %w", err)
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")
	return DeleteResult{
		Deleted:   id,
		Questions: Paginate(page, s.pageSize, remaining),
		Total:     total,
	}, nil
}

// CreateQuestion inserts a new question and returns its id alongside the
// refreshed first listing page.
func (s *Service) CreateQuestion(ctx context.Context, input NewQuestion) (CreateResult, error) {
	id, err := s.questions.InsertQuestion(ctx, input)
	if err != nil {
		return CreateResult{}, fmt.Errorf("insert question: %w", err)
	}
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("refresh listing: %w", err)
	}
	total, err := s.questions.CountQuestions(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("count questions: %w", err)
	}
	s.logger.Info().Int64("question_id", id).Msg("question created")
	return CreateResult{
		Created:   id,
		Questions: Paginate(1, s.pageSize, all),
		Total:     total,
	}, nil
}

// SearchQuestions returns every question whose text contains term,
// case-insensitively, with the parallel category list of the matches.
// Zero matches is a valid, empty result.
func (s *Service) SearchQuestions(ctx context.Context, term string) (SearchResult, error) {
	all, err := s.questions.ListQuestions(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("list questions: %w", err)
	}
	matches := filterQuestions(term, all)
	return SearchResult{
		Questions:       matches,
		Total:           int64(len(matches)),
		CurrentCategory: categoryColumn(matches),
	}, nil
}

// NextQuizQuestion draws one uniformly-random question from the candidate
// pool after removing previously asked ids. A nil category, like id 0,
// pools every category. A nil question with a nil error means the pool is
// exhausted.
func (s *Service) NextQuizQuestion(ctx context.Context, previous []int64, category *QuizCategory) (*Question, error) {
	var (
		pool []Question
		err  error
	)
	if category == nil || category.ID == 0 {
		pool, err = s.questions.ListQuestions(ctx)
	} else {
		pool, err = s.questions.ListQuestionsByCategory(ctx, category.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	seen := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, asked := seen[q.ID]; !asked {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	chosen := candidates[s.pick(len(candidates))]
	return &chosen, nil
}

func categoryMap(cats []Category) map[int64]string {
	m := make(map[int64]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Type
	}
	return m
}

// categoryColumn lists the category of each question in order. Clients
// consume it as a parallel array, so duplicates stay.
func categoryColumn(qs []Question) []int64 {
	out := make([]int64, len(qs))
	for i, q := range qs {
		out[i] = q.Category
	}
	return out
}
