package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/abhishek622/interviewPrep/internal/selection"
	"github.com/abhishek622/interviewPrep/pkg/model"
)

// ErrFetchingQuestions is the banner shown when a collection failed to load.
const ErrFetchingQuestions = "Failed to load interview questions. Please try again later."

type Loader interface {
	LoadQuestions(ctx context.Context) ([]model.Question, error)
	LoadInterviews(ctx context.Context) ([]model.Interview, error)
}

// Catalog holds the loaded questions, sorted, and the interview records.
type Catalog struct {
	loader Loader

	mu         sync.RWMutex
	questions  []model.Question
	byID       map[int64]model.Question
	interviews []model.Interview
	loadErr    string
}

func New(loader Loader) *Catalog {
	return &Catalog{
		loader:     loader,
		questions:  []model.Question{},
		byID:       map[int64]model.Question{},
		interviews: []model.Interview{},
	}
}

// Refresh loads both collections in parallel and swaps them in.
func (c *Catalog) Refresh(ctx context.Context) error {
	var (
		wg                  sync.WaitGroup
		questions           []model.Question
		interviews          []model.Interview
		questionErr, ivsErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		questions, questionErr = c.loader.LoadQuestions(ctx)
	}()
	go func() {
		defer wg.Done()
		interviews, ivsErr = c.loader.LoadInterviews(ctx)
	}()
	wg.Wait()

	selection.SortByTopAndKeyword(questions)
	byID := make(map[int64]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	err := errors.Join(questionErr, ivsErr)

	c.mu.Lock()
	c.questions = questions
	c.byID = byID
	c.interviews = interviews
	c.loadErr = ""
	if err != nil {
		c.loadErr = ErrFetchingQuestions
	}
	c.mu.Unlock()

	return err
}

func (c *Catalog) Questions() []model.Question {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.questions
}

func (c *Catalog) Question(id int64) (model.Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.byID[id]
	return q, ok
}

func (c *Catalog) Interviews() []model.Interview {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.interviews
}

// LoadError is the user facing banner, empty when the last load succeeded.
func (c *Catalog) LoadError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}
