package repository

import (
	"context"
	"fmt"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

func (r *Repository) Questions(ctx context.Context) ([]model.Question, error) {
	const q = `
SELECT id, question, answer, keyword, frequency, top
FROM questions
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	out := []model.Question{}
	for rows.Next() {
		var qs model.Question
		if err := rows.Scan(&qs.ID, &qs.Question, &qs.Answer, &qs.Keyword, &qs.Frequency, &qs.Top); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, qs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}
