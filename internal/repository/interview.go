package repository

import (
	"context"
	"fmt"

	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) Interviews(ctx context.Context) ([]model.Interview, error) {
	const q = `
SELECT id, date, client, vendor, interviewer, candidate, position, questions
FROM interviews
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Interview, error) {
		var iv model.Interview
		err := row.Scan(&iv.ID, &iv.Date, &iv.Client, &iv.Vendor, &iv.Interviewer,
			&iv.Candidate, &iv.Position, &iv.Questions)
		if iv.Questions == nil {
			iv.Questions = []model.InterviewQuestion{}
		}
		return iv, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan interviews: %w", err)
	}
	return out, nil
}
