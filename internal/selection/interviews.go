package selection

import "github.com/abhishek622/interviewPrep/pkg/model"

// UniquePositions returns the distinct interview positions, sorted.
func UniquePositions(interviews []model.Interview) []string {
	seen := make(map[string]struct{}, len(interviews))
	for _, iv := range interviews {
		seen[iv.Position] = struct{}{}
	}
	return sortedKeys(seen)
}

// UniqueClients returns the distinct interview clients, sorted.
func UniqueClients(interviews []model.Interview) []string {
	seen := make(map[string]struct{}, len(interviews))
	for _, iv := range interviews {
		seen[iv.Client] = struct{}{}
	}
	return sortedKeys(seen)
}

// FilterInterviews applies the position and client filters. Empty values
// match everything.
func FilterInterviews(interviews []model.Interview, position, client string) []model.Interview {
	out := make([]model.Interview, 0, len(interviews))
	for _, iv := range interviews {
		if position != "" && iv.Position != position {
			continue
		}
		if client != "" && iv.Client != client {
			continue
		}
		out = append(out, iv)
	}
	return out
}
