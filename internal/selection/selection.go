package selection

import (
	"crypto/rand"
	"encoding/binary"
	"sort"
	"strings"

	"github.com/abhishek622/interviewPrep/pkg/model"
)

// Filter returns the questions tagged with keyword, in their original order.
// An empty keyword returns the input unchanged.
func Filter(questions []model.Question, keyword string) []model.Question {
	if keyword == "" {
		return questions
	}
	out := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		if q.Keyword == keyword {
			out = append(out, q)
		}
	}
	return out
}

// UniqueKeywords returns the distinct keywords in ascending order.
func UniqueKeywords(questions []model.Question) []string {
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		seen[q.Keyword] = struct{}{}
	}
	return sortedKeys(seen)
}

// Shuffle returns a uniformly shuffled copy of in. The input is not modified.
func Shuffle[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := randIndex(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// randIndex draws from crypto/rand and reduces modulo n. The modulo bias is
// negligible for catalog sized n.
func randIndex(n int) int {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("selection: crypto/rand unavailable: " + err.Error())
	}
	return int(binary.LittleEndian.Uint32(buf[:]) % uint32(n))
}

// SortByTopAndKeyword orders questions in place: non-top before top, then
// keyword ascending, then id ascending.
func SortByTopAndKeyword(questions []model.Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		a, b := questions[i], questions[j]
		if a.Top != b.Top {
			return !a.Top
		}
		if c := strings.Compare(a.Keyword, b.Keyword); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
}

// TopOnly keeps the questions flagged as top.
func TopOnly(questions []model.Question) []model.Question {
	out := make([]model.Question, 0)
	for _, q := range questions {
		if q.Top {
			out = append(out, q)
		}
	}
	return out
}

// IDsByTags collects the ids of every question carrying one of tags,
// optionally restricted to top questions, in shuffled order.
func IDsByTags(questions []model.Question, tags []string, topOnly bool) []int64 {
	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[t] = struct{}{}
	}

	ids := make([]int64, 0)
	for _, q := range questions {
		if _, ok := wanted[q.Keyword]; !ok {
			continue
		}
		if topOnly && !q.Top {
			continue
		}
		ids = append(ids, q.ID)
	}
	return Shuffle(ids)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
