package domain

import (
	"sort"

	"github.com/google/uuid"
)

type TallyEntry struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Name        string    `json:"name"`
	Party       string    `json:"party"`
	Count       int64     `json:"count"`
	Percentage  float64   `json:"percentage"`
}

// ComputeTally counts votes per candidate and ranks the entries by count
// descending. Ties keep the candidate input order. When no votes exist every
// percentage is zero; the division is never evaluated in that case.
func ComputeTally(candidates []Candidate, votes []Vote) []TallyEntry {
	counts := make(map[uuid.UUID]int64, len(candidates))
	for _, v := range votes {
		counts[v.CandidateID]++
	}

	entries := make([]TallyEntry, 0, len(candidates))
	var total int64
	for _, c := range candidates {
		n := counts[c.ID]
		total += n
		entries = append(entries, TallyEntry{
			CandidateID: c.ID,
			Name:        c.Name,
			Party:       c.Party,
			Count:       n,
		})
	}

	if total > 0 {
		for i := range entries {
			entries[i].Percentage = float64(entries[i].Count) / float64(total) * 100
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}
