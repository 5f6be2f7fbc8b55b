package timeline

import (
	"time"

	"cardtracker.app/api/internal/model"
)

// Visit summarizes every landing of a card in one list.
type Visit struct {
	ListName     string
	FirstVisitAt time.Time
	EventID      int64
	Count        int
}

// Visits returns one entry per list the card landed in, ordered by first landing.
func Visits(events []model.CardEvent) []Visit {
	var visits []Visit
	index := map[string]int{}

	for _, e := range Sorted(events) {
		name := e.List()
		if !e.Kind.AffectsList() || name == "" {
			continue
		}
		if i, ok := index[name]; ok {
			visits[i].Count++
			continue
		}
		index[name] = len(visits)
		visits = append(visits, Visit{
			ListName:     name,
			FirstVisitAt: e.OccurredAt,
			EventID:      e.ID,
			Count:        1,
		})
	}
	return visits
}
