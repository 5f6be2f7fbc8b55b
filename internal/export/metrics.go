// Package export renders card metrics as downloadable documents.
package export

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"

	"cardtracker.app/api/internal/timeline"
)

// Metrics is the wire view of a timeline.Result with durations in seconds.
type Metrics struct {
	TotalTimeSeconds   float64                   `json:"total_time_seconds"`
	TimePerList        map[string]float64        `json:"time_per_list"`
	TimePerMember      map[string]float64        `json:"time_per_member"`
	ListVisitCounts    map[string]int            `json:"list_visit_counts"`
	MoveCountsByMember map[string]map[string]int `json:"move_counts_by_member"`
}

// NewMetrics converts r to seconds. TotalTimeSeconds is the sum of the rendered
// TimePerList values in key order, so the two agree exactly on the wire.
func NewMetrics(r *timeline.Result) Metrics {
	m := Metrics{
		TimePerList:        make(map[string]float64, len(r.TimePerList)),
		TimePerMember:      make(map[string]float64, len(r.TimePerMember)),
		ListVisitCounts:    r.ListVisitCounts,
		MoveCountsByMember: r.MoveCountsByMember,
	}
	for k, d := range r.TimePerList {
		m.TimePerList[k] = d.Seconds()
	}
	for _, k := range slices.Sorted(maps.Keys(m.TimePerList)) {
		m.TotalTimeSeconds += m.TimePerList[k]
	}
	for k, d := range r.TimePerMember {
		m.TimePerMember[k] = d.Seconds()
	}
	if m.ListVisitCounts == nil {
		m.ListVisitCounts = map[string]int{}
	}
	if m.MoveCountsByMember == nil {
		m.MoveCountsByMember = map[string]map[string]int{}
	}
	return m
}

// Field is one top-level metric.
type Field struct {
	Name  string
	Value any
}

// Text renders numbers plainly and nested maps as JSON.
func (f Field) Text() string {
	switch v := f.Value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}
	raw, err := json.Marshal(f.Value)
	if err != nil {
		return ""
	}
	return string(raw)
}

// Fields flattens m in a fixed order.
func Fields(m Metrics) []Field {
	return []Field{
		{Name: "total_time_seconds", Value: m.TotalTimeSeconds},
		{Name: "time_per_list", Value: m.TimePerList},
		{Name: "time_per_member", Value: m.TimePerMember},
		{Name: "list_visit_counts", Value: m.ListVisitCounts},
		{Name: "move_counts_by_member", Value: m.MoveCountsByMember},
	}
}
