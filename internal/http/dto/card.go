package dto

import (
	"time"

	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/timeline"
)

type FetchHistoryResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Stored  int    `json:"stored"`
}

func ToFetchHistoryResponse(trelloCardID string, result *service.IngestResult) *FetchHistoryResponse {
	return &FetchHistoryResponse{
		Message: "history saved for card " + trelloCardID,
		Count:   result.Fetched,
		Stored:  result.Stored,
	}
}

type CardResponse struct {
	ID           int64     `json:"id,string"`
	TrelloCardID string    `json:"trello_card_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToCardResponses(cards []model.Card) []CardResponse {
	resp := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, CardResponse{
			ID:           c.ID,
			TrelloCardID: c.TrelloCardID,
			CreatedAt:    c.CreatedAt,
		})
	}
	return resp
}

type VisitResponse struct {
	ID   int64     `json:"id,string"`
	Type string    `json:"type"`
	Date time.Time `json:"date"`
	Data VisitData `json:"data"`
}

type VisitData struct {
	ListName   string `json:"listName"`
	VisitCount int    `json:"visitCount"`
}

func ToVisitResponses(visits []timeline.Visit) []VisitResponse {
	resp := make([]VisitResponse, 0, len(visits))
	for _, v := range visits {
		resp = append(resp, VisitResponse{
			ID:   v.EventID,
			Type: "visitList",
			Date: v.FirstVisitAt,
			Data: VisitData{ListName: v.ListName, VisitCount: v.Count},
		})
	}
	return resp
}

type EventResponse struct {
	ID            int64      `json:"id,string"`
	Type          string     `json:"type"`
	Date          time.Time  `json:"date"`
	MemberCreator *MemberRef `json:"memberCreator"`
	Data          EventData  `json:"data"`
}

type MemberRef struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

type EventData struct {
	MoveTo *string `json:"moveTo,omitempty"`
}

func ToEventResponses(events []model.CardEvent) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		r := EventResponse{
			ID:   e.ID,
			Type: string(e.Kind),
			Date: e.OccurredAt,
		}
		if e.MemberID != nil {
			r.MemberCreator = &MemberRef{ID: *e.MemberID, Name: e.MemberName}
		}
		if e.Kind.AffectsList() {
			r.Data.MoveTo = e.ListName
		}
		resp = append(resp, r)
	}
	return resp
}
