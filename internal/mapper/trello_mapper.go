package mapper

import (
	"context"
	"log/slog"

	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/trello"
)

// ListNameResolver looks up a list's name by ID.
type ListNameResolver interface {
	ListName(ctx context.Context, listID string) (string, error)
}

type ListNameFunc func(ctx context.Context, listID string) (string, error)

func (f ListNameFunc) ListName(ctx context.Context, listID string) (string, error) {
	return f(ctx, listID)
}

// TrelloMapper normalizes raw Trello actions into card events.
type TrelloMapper struct {
	resolver ListNameResolver
}

// NewTrelloMapper returns a mapper. resolver may be nil, in which case lists
// referenced only by ID stay unnamed.
func NewTrelloMapper(resolver ListNameResolver) *TrelloMapper {
	return &TrelloMapper{resolver: resolver}
}

// Map converts actions, given newest first as Trello returns them, into events
// in chronological arrival order with Seq set. currentList names the list the
// card is in now and backs createCard actions that carry no list.
// Actions that do not move the card or change its members are dropped.
func (m *TrelloMapper) Map(ctx context.Context, trelloCardID string, actions []trello.Action, currentList string) []model.CardEvent {
	events := make([]model.CardEvent, 0, len(actions))

	for i := len(actions) - 1; i >= 0; i-- {
		event, ok := m.mapAction(ctx, actions[i], currentList)
		if !ok {
			continue
		}
		event.TrelloCardID = trelloCardID
		event.Seq = int32(len(events))
		events = append(events, event)
	}

	return events
}

func (m *TrelloMapper) mapAction(ctx context.Context, a trello.Action, currentList string) (model.CardEvent, bool) {
	kind := model.ActionKind(a.Type)
	event := model.CardEvent{
		Kind:       kind,
		OccurredAt: a.Date,
	}

	switch kind {
	case model.ActionCreateCard:
		name := m.listName(ctx, a.Data.List)
		if name == "" {
			name = currentList
		}
		event.ListName = optional(name)
		setActor(&event, a)

	case model.ActionUpdateCard:
		if a.Data.ListBefore == nil || a.Data.ListAfter == nil {
			return model.CardEvent{}, false
		}
		event.ListName = optional(m.listName(ctx, a.Data.ListAfter))
		setActor(&event, a)

	case model.ActionMoveCardToList:
		event.ListName = optional(m.listName(ctx, a.Data.List))
		setActor(&event, a)

	case model.ActionAddMember, model.ActionRemoveMember:
		memberID := a.Data.IDMember
		if memberID == "" && a.Data.Member != nil {
			memberID = a.Data.Member.ID
		}
		event.MemberID = optional(memberID)
		event.MemberName = optional(a.Data.Member.DisplayName())

	default:
		return model.CardEvent{}, false
	}

	return event, true
}

func (m *TrelloMapper) listName(ctx context.Context, ref *trello.ListRef) string {
	if ref == nil {
		return ""
	}
	if ref.Name != "" || ref.ID == "" || m.resolver == nil {
		return ref.Name
	}

	name, err := m.resolver.ListName(ctx, ref.ID)
	if err != nil {
		slog.WarnContext(ctx, "list name lookup failed", "list_id", ref.ID, "error", err)
		return ""
	}
	return name
}

func setActor(event *model.CardEvent, a trello.Action) {
	event.MemberID = optional(a.IDMemberCreator)
	event.MemberName = optional(a.MemberCreator.DisplayName())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
