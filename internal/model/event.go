package model

import "time"

// ActionKind is the Trello action type a CardEvent was normalized from.
type ActionKind string

const (
	ActionCreateCard     ActionKind = "createCard"
	ActionUpdateCard     ActionKind = "updateCard"
	ActionMoveCardToList ActionKind = "moveCardToList"
	ActionAddMember      ActionKind = "addMemberToCard"
	ActionRemoveMember   ActionKind = "removeMemberFromCard"
)

// AffectsList reports whether the kind places the card in a list.
func (k ActionKind) AffectsList() bool {
	switch k {
	case ActionCreateCard, ActionUpdateCard, ActionMoveCardToList:
		return true
	}
	return false
}

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionCreateCard, ActionUpdateCard, ActionMoveCardToList, ActionAddMember, ActionRemoveMember:
		return true
	}
	return false
}

// CardEvent is one normalized action in a card's history.
//
// For list-affecting kinds MemberID is the member who performed the action.
// For member kinds it is the member who was added or removed.
type CardEvent struct {
	ID           int64      `json:"id"`
	CardID       int64      `json:"card_id"`
	TrelloCardID string     `json:"trello_card_id"`
	Seq          int32      `json:"seq"`
	Kind         ActionKind `json:"action_kind"`
	ListName     *string    `json:"list_name,omitempty"`
	MemberID     *string    `json:"member_id,omitempty"`
	MemberName   *string    `json:"member_name,omitempty"`
	OccurredAt   time.Time  `json:"occurred_at"`
}

// List returns the list name or "" when absent.
func (e CardEvent) List() string {
	if e.ListName == nil {
		return ""
	}
	return *e.ListName
}

// Member returns the member ID or "" when absent.
func (e CardEvent) Member() string {
	if e.MemberID == nil {
		return ""
	}
	return *e.MemberID
}
