package trello

import "time"

// Action is a raw entry from a card's action log.
type Action struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Date            time.Time  `json:"date"`
	IDMemberCreator string     `json:"idMemberCreator"`
	MemberCreator   *Member    `json:"memberCreator,omitempty"`
	Data            ActionData `json:"data"`
}

type ActionData struct {
	Card       *CardRef `json:"card,omitempty"`
	List       *ListRef `json:"list,omitempty"`
	ListBefore *ListRef `json:"listBefore,omitempty"`
	ListAfter  *ListRef `json:"listAfter,omitempty"`
	Member     *Member  `json:"member,omitempty"`
	IDMember   string   `json:"idMember,omitempty"`
}

type CardRef struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	IDList string `json:"idList,omitempty"`
}

type ListRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Member struct {
	ID       string `json:"id"`
	FullName string `json:"fullName,omitempty"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
}

// DisplayName prefers the full name, then the short name, then the username.
func (m *Member) DisplayName() string {
	if m == nil {
		return ""
	}
	switch {
	case m.FullName != "":
		return m.FullName
	case m.Name != "":
		return m.Name
	}
	return m.Username
}

type Card struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IDList  string `json:"idList"`
	IDBoard string `json:"idBoard"`
}

type List struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Closed  bool    `json:"closed"`
	Pos     float64 `json:"pos"`
	IDBoard string  `json:"idBoard"`
}
