package timeline

import (
	"time"

	"cardtracker.app/api/internal/model"
)

// segment is an interval during which the card sat in one list or with one member.
type segment struct {
	key   string
	start time.Time
	open  bool
}

// span is a closed segment.
type span struct {
	key     string
	elapsed time.Duration
}

func (s segment) closeAt(t time.Time) *span {
	elapsed := t.Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	return &span{key: s.key, elapsed: elapsed}
}

// effect is what one step contributes to the Result.
type effect struct {
	list   *span
	member *span
	visit  string
	mover  string
}

type cursor struct {
	list   segment
	member segment
}

// step advances the cursor over e. The receiver is not modified.
func (c cursor) step(e model.CardEvent) (cursor, effect) {
	var eff effect

	switch {
	case e.Kind.AffectsList():
		name := e.List()
		if name == "" {
			break
		}
		if c.list.open {
			eff.list = c.list.closeAt(e.OccurredAt)
		}
		c.list = segment{key: name, start: e.OccurredAt, open: true}
		eff.visit = name
		eff.mover = e.Member()

	case e.Kind == model.ActionAddMember:
		member := e.Member()
		if member == "" || (c.member.open && c.member.key == member) {
			break
		}
		if c.member.open {
			eff.member = c.member.closeAt(e.OccurredAt)
		}
		c.member = segment{key: member, start: e.OccurredAt, open: true}

	case e.Kind == model.ActionRemoveMember:
		member := e.Member()
		if !c.member.open || (member != "" && member != c.member.key) {
			break
		}
		eff.member = c.member.closeAt(e.OccurredAt)
		c.member = segment{}
	}

	return c, eff
}

// finish closes whatever is still open at t.
func (c cursor) finish(t time.Time) effect {
	var eff effect
	if c.list.open {
		eff.list = c.list.closeAt(t)
	}
	if c.member.open {
		eff.member = c.member.closeAt(t)
	}
	return eff
}
