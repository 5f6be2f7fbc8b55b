package example

type ActionKind string

const (
	ActionCreateCard ActionKind = "createCard"
	ActionUpdateCard ActionKind = "updateCard"
)

type Format string

const (
	FormatCSV Format = "csv"
)

type CardEvent struct {
	Kind ActionKind
	Name string
}

type Export struct {
	Format Format
}

func bad() {
	e := &CardEvent{}
	e.Kind = "moveCard" // want "enum field Kind assigned string literal"

	x := Export{}
	x.Format = "pdf" // want "enum field Format assigned string literal"
	_ = x

	_ = CardEvent{Kind: "createCard"} // want "enum field Kind assigned string literal"
}

func good() {
	e := &CardEvent{}
	e.Kind = ActionUpdateCard // OK: using constant
	e.Name = "todo"           // OK: not an enum

	_ = Export{Format: FormatCSV}
	_ = CardEvent{Kind: ActionCreateCard, Name: "card"}
}

func alsoGood() {
	// OK: Variable, not literal
	kind := ActionCreateCard
	e := &CardEvent{Kind: kind}
	_ = e
}
