package parser

// Category is the keyword family a step belongs to. And lines take the
// category of the line they continue.
type Category int

const (
	Given Category = iota
	When
	Then
)

func (c Category) String() string {
	switch c {
	case Given:
		return "Given"
	case When:
		return "When"
	case Then:
		return "Then"
	}
	return "Unknown"
}

type StepDef[C any] struct {
	Category Category
	Keyword  string // Given, When, Then or And
	Text     string
	Line     int
	Step     Step[C]
}

// Scenario is the payload shared by Background and Scenario cases. Steps are
// always Given steps, then When steps, then Then steps.
type Scenario[C any] struct {
	Name  string // empty when the header carried no name
	Line  int    // 1-based line number of the header
	Steps []StepDef[C]
}

type Kind int

const (
	KindBackground Kind = iota
	KindScenario
)

func (k Kind) Keyword() string {
	if k == KindBackground {
		return "Background"
	}
	return "Scenario"
}

type TestCase[C any] struct {
	Kind Kind
	Scenario[C]
}

type Feature[C any] struct {
	Name       string
	Comment    string
	Background *TestCase[C]
	Cases      []TestCase[C]
}
