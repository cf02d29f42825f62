package parser

// Outline is the display model extracted from a Feature. It drops the host
// step values so it can be rendered without knowing the context type.
type Outline struct {
	Name       string
	Comment    string
	Background *CaseOutline
	Scenarios  []CaseOutline
}

type CaseOutline struct {
	Keyword string // Background or Scenario
	Name    string
	Line    int
	Steps   []StepOutline
}

type StepOutline struct {
	Keyword  string
	Category Category
	Text     string
	Line     int
}

// Summarize converts a Feature into its Outline.
func Summarize[C any](f *Feature[C]) *Outline {
	o := &Outline{
		Name:    f.Name,
		Comment: f.Comment,
	}
	if f.Background != nil {
		bg := summarizeCase(*f.Background)
		o.Background = &bg
	}
	for _, tc := range f.Cases {
		o.Scenarios = append(o.Scenarios, summarizeCase(tc))
	}
	return o
}

func summarizeCase[C any](tc TestCase[C]) CaseOutline {
	co := CaseOutline{
		Keyword: tc.Kind.Keyword(),
		Name:    tc.Name,
		Line:    tc.Line,
	}
	for _, s := range tc.Steps {
		co.Steps = append(co.Steps, StepOutline{
			Keyword:  s.Keyword,
			Category: s.Category,
			Text:     s.Text,
			Line:     s.Line,
		})
	}
	return co
}
