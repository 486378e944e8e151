package entity

// Verdict is the critic's structured judgement of a joke draft.
type Verdict struct {
	Approved   bool     `json:"approved"`
	Confidence float64  `json:"confidence"`
	Issues     []string `json:"issues"`
	Feedback   string   `json:"feedback"`
	Retry      bool     `json:"retry"`
}

type Critique struct {
	JokeText string
	Category Category
	Attempt  int
}
