package entity

type MenuChoice string

const (
	ChoiceNextJoke       MenuChoice = "n"
	ChoiceChangeCategory MenuChoice = "c"
	ChoiceQuit           MenuChoice = "q"
)

// SessionState is the state carried between graph nodes during one bot
// session. It has value semantics: nodes never mutate it directly, they
// return an Update and the graph applies it.
type SessionState struct {
	Jokes    []Joke
	Choice   MenuChoice
	Category Category
	Language Language
	Quit     bool
}

func NewSessionState(category Category, language Language) SessionState {
	return SessionState{
		Choice:   ChoiceNextJoke,
		Category: category,
		Language: language,
	}
}

// Update is a partial state change produced by a single node. Jokes are
// accumulated (appended), scalar fields overwrite only when set.
type Update struct {
	Jokes    []Joke
	Choice   *MenuChoice
	Category *Category
	Language *Language
	Quit     *bool
}

// Apply merges an update into a copy of the state and returns it.
func (s SessionState) Apply(u Update) SessionState {
	next := s
	if len(u.Jokes) > 0 {
		jokes := make([]Joke, 0, len(s.Jokes)+len(u.Jokes))
		jokes = append(jokes, s.Jokes...)
		jokes = append(jokes, u.Jokes...)
		next.Jokes = jokes
	}
	if u.Choice != nil {
		next.Choice = *u.Choice
	}
	if u.Category != nil {
		next.Category = *u.Category
	}
	if u.Language != nil {
		next.Language = *u.Language
	}
	if u.Quit != nil {
		next.Quit = *u.Quit
	}
	return next
}
