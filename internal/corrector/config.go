package corrector

// Acceptance threshold and candidate list size. Name tokens are short, so a
// small absolute edit-distance threshold works better than a length-scaled
// one.
const (
	DefaultMaxEditDistance = 2
	DefaultTopKCandidates  = 5
)

type Config struct {
	MaxEditDistance int
	TopKCandidates  int
}

// Candidate is one ranked vocabulary entry produced while matching a token.
// Candidates live only for the duration of a single correction call.
type Candidate struct {
	Term     string
	Distance int
}

// Correction is the outcome of correcting one full name.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Changed   bool   `json:"changed"`
}
