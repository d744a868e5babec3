package corrector

import (
	"context"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/HxshPatil/indian-names-corrector/internal/oracle"
	"github.com/HxshPatil/indian-names-corrector/internal/vocabulary"
)

// NameCorrector maps noisy name tokens onto two reference vocabularies using
// approximate string matching, falling back to an external oracle when no
// vocabulary entry is close enough. Corrections are stateless and idempotent
// for a fixed vocabulary, so one instance serves concurrent callers.
type NameCorrector struct {
	cfg        Config
	firstNames *vocabulary.Vocabulary
	lastNames  *vocabulary.Vocabulary
	oracle     oracle.Oracle
	levParams  *levenshtein.Params
}

// New builds a corrector over the two vocabularies. A nil oracle is a valid
// configuration: unmatched tokens then pass through unchanged.
func New(firstNames, lastNames *vocabulary.Vocabulary, opts ...Option) *NameCorrector {
	nc := &NameCorrector{
		cfg: Config{
			MaxEditDistance: DefaultMaxEditDistance,
			TopKCandidates:  DefaultTopKCandidates,
		},
		firstNames: firstNames,
		lastNames:  lastNames,
	}
	for _, opt := range opts {
		opt(nc)
	}
	// Distances beyond the threshold all lose; let the scorer cut off early.
	nc.levParams = levenshtein.NewParams().MaxCost(nc.cfg.MaxEditDistance + 1)
	return nc
}

// CorrectFirst corrects a first-name token.
func (nc *NameCorrector) CorrectFirst(ctx context.Context, token string) string {
	return nc.CorrectPart(ctx, token, nc.firstNames)
}

// CorrectLast corrects a last-name token.
func (nc *NameCorrector) CorrectLast(ctx context.Context, token string) string {
	return nc.CorrectPart(ctx, token, nc.lastNames)
}

// CorrectPart returns the closest known spelling of token in vocab, the
// oracle's suggestion when nothing is within the edit-distance threshold, or
// the (normalized) token itself when the oracle is absent or fails. An empty
// token short-circuits to "" without any lookup. The result is lower-case;
// display capitalization is the caller's concern. Never returns an error:
// every failure state degrades to identity.
func (nc *NameCorrector) CorrectPart(ctx context.Context, token string, vocab *vocabulary.Vocabulary) string {
	norm := strings.ToLower(strings.TrimSpace(token))
	if norm == "" {
		return ""
	}
	if vocab.Contains(norm) {
		return norm
	}
	cands := nc.Rank(norm, vocab)
	if len(cands) > 0 && cands[0].Distance <= nc.cfg.MaxEditDistance {
		return cands[0].Term
	}
	return nc.consultOracle(ctx, norm)
}

// Rank scores token against every vocabulary entry and returns the top-K
// candidates by ascending edit distance. Ties break on lexicographic order
// of the candidate, which keeps matching reproducible across runs.
func (nc *NameCorrector) Rank(token string, vocab *vocabulary.Vocabulary) []Candidate {
	k := nc.cfg.TopKCandidates
	cands := make([]Candidate, 0, k)
	vocab.Range(func(name string) {
		d := levenshtein.Distance(token, name, nc.levParams)
		if len(cands) == k {
			if d >= cands[k-1].Distance {
				return
			}
			cands = cands[:k-1]
		}
		// Range walks entries in lexicographic order, so inserting after
		// equal distances preserves the tie-break.
		i := sort.Search(len(cands), func(i int) bool { return cands[i].Distance > d })
		cands = append(cands, Candidate{})
		copy(cands[i+1:], cands[i:])
		cands[i] = Candidate{Term: name, Distance: d}
	})
	return cands
}

func (nc *NameCorrector) consultOracle(ctx context.Context, token string) string {
	if nc.oracle == nil {
		return token
	}
	suggestion, err := nc.oracle.Suggest(ctx, token)
	if err != nil {
		return token
	}
	suggestion = strings.ToLower(strings.TrimSpace(suggestion))
	if suggestion == "" {
		return token
	}
	return suggestion
}

// CorrectFullName tokenizes a raw name, corrects the first token against the
// first-name vocabulary and the last token (if present) against the
// last-name vocabulary, and recombines them capitalized. The only failure
// mode is ErrEmptyName from tokenization.
func (nc *NameCorrector) CorrectFullName(ctx context.Context, raw string) (string, error) {
	first, last, err := Tokenize(raw)
	if err != nil {
		return "", err
	}
	out := title(nc.CorrectFirst(ctx, first))
	if corrected := nc.CorrectLast(ctx, last); corrected != "" {
		out += " " + title(corrected)
	}
	return out, nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
