package corrector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HxshPatil/indian-names-corrector/internal/vocabulary"
)

type stubOracle struct {
	suggestion string
	err        error
	calls      int
}

func (s *stubOracle) Suggest(ctx context.Context, namePart string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.suggestion, nil
}

func TestCorrectPartExactMatchSkipsOracle(t *testing.T) {
	vocab := vocabulary.New([]string{"amit", "rahul"})
	stub := &stubOracle{suggestion: "never"}
	c := New(vocab, vocab, WithOracle(stub))

	assert.Equal(t, "amit", c.CorrectPart(context.Background(), "Amit", vocab))
	assert.Equal(t, "amit", c.CorrectPart(context.Background(), "  AMIT  ", vocab))
	assert.Equal(t, 0, stub.calls)
}

func TestCorrectPartWithinThreshold(t *testing.T) {
	vocab := vocabulary.New([]string{"bachchan", "sharma", "verma"})
	stub := &stubOracle{suggestion: "never"}
	c := New(vocab, vocab, WithOracle(stub))

	// "bachan" is two edits from "bachchan" and further from everything else.
	assert.Equal(t, "bachchan", c.CorrectPart(context.Background(), "Bachan", vocab))
	assert.Equal(t, 0, stub.calls)
}

func TestCorrectPartBeyondThresholdInvokesFallback(t *testing.T) {
	vocab := vocabulary.New([]string{"sharma"})
	stub := &stubOracle{suggestion: "sharma"}
	c := New(vocab, vocab, WithOracle(stub))

	// "xyzzy123" is nowhere near "sharma"; the oracle answer wins.
	got := c.CorrectPart(context.Background(), "xyzzy123", vocab)
	assert.Equal(t, "sharma", got)
	assert.Equal(t, 1, stub.calls)
}

func TestCorrectPartEmptyTokenShortCircuits(t *testing.T) {
	vocab := vocabulary.New([]string{"amit"})
	stub := &stubOracle{suggestion: "never"}
	c := New(vocab, vocab, WithOracle(stub))

	assert.Equal(t, "", c.CorrectPart(context.Background(), "", vocab))
	assert.Equal(t, "", c.CorrectPart(context.Background(), "   ", vocab))
	assert.Equal(t, 0, stub.calls)
}

func TestCorrectPartFallbackFailureDegradesToIdentity(t *testing.T) {
	vocab := vocabulary.New([]string{"sharma"})

	t.Run("oracle error", func(t *testing.T) {
		stub := &stubOracle{err: errors.New("boom")}
		c := New(vocab, vocab, WithOracle(stub))
		assert.Equal(t, "xyzzy123", c.CorrectPart(context.Background(), "xyzzy123", vocab))
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("oracle unconfigured", func(t *testing.T) {
		c := New(vocab, vocab)
		assert.Equal(t, "xyzzy123", c.CorrectPart(context.Background(), "xyzzy123", vocab))
	})

	t.Run("blank suggestion", func(t *testing.T) {
		stub := &stubOracle{suggestion: "  \n"}
		c := New(vocab, vocab, WithOracle(stub))
		assert.Equal(t, "xyzzy123", c.CorrectPart(context.Background(), "xyzzy123", vocab))
	})
}

func TestCorrectPartNormalizesOracleAnswer(t *testing.T) {
	vocab := vocabulary.New([]string{"sharma"})
	stub := &stubOracle{suggestion: " Bachchan \n"}
	c := New(vocab, vocab, WithOracle(stub))

	assert.Equal(t, "bachchan", c.CorrectPart(context.Background(), "qqqqqq", vocab))
}

func TestCorrectPartTieBreaksLexicographically(t *testing.T) {
	// "amot" is one edit from both entries; the lexicographically smaller
	// candidate must win regardless of insertion order.
	vocab := vocabulary.New([]string{"amit", "amat"})
	c := New(vocab, vocab)

	assert.Equal(t, "amat", c.CorrectPart(context.Background(), "amot", vocab))
}

func TestRankOrdersByDistance(t *testing.T) {
	vocab := vocabulary.New([]string{"amit", "amita", "amitabh", "rahul", "rekha"})
	c := New(vocab, vocab, WithTopKCandidates(3))

	cands := c.Rank("amit", vocab)
	require.Len(t, cands, 3)
	assert.Equal(t, "amit", cands[0].Term)
	assert.Equal(t, 0, cands[0].Distance)
	for i := 1; i < len(cands); i++ {
		assert.GreaterOrEqual(t, cands[i].Distance, cands[i-1].Distance)
	}
}

func TestCorrectFullName(t *testing.T) {
	first := vocabulary.New([]string{"amitabh", "amit"})
	last := vocabulary.New([]string{"bachchan", "sharma"})
	c := New(first, last)

	got, err := c.CorrectFullName(context.Background(), "Dr. Amitab Bacchan")
	require.NoError(t, err)
	assert.Equal(t, "Amitabh Bachchan", got)
}

func TestCorrectFullNameSingleWord(t *testing.T) {
	first := vocabulary.New([]string{"madonna"})
	last := vocabulary.New([]string{"bachchan"})
	stub := &stubOracle{suggestion: "never"}
	c := New(first, last, WithOracle(stub))

	got, err := c.CorrectFullName(context.Background(), "Madonna")
	require.NoError(t, err)
	assert.Equal(t, "Madonna", got)
	// No last token, so nothing may reach the oracle.
	assert.Equal(t, 0, stub.calls)
}

func TestCorrectFullNameEmpty(t *testing.T) {
	c := New(vocabulary.New(nil), vocabulary.New(nil))
	_, err := c.CorrectFullName(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyName)
}
