// Package oracle defines the external correction capability consulted when
// approximate matching finds no vocabulary entry close enough to a token.
package oracle

import (
	"context"
	"errors"
)

// Oracle suggests a corrected spelling for a single name fragment. The call
// is best effort: callers are expected to fall back to the original token on
// any error and must never block the pipeline on it.
type Oracle interface {
	Suggest(ctx context.Context, namePart string) (string, error)
}

// ErrEmptyResponse is returned when the service answered with a blank
// suggestion. An empty name must never propagate.
var ErrEmptyResponse = errors.New("oracle returned an empty suggestion")
