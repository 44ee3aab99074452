// Package catalog parses raw catalog documents into the typed, per-family
// ordered model the engine consumes, and renders the model back out.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brickforge/pab/pkg/types"
)

// ParseLabel splits a raw piece-type label of the form "<FAMILY> <W>X<L>"
// into its family tag and stud dimensions. The label must be exactly two
// whitespace-separated tokens, the second exactly two integers joined by
// "X". Anything else wraps types.ErrMalformedLabel.
func ParseLabel(label string) (family string, width, length int, err error) {
	tokens := strings.Fields(label)
	if len(tokens) != 2 {
		return "", 0, 0, fmt.Errorf("%w: %q: want \"FAMILY WxL\"", types.ErrMalformedLabel, label)
	}

	dims := strings.Split(tokens[1], "X")
	if len(dims) != 2 {
		return "", 0, 0, fmt.Errorf("%w: %q: dimensions must be \"WxL\"", types.ErrMalformedLabel, label)
	}

	width, err = strconv.Atoi(dims[0])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %q: width %q is not an integer", types.ErrMalformedLabel, label, dims[0])
	}
	length, err = strconv.Atoi(dims[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %q: length %q is not an integer", types.ErrMalformedLabel, label, dims[1])
	}
	if width < 1 || length < 1 {
		return "", 0, 0, fmt.Errorf("%w: %q: dimensions must be positive", types.ErrMalformedLabel, label)
	}

	return tokens[0], width, length, nil
}
