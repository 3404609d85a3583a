package site

import (
	"errors"
	"fmt"

	"portfolio_ai_server/internal/types"
)

// ErrUnrecognizedReply means the model reply contained no usable HTML
// section. CSS and JS sections may be empty without failing the parse;
// only the markup is load-bearing.
var ErrUnrecognizedReply = errors.New("model reply contains no html section")

// UnrecognizedReplyError carries the raw reply so callers can show it to
// the user verbatim for diagnosis. It unwraps to ErrUnrecognizedReply.
type UnrecognizedReplyError struct {
	Raw string
}

func (e *UnrecognizedReplyError) Error() string {
	return ErrUnrecognizedReply.Error()
}

func (e *UnrecognizedReplyError) Unwrap() error {
	return ErrUnrecognizedReply
}

// ParseReply splits one model reply into the three delimited sections. The
// three extractions are independent; there is no check that the sections
// are ordered or non-overlapping.
func ParseReply(reply string) (types.Bundle, error) {
	bundle := types.Bundle{
		HTML: ExtractSection(reply, HTMLMarker, HTMLMarker),
		CSS:  ExtractSection(reply, CSSMarker, CSSMarker),
		JS:   ExtractSection(reply, JSMarker, JSMarker),
	}
	if bundle.HTML == "" {
		return types.Bundle{}, fmt.Errorf("parsing model reply: %w", &UnrecognizedReplyError{Raw: reply})
	}
	return bundle, nil
}
