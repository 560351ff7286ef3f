package resource

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// TextContentType is the media type of a TextPage response.
const TextContentType = "text/plain"

var _ Resource = (*TextPage)(nil)

// TextPage answers every request with the same text, whatever the path.
type TextPage struct {
	text []byte
}

func NewTextPage(text string) *TextPage {
	return &TextPage{text: []byte(text)}
}

// ReadPayload reads r to the end. It is meant to be called once at startup
// with standard input.
func ReadPayload(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read payload: %w", err)
	}
	return string(b), nil
}

func (p *TextPage) Handle(_ context.Context, _ string) (*Response, error) {
	return &Response{
		Kind:        KindText,
		ContentType: TextContentType,
		Size:        int64(len(p.text)),
		Body:        io.NopCloser(bytes.NewReader(p.text)),
	}, nil
}
