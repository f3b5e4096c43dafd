package response

import (
	"errors"
	"fmt"

	"was/internal/view"
	"was/types"

	"go.uber.org/zap"
)

type Views interface {
	Load(view string, model map[string]any) (body []byte, contentType string, err error)
}

// Builder turns handler outcomes into responses. errorPages optionally maps
// an error status to a view rendered as its body.
type Builder struct {
	views      Views
	errorPages map[types.StatusCode]string
}

func NewBuilder(views Views, errorPages map[types.StatusCode]string) *Builder {
	return &Builder{
		views:      views,
		errorPages: errorPages,
	}
}

func (b *Builder) Build(out *Outcome) (*Response, error) {
	var (
		resp *Response
		err  error
	)

	switch out.Kind() {
	case KindRender:
		resp, err = b.render(out)
	case KindRedirect:
		resp = New(types.StatusFound)
		resp.Set(types.HeaderLocation, out.Target())
	case KindError:
		resp, err = b.errorResponse(out.Status())
	default:
		err = fmt.Errorf("unknown outcome kind %d", out.Kind())
	}
	if err != nil {
		return nil, err
	}

	for _, c := range out.Cookies() {
		resp.Add(types.HeaderSetCookie, fmt.Sprintf("%s=%s; Path=/", c.Name, c.Value))
	}

	return resp, nil
}

func (b *Builder) render(out *Outcome) (*Response, error) {
	body, contentType, err := b.views.Load(out.View(), out.Model())
	if err != nil {
		if errors.Is(err, view.ErrNotFound) {
			return b.errorResponse(types.StatusNotFound)
		}
		return nil, fmt.Errorf("render %s: %w", out.View(), err)
	}

	resp := New(types.StatusOK)
	resp.SetBody(contentType, body)
	return resp, nil
}

func (b *Builder) errorResponse(status types.StatusCode) (*Response, error) {
	if _, err := status.Reason(); err != nil {
		return nil, err
	}

	resp := New(status)
	page, ok := b.errorPages[status]
	if !ok {
		return resp, nil
	}

	body, contentType, err := b.views.Load(page, nil)
	if err != nil {
		zap.S().Warnf("Error page %s for status %d unavailable: %v", page, status, err)
		return resp, nil
	}
	resp.SetBody(contentType, body)
	return resp, nil
}
