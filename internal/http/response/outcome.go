package response

import "was/types"

type Kind int

const (
	KindRender Kind = iota
	KindRedirect
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindRedirect:
		return "redirect"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

type Cookie struct {
	Name  string
	Value string
}

// Outcome is what a handler decides, before any protocol framing.
type Outcome struct {
	kind    Kind
	view    string
	model   map[string]any
	target  string
	status  types.StatusCode
	cookies []Cookie
}

func Render(view string) *Outcome {
	return &Outcome{kind: KindRender, view: view, status: types.StatusOK}
}

func RenderWith(view string, model map[string]any) *Outcome {
	return &Outcome{kind: KindRender, view: view, model: model, status: types.StatusOK}
}

func Redirect(target string) *Outcome {
	return &Outcome{kind: KindRedirect, target: target, status: types.StatusFound}
}

func Error(status types.StatusCode) *Outcome {
	return &Outcome{kind: KindError, status: status}
}

func (o *Outcome) SetCookie(name, value string) *Outcome {
	for i := range o.cookies {
		if o.cookies[i].Name == name {
			o.cookies[i].Value = value
			return o
		}
	}
	o.cookies = append(o.cookies, Cookie{Name: name, Value: value})
	return o
}

func (o *Outcome) Kind() Kind               { return o.kind }
func (o *Outcome) View() string             { return o.view }
func (o *Outcome) Model() map[string]any    { return o.model }
func (o *Outcome) Target() string           { return o.target }
func (o *Outcome) Status() types.StatusCode { return o.status }
func (o *Outcome) Cookies() []Cookie        { return o.cookies }
