package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
)

var ErrNotFound = fmt.Errorf("resource not found")

type Provider interface {
	Load(view string, model map[string]any) (body []byte, contentType string, err error)
}

// provider looks HTML views up under templates/ and renders them, and serves
// everything else verbatim from static/.
type provider struct {
	templates fs.FS
	static    fs.FS
}

func New(root fs.FS) (Provider, error) {
	templates, err := fs.Sub(root, "templates")
	if err != nil {
		return nil, fmt.Errorf("templates root: %w", err)
	}
	static, err := fs.Sub(root, "static")
	if err != nil {
		return nil, fmt.Errorf("static root: %w", err)
	}
	return &provider{templates: templates, static: static}, nil
}

func (p *provider) Load(view string, model map[string]any) ([]byte, string, error) {
	name := strings.TrimPrefix(path.Clean("/"+view), "/")
	if name == "" {
		return nil, "", fmt.Errorf("%w: empty view", ErrNotFound)
	}
	if path.Ext(name) == "" {
		name += ".html"
	}

	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "html" || ext == "htm" {
		body, err := p.render(name, model)
		if err == nil {
			return body, ContentType(ext), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}

	body, err := fs.ReadFile(p.static, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, "", err
	}
	return body, ContentType(ext), nil
}

func (p *provider) render(name string, model map[string]any) ([]byte, error) {
	raw, err := fs.ReadFile(p.templates, name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
