// Package render turns a user registry into structured text.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samandartukhtayev/user-registry/config"
	"github.com/samandartukhtayev/user-registry/registry"
	"gopkg.in/yaml.v3"
)

// Format selects the output representation
type Format string

const (
	FormatDebug Format = "debug"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for a format name that is not supported
var ErrUnknownFormat = errors.New("unknown render format")

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatDebug, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Renderer renders registries in a single configured format
type Renderer struct {
	format Format
	indent string
}

// New creates a renderer from the render configuration
func New(cfg config.RenderConfig) (*Renderer, error) {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Renderer{
		format: format,
		indent: cfg.Indent,
	}, nil
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// Render returns the text form of every user in reg, in ascending id order
func (r *Renderer) Render(reg *registry.UserRegistry) (string, error) {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(reg)
	case FormatYAML:
		return renderYAML(reg)
	default:
		return reg.Render(), nil
	}
}

// Write renders reg to w followed by a newline
func (r *Renderer) Write(w io.Writer, reg *registry.UserRegistry) error {
	text, err := r.Render(reg)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("failed to write rendering: %w", err)
	}

	return nil
}

// renderJSON writes an object keyed by the decimal id.
// encoding/json sorts map keys as strings, so the object is assembled by hand
// to keep numeric order.
func (r *Renderer) renderJSON(reg *registry.UserRegistry) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, user := range reg.Users() {
		if i > 0 {
			buf.WriteByte(',')
		}

		value, err := json.Marshal(user)
		if err != nil {
			return "", fmt.Errorf("failed to encode user %d: %w", user.ID(), err)
		}

		buf.WriteString(strconv.Quote(strconv.FormatUint(user.ID(), 10)))
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	if r.indent == "" {
		return buf.String(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", r.indent); err != nil {
		return "", fmt.Errorf("failed to indent json: %w", err)
	}
	return out.String(), nil
}

func renderYAML(reg *registry.UserRegistry) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, user := range reg.Users() {
		key := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.FormatUint(user.ID(), 10),
		}

		value := &yaml.Node{}
		if err := value.Encode(user); err != nil {
			return "", fmt.Errorf("failed to encode user %d: %w", user.ID(), err)
		}

		root.Content = append(root.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
