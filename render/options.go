package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ErrUnknownStyle is returned by ParseStyle for a name it does not know.
var ErrUnknownStyle = errors.New("render: unknown table style")

var styles = map[string]table.Style{
	"default": table.StyleDefault,
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"bold":    table.StyleBold,
	"double":  table.StyleDouble,
}

// StyleNames lists the accepted table style names in ascending order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for n := range styles {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// ParseStyle resolves a style name (case-insensitive). The empty name means "light".
func ParseStyle(name string) (table.Style, error) {
	if name == "" {
		return table.StyleLight, nil
	}
	st, ok := styles[strings.ToLower(name)]
	if !ok {
		return table.Style{}, fmt.Errorf("%w: %q (want one of %s)",
			ErrUnknownStyle, name, strings.Join(StyleNames(), ", "))
	}

	return st, nil
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithColor forces colour output on or off, overriding terminal detection.
func WithColor(on bool) Option {
	return func(r *Renderer) { r.color = on }
}

// WithStyle selects a table style by name. It panics on an unknown name;
// callers holding user input should check it with ParseStyle first.
func WithStyle(name string) Option {
	st, err := ParseStyle(name)
	if err != nil {
		panic(err.Error())
	}

	return func(r *Renderer) { r.style = st }
}
