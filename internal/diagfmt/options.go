package diagfmt

import (
	"fmt"
	"strings"
)

// Format selects how tokens and trees are rendered.
type Format uint8

const (
	FormatPretty Format = iota
	FormatTree
	FormatCanonical
	FormatInfix
	FormatJSON
	FormatYAML
	FormatMsgpack
	FormatDump
)

var formatNames = map[string]Format{
	"pretty":    FormatPretty,
	"tree":      FormatTree,
	"canonical": FormatCanonical,
	"infix":     FormatInfix,
	"json":      FormatJSON,
	"yaml":      FormatYAML,
	"msgpack":   FormatMsgpack,
	"dump":      FormatDump,
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatPretty, fmt.Errorf("unknown format: %s", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Label prefixes every diagnostic header, e.g. "line 3".
	Label string
}

// OutputOpts configures token and tree output.
type OutputOpts struct {
	Color bool
}
