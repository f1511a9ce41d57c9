// Package libdiff computes line oriented differences between trees.
package libdiff

import (
	"bytes"
	"strings"

	"github.com/signadot/jsom/codec"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) Prefix() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

// Diff compares the indented JSON renderings of from and to line by line.
// It returns nil when they are equal.
func Diff(from, to any) ([]Line, error) {
	a, err := codec.Marshal(from, codec.EncodeIndent(2))
	if err != nil {
		return nil, err
	}
	b, err := codec.Marshal(to, codec.EncodeIndent(2))
	if err != nil {
		return nil, err
	}
	if bytes.Equal(a, b) {
		return nil, nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(string(a), string(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res, nil
}

// Format renders lines with +/- prefixes, optionally colored.
func Format(lines []Line, colors bool) string {
	buf := &strings.Builder{}
	for _, l := range lines {
		s := l.Op.Prefix() + " " + l.Text
		if colors {
			switch l.Op {
			case Insert:
				s = color.GreenString("%s", s)
			case Delete:
				s = color.RedString("%s", s)
			}
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	return buf.String()
}
