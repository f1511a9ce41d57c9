package jsom

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsom/debug"
)

// Path is a parsed path such as $.a[1].'b.c', $[*] or $..name.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	subtree := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
			subtree = true
			continue
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if !subtree {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		subtree = false
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("path %q should start with '$'", p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	err := parseFrag(p[1:], root)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			if len(frag) == 2 {
				return nil
			}
			next := &Path{}
			rest := frag[2:]
			if rest[0] != '[' && rest[0] != '.' {
				rest = "." + rest
			}
			if err := parseFrag(rest, next); err != nil {
				return err
			}
			parent.Next = next
			return nil
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		if len(rest) == 0 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(rest, next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		if len(frag) == i+2 {
			return nil
		}
		next := &Path{}
		if err := parseFrag(frag[i+2:], next); err != nil {
			return err
		}
		parent.Next = next
		return nil
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns a view of the node at path. A missing mapping key
// anywhere along the path yields a null view. Wildcards and recursive
// descent are not allowed; use ListPath.
func (v *Value) GetPath(path string) (*Value, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if debug.Path() {
		debug.Logf("get %s\n", yp)
	}
	res := v
	for yp != nil {
		if yp.IndexAll {
			return nil, fmt.Errorf("any index in get")
		}
		if yp.Subtree {
			return nil, fmt.Errorf("recurse .. in get")
		}
		if yp.Index != nil {
			res, err = res.At(*yp.Index)
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", yp, err)
			}
			yp = yp.Next
			continue
		}
		if yp.Field != nil {
			m, err := res.AsMapping()
			if err != nil {
				return nil, fmt.Errorf("at %s: %w", yp, err)
			}
			x, ok := m.Get(*yp.Field)
			if !ok {
				return Wrap(nil), nil
			}
			res = Wrap(x)
			yp = yp.Next
			continue
		}
		if yp.Next != nil {
			return nil, fmt.Errorf("unexpected next w/out index or field")
		}
		break
	}
	return res, nil
}

// ListPath returns views of every node matching path. Kinds which do not
// fit a path step are skipped rather than reported.
func (v *Value) ListPath(path string) ([]*Value, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if debug.Path() {
		debug.Logf("list %s\n", yp)
	}
	return listPath(nil, v.node, yp)
}

func listPath(dst []*Value, node any, yp *Path) ([]*Value, error) {
	if yp == nil {
		return append(dst, Wrap(node)), nil
	}
	var err error
	if yp.Subtree {
		if err := Visit(node, func(x any, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst, err = listPath(dst, x, yp.Next)
			if err != nil {
				return false, err
			}
			return true, nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	switch KindOf(node) {
	case MappingKind:
		if yp.IndexAll || yp.Index != nil {
			return dst, nil
		}
		if yp.Field == nil {
			return listPath(dst, node, yp.Next)
		}
		x, ok := node.(*Mapping).Get(*yp.Field)
		if !ok {
			return dst, nil
		}
		return listPath(dst, x, yp.Next)

	case SequenceKind:
		s := node.(*Sequence)
		if yp.Field != nil {
			return dst, nil
		}
		if yp.Index != nil {
			idx := *yp.Index
			if 0 <= idx && idx < s.Len() {
				return listPath(dst, s.At(idx), yp.Next)
			}
			return dst, nil
		}
		if !yp.IndexAll {
			return listPath(dst, node, yp.Next)
		}
		for x := range s.Values() {
			dst, err = listPath(dst, x, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	default:
		if yp.Field != nil || yp.Index != nil || yp.IndexAll {
			return dst, nil
		}
		return listPath(dst, node, yp.Next)
	}
}

// Visit calls f on node before and after its children. Children are
// visited only if the pre-order call returns true.
func Visit(node any, f func(node any, isPost bool) (bool, error)) error {
	node = Unwrap(node)
	dive, err := f(node, false)
	if err != nil {
		return err
	}
	if dive {
		switch x := node.(type) {
		case *Sequence:
			for y := range x.Values() {
				if err := Visit(y, f); err != nil {
					return err
				}
			}
		case *Mapping:
			for pair := x.Oldest(); pair != nil; pair = pair.Next() {
				if err := Visit(pair.Value, f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(node, true); err != nil {
		return err
	}
	return nil
}
