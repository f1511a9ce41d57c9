package query

import (
	"errors"
	"testing"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"

	"github.com/google/go-cmp/cmp"
)

const todoJSON = `[
  {"title": "write", "done": false, "year": 2015},
  {"title": "read", "done": true, "year": 2020},
  {"title": "sleep", "done": false},
  {"title": "plan", "done": false, "year": 2017, "tags": ["work"]}
]`

func todos(t *testing.T) *jsom.Value {
	t.Helper()
	v, err := codec.Decode([]byte(todoJSON))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func titles(t *testing.T, v *jsom.Value) []string {
	t.Helper()
	var res []string
	for x := range jsom.Must(v.Elements()) {
		res = append(res, jsom.Must(jsom.Must(jsom.Wrap(x).Get("title")).Str()))
	}
	return res
}

func TestSelect(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"done == false", []string{"write", "sleep", "plan"}},
		{"!done && (year ?? 0) > 2016", []string{"plan"}},
		{"year == nil", []string{"sleep"}},
		{`title startsWith "s" || "work" in (tags ?? [])`, []string{"sleep", "plan"}},
		{"it.done", []string{"read"}},
		{"tags", []string{"plan"}},
		{"false", nil},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			sel, err := Select(todos(t), p)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, titles(t, sel)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCount(t *testing.T) {
	p, err := Compile("done == false")
	if err != nil {
		t.Fatal(err)
	}
	n, err := Count(todos(t), p)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
	if _, err := Count(jsom.NewMapping(), p); !errors.Is(err, jsom.ErrTypeMismatch) {
		t.Errorf("Count() on map err = %v", err)
	}
}

func TestSelectEntries(t *testing.T) {
	v, err := codec.Decode([]byte(`{"a": 1, "b": 5, "c": 10, "d": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	p, err := Compile(`it != "x" && it > 2`)
	if err != nil {
		t.Fatal(err)
	}
	sel, err := SelectEntries(v, p)
	if err != nil {
		t.Fatal(err)
	}
	keys := jsom.Must(jsom.Must(sel.Keys()).ToSlice())
	if diff := cmp.Diff([]any{"b", "c"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFilterSkipsErrors(t *testing.T) {
	p, err := Compile("it.x > 1")
	if err != nil {
		t.Fatal(err)
	}
	l := jsom.List(jsom.Must(jsom.NewMapping().Put("x", 2)), "not a map", jsom.Must(jsom.NewMapping().Put("x", 0)))
	if n := jsom.Count(p.Filter(jsom.Must(l.Elements()))); n != 1 {
		t.Errorf("Filter matched %d, want 1", n)
	}
	if _, err := Select(l, p); !errors.Is(err, ErrEval) {
		t.Errorf("Select err = %v, want ErrEval", err)
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("done =="); !errors.Is(err, ErrCompile) {
		t.Errorf("err = %v, want ErrCompile", err)
	}
}

func TestFuncs(t *testing.T) {
	t.Setenv("JSOM_MIN_YEAR", "2016")
	tests := []struct {
		expr string
		want []string
	}{
		{`getpath(it, "$.tags[0]") == "work"`, []string{"plan"}},
		{`len(listpath(it, "$..year")) == 0`, []string{"sleep"}},
		{`(year ?? 0) > int(getenv("JSOM_MIN_YEAR"))`, []string{"read", "plan"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			sel, err := Select(todos(t), p)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, titles(t, sel)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
