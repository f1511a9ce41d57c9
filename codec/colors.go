package codec

import (
	"github.com/signadot/jsom"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind jsom.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range jsom.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = jsom.NumberKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = jsom.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = jsom.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = jsom.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = jsom.MappingKind
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	return colors
}

func (c *Colors) Color(k jsom.Kind, attr ColorAttr) func(string, ...any) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: attr}]
	if ok {
		return f
	}
	return c.Default
}

func colorDefault(f string, args ...any) string {
	return color.New(color.Reset).Sprintf(f, args...)
}
