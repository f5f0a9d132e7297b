package encode

import (
	"fmt"

	"github.com/ederic-oytas/flogic/prop"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind prop.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	VarColor ColorAttr = iota
	OpColor
	ParenColor
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
	for _, k := range prop.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: ParenColor,
		}
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
		able.Attr = OpColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Kind: prop.AtomicKind, Attr: VarColor}
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Kind: prop.NotKind, Attr: OpColor}
	colors.Map[able] = color.CyanString

	return colors
}

func (c *Colors) Color(k prop.Kind, a ColorAttr, s string) string {
	f, ok := c.Map[Colorable{Kind: k, Attr: a}]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
