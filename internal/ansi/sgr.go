// Package ansi encodes linegrep styles as ANSI SGR escape sequences.
package ansi

import (
	"strconv"
	"strings"
)

// Attribute mirrors config.Attribute so we avoid an import cycle.
// The values are identical and can be cast directly.
type Attribute = uint32

const (
	AttrTrueColor Attribute = 0x01000000
	AttrBold      Attribute = 0x02000000
	AttrUnderline Attribute = 0x04000000
	AttrReverse   Attribute = 0x08000000
)

const (
	paletteMask = 0x01ff
	rgbMask     = 0x00ffffff
)

// Reset is the sequence that turns off every attribute
const Reset = "\x1b[0m"

// Sequence returns the SGR escape sequence that selects the given
// foreground and background. The empty string is returned when both
// are the terminal default, so callers can skip the Reset as well.
func Sequence(fg, bg Attribute) string {
	var params []string

	if fg&AttrBold != 0 || bg&AttrBold != 0 {
		params = append(params, "1")
	}
	if fg&AttrUnderline != 0 {
		params = append(params, "4")
	}
	if fg&AttrReverse != 0 {
		params = append(params, "7")
	}
	params = appendColor(params, fg, 30, 38)
	params = appendColor(params, bg, 40, 48)

	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// appendColor appends the parameters for the color part of a. base is
// the first of the 8 basic color codes, extended is the code introducing
// 256-color and truecolor values.
func appendColor(params []string, a Attribute, base, extended int) []string {
	if a&AttrTrueColor != 0 {
		rgb := a & rgbMask
		return append(params,
			strconv.Itoa(extended),
			"2",
			strconv.Itoa(int(rgb>>16&0xff)),
			strconv.Itoa(int(rgb>>8&0xff)),
			strconv.Itoa(int(rgb&0xff)),
		)
	}

	idx := int(a & paletteMask)
	switch {
	case idx == 0:
		return params
	case idx <= 8:
		return append(params, strconv.Itoa(base+idx-1))
	default:
		return append(params, strconv.Itoa(extended), "5", strconv.Itoa(idx-1))
	}
}
