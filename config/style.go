package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// StyleSet holds the styles for the two highlighted parts of the output
type StyleSet struct {
	LineNumber Style `json:"LineNumber" yaml:"LineNumber" toml:"LineNumber"`
	Matched    Style `json:"Matched" yaml:"Matched" toml:"Matched"`
}

// Attribute represents terminal display attributes such as colors
// and text styling (bold, underline, reverse). It is a uint32 bitfield:
//
//	Bits 0-8:   Palette color index (0=default, 1-256 for 256-color palette)
//	Bits 0-23:  RGB color value (when AttrTrueColor flag is set)
//	Bit 24:     AttrTrueColor flag, set for true color values
//	Bit 25:     AttrBold
//	Bit 26:     AttrUnderline
//	Bit 27:     AttrReverse
//	Bits 28-31: Reserved
type Attribute uint32

// Named palette color constants (values 0-8).
const (
	ColorDefault Attribute = 0x0000
	ColorBlack   Attribute = 0x0001
	ColorRed     Attribute = 0x0002
	ColorGreen   Attribute = 0x0003
	ColorYellow  Attribute = 0x0004
	ColorBlue    Attribute = 0x0005
	ColorMagenta Attribute = 0x0006
	ColorCyan    Attribute = 0x0007
	ColorWhite   Attribute = 0x0008
)

const (
	AttrTrueColor Attribute = 0x01000000
	AttrBold      Attribute = 0x02000000
	AttrUnderline Attribute = 0x04000000
	AttrReverse   Attribute = 0x08000000
)

// Style describes display attributes for foreground and background.
type Style struct {
	Fg Attribute
	Bg Attribute
}

var (
	StringToFg = map[string]Attribute{
		"default": ColorDefault,
		"black":   ColorBlack,
		"red":     ColorRed,
		"green":   ColorGreen,
		"yellow":  ColorYellow,
		"blue":    ColorBlue,
		"magenta": ColorMagenta,
		"cyan":    ColorCyan,
		"white":   ColorWhite,
	}
	StringToBg = map[string]Attribute{
		"on_default": ColorDefault,
		"on_black":   ColorBlack,
		"on_red":     ColorRed,
		"on_green":   ColorGreen,
		"on_yellow":  ColorYellow,
		"on_blue":    ColorBlue,
		"on_magenta": ColorMagenta,
		"on_cyan":    ColorCyan,
		"on_white":   ColorWhite,
	}
	StringToFgAttr = map[string]Attribute{
		"bold":      AttrBold,
		"underline": AttrUnderline,
		"reverse":   AttrReverse,
	}
	StringToBgAttr = map[string]Attribute{
		"on_bold": AttrBold,
	}
)

// NewStyleSet creates a new StyleSet struct
func NewStyleSet() *StyleSet {
	ss := &StyleSet{}
	ss.Init()
	return ss
}

// Init sets the default styles: a cyan line number and green matches.
func (ss *StyleSet) Init() {
	ss.LineNumber.Fg = ColorCyan
	ss.LineNumber.Bg = ColorDefault
	ss.Matched.Fg = ColorGreen
	ss.Matched.Bg = ColorDefault
}

// UnmarshalJSON accepts either a list of strings, or a single string
// with space separated values.
func (s *Style) UnmarshalJSON(buf []byte) error {
	raw := []string{}
	if err := json.Unmarshal(buf, &raw); err != nil {
		var str string
		if err2 := json.Unmarshal(buf, &str); err2 != nil {
			return fmt.Errorf("failed to unmarshal Style: %w", err)
		}
		raw = strings.Fields(str)
	}
	return StringsToStyle(s, raw)
}

// UnmarshalYAML decodes a YAML array of strings, or a single string,
// into a Style.
func (s *Style) UnmarshalYAML(unmarshal func(any) error) error {
	var raw []string
	if err := unmarshal(&raw); err != nil {
		var str string
		if err2 := unmarshal(&str); err2 != nil {
			return fmt.Errorf("failed to unmarshal Style from YAML: %w", err)
		}
		raw = strings.Fields(str)
	}
	return StringsToStyle(s, raw)
}

// UnmarshalText decodes a space separated string such as "green bold".
// TOML config files use this form.
func (s *Style) UnmarshalText(b []byte) error {
	return StringsToStyle(s, strings.Fields(string(b)))
}

// StringsToStyle parses an array of color and attribute strings (e.g. "red",
// "on_blue", "bold", "#ff00ff", "orange") into a Style's foreground and
// background Attributes. Color names beyond the basic eight are looked up
// in tcell's table of W3C color names.
func StringsToStyle(style *Style, raw []string) error {
	style.Fg = ColorDefault
	style.Bg = ColorDefault

	for _, s := range raw {
		fg, ok := StringToFg[s]
		if ok {
			style.Fg = fg
		} else if strings.HasPrefix(s, "#") && len(s) == 7 {
			if rgb, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
				style.Fg = Attribute(rgb) | AttrTrueColor
			}
		} else if fg, err := strconv.ParseUint(s, 10, 8); err == nil {
			style.Fg = Attribute(fg + 1)
		} else if rgb, ok := namedColor(s); ok {
			style.Fg = rgb
		}

		bg, ok := StringToBg[s]
		if ok {
			style.Bg = bg
		} else if strings.HasPrefix(s, "on_#") && len(s) == 10 {
			if rgb, err := strconv.ParseUint(s[4:], 16, 32); err == nil {
				style.Bg = Attribute(rgb) | AttrTrueColor
			}
		} else if name, found := strings.CutPrefix(s, "on_"); found {
			if bg, err := strconv.ParseUint(name, 10, 8); err == nil {
				style.Bg = Attribute(bg + 1)
			} else if rgb, ok := namedColor(name); ok {
				style.Bg = rgb
			}
		}
	}

	for _, s := range raw {
		if fgAttr, ok := StringToFgAttr[s]; ok {
			style.Fg |= fgAttr
		}

		if bgAttr, ok := StringToBgAttr[s]; ok {
			style.Bg |= bgAttr
		}
	}

	return nil
}

func namedColor(name string) (Attribute, bool) {
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault {
		return 0, false
	}
	rgb := c.Hex()
	if rgb < 0 {
		return 0, false
	}
	return Attribute(rgb) | AttrTrueColor, true
}
