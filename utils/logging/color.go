// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// Color is an ANSI escape sequence controlling terminal text color.
type Color string

const (
	Black       Color = "\033[0;30m"
	Red         Color = "\033[0;31m"
	Green       Color = "\033[0;32m"
	Yellow      Color = "\033[0;33m"
	Blue        Color = "\033[0;34m"
	Purple      Color = "\033[0;35m"
	Cyan        Color = "\033[0;36m"
	LightGray   Color = "\033[0;37m"
	DarkGray    Color = "\033[1;30m"
	LightRed    Color = "\033[1;31m"
	LightGreen  Color = "\033[1;32m"
	LightYellow Color = "\033[1;33m"
	LightBlue   Color = "\033[1;34m"
	LightPurple Color = "\033[1;35m"
	LightCyan   Color = "\033[1;36m"
	White       Color = "\033[1;37m"
	Orange      Color = "\033[0;38;5;208m"

	Reset Color = "\033[0;0m"
)

// Wrap returns [text] colored with [c], resetting afterwards.
func (c Color) Wrap(text string) string {
	return string(c) + text + string(Reset)
}

func (l Level) Color() Color {
	switch l {
	case Fatal:
		return Red
	case Error:
		return Orange
	case Warn:
		return Yellow
	case Info:
		// Use the terminal's default rather than white to stay readable on
		// white backgrounds.
		return Reset
	case Trace:
		return LightPurple
	case Debug:
		return LightBlue
	case Verbo:
		return LightGreen
	default:
		return Reset
	}
}
