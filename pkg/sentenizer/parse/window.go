package parse

import "unicode/utf8"

// LeftWindow returns the last width code points of s.
func LeftWindow(s string, width int) string {
	if width <= 0 {
		return ""
	}
	i := len(s)
	for n := 0; n < width && i > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}

// RightWindow returns the first width code points of s.
func RightWindow(s string, width int) string {
	if width <= 0 {
		return ""
	}
	i := 0
	for n := 0; n < width && i < len(s); n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
