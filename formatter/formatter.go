// Package formatter masks raw input strings such as phone numbers.
// Formatter depends only on the Mask abstraction; concrete masks are
// plugged in by the caller.
package formatter

const separator = "-"

type Mask interface {
	Mask(input string) string
}

type Formatter struct {
	Mask Mask
}

func (f Formatter) Format(input string) string {
	return f.Mask.Mask(input)
}

type NumberMask struct{}

// Mask turns 12345678 into 1234-5678. Other lengths are returned as is.
func (NumberMask) Mask(input string) string {
	return insertAt(input, 8, 4)
}

type PhoneMask struct{}

// Mask turns 123456789 into 123456-789. Other lengths are returned as is.
func (PhoneMask) Mask(input string) string {
	return insertAt(input, 9, 6)
}

func insertAt(input string, length, position int) string {
	runes := []rune(input)
	if len(runes) != length {
		return input
	}

	return string(runes[:position]) + separator + string(runes[position:])
}
