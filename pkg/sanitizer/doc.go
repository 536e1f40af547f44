// Package sanitizer holds small string transformations for cleaning user input
// before validation. Transformations compose with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	name := clean(raw)
package sanitizer
