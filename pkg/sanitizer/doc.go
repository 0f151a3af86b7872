// Package sanitizer normalizes user input before it reaches validation or
// storage. Functions are pure string transforms that can be chained with
// Apply or Compose:
//
//	name := sanitizer.Apply(raw, sanitizer.RemoveControlChars, sanitizer.CollapseWhitespace)
//	email := sanitizer.NormalizeEmail(raw)
package sanitizer
