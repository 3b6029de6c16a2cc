// Package ui provides semantic text formatting for sevn's CLI output.
//
// Formatters carry meaning (Success, Error, Path) rather than raw colors,
// and degrade to plain text when color is unavailable or NO_COLOR is set.
// Decrypted variable output for eval is never formatted; only status
// messages go through this package.
package ui
