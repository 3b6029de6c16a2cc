package env

import (
	"fmt"
	"sort"
	"strings"

	sevnerrors "github.com/thoerner/sevn/internal/errors"
)

// FormatExports renders a variable map as shell export lines suitable for
// eval in a POSIX shell:
//
//	export STRIPE_KEY='sk_test_123'
//
// Values are single-quoted with embedded quotes escaped, so arbitrary
// secret material survives the round trip through eval unmodified. Lines
// are emitted in sorted key order.
func FormatExports(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString("export ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(singleQuote(vars[k]))
		b.WriteString("\n")
	}
	return b.String()
}

// ParseAssignment splits a KEY=VALUE argument. The value may itself
// contain '=' characters; only the first one separates key from value.
func ParseAssignment(arg string) (key, value string, err error) {
	key, value, found := strings.Cut(arg, "=")
	if !found {
		return "", "", fmt.Errorf("%w: expected KEY=VALUE, got %q", sevnerrors.ErrInvalidInput, arg)
	}
	if key == "" {
		return "", "", fmt.Errorf("%w: %w", sevnerrors.ErrInvalidInput, sevnerrors.ErrEmptyKey)
	}
	return key, value, nil
}

// singleQuote wraps s in single quotes, escaping embedded single quotes
// in the standard POSIX way.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
