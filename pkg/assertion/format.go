package assertion

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Raw is a message argument rendered verbatim, without quoting.
type Raw string

// Lazy is a message argument computed only when a failure message is
// actually rendered. Use it for values that are expensive to build or that
// may not exist when the check passes.
type Lazy func() any

const nullValue = "<null>"

// FormatValue renders a single message argument.
//
//	nil            -> <null>
//	string         -> "s"
//	Raw            -> s
//	Lazy           -> FormatValue of its result
//	slice / array  -> {"a", "b"}
//	error          -> err.Error()
//	fmt.Stringer   -> String()
//	anything else  -> %v
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return nullValue
	case Raw:
		return string(x)
	case Lazy:
		if x == nil {
			return nullValue
		}
		return FormatValue(x())
	case string:
		return `"` + x + `"`
	case []byte:
		return `"` + string(x) + `"`
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		if rv.IsNil() {
			return nullValue
		}
	}

	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return formatList(rv)
	}
	return fmt.Sprintf("%v", v)
}

func formatList(rv reflect.Value) string {
	items := make([]string, rv.Len())
	for i := range items {
		items[i] = FormatValue(rv.Index(i).Interface())
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// FormatReason renders a because-clause as it appears in place of {reason}:
// a leading space and the word "because", or "" when reason is blank.
// args are applied with fmt.Sprintf when present.
func FormatReason(reason string, args ...any) string {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(reason), "because") {
		reason = "because " + reason
	}
	return " " + reason
}

// Render expands a failure template.
//
// {N} is replaced by FormatValue(args[N]), {reason} by reason as returned
// from FormatReason, and {context:fallback} by label, or fallback when label
// is empty. {{ and }} produce literal braces. Unknown or out-of-range
// placeholders are left as written.
func Render(template string, args []any, reason, label string) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				b.WriteString(template[i:])
				return b.String()
			}
			token := template[i+1 : i+1+end]
			if s, ok := resolve(token, args, reason, label); ok {
				b.WriteString(s)
			} else {
				b.WriteString(template[i : i+end+2])
			}
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i++
			}
			b.WriteByte('}')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func resolve(token string, args []any, reason, label string) (string, bool) {
	switch {
	case token == "reason":
		return reason, true
	case token == "context":
		return label, label != ""
	case strings.HasPrefix(token, "context:"):
		if label != "" {
			return label, true
		}
		return strings.TrimPrefix(token, "context:"), true
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 0 || n >= len(args) || token[0] == '+' || token[0] == '-' {
		return "", false
	}
	return FormatValue(args[n]), true
}
