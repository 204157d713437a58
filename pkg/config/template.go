package config

import (
	"sort"
	"strings"

	"github.com/wincross/wincross/pkg/errors"
)

// ExpandTemplate substitutes {key} placeholders from vars. "{{" and "}}"
// produce literal braces. Unknown keys and unbalanced braces fail with
// PLACEHOLDER_UNKNOWN, naming the key and the template.
func ExpandTemplate(value string, vars map[string]string, context string) (string, error) {
	if !strings.ContainsAny(value, "{}") {
		return value, nil
	}
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch c {
		case '{':
			if i+1 < len(value) && value[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(value[i+1:], '}')
			if end < 0 {
				return "", placeholderError(value[i+1:], value, context, "unterminated placeholder")
			}
			key := value[i+1 : i+1+end]
			sub, ok := vars[key]
			if !ok {
				return "", placeholderError(key, value, context, "unknown placeholder")
			}
			b.WriteString(sub)
			i += end + 1
		case '}':
			if i+1 < len(value) && value[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", placeholderError("}", value, context, "single '}'")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func placeholderError(key, template, context, reason string) error {
	return errors.Newf(errors.ErrPlaceholderUnknown, "%s '%s' in %s: %s", reason, key, context, template).
		WithDetail("placeholder", key).
		WithDetail("template", template)
}

func expandList(values []string, vars map[string]string, context string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s entries must be non-empty strings", context)
		}
		expanded, err := ExpandTemplate(v, vars, context)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// expandValues expands map values in key order so the first failure is stable.
func expandValues(values map[string]string, vars map[string]string, context string) (map[string]string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]string, len(values))
	for _, k := range keys {
		v := values[k]
		if v == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "%s values must be non-empty strings", context).
				WithDetail("key", k)
		}
		expanded, err := ExpandTemplate(v, vars, context)
		if err != nil {
			return nil, err
		}
		out[k] = expanded
	}
	return out, nil
}
