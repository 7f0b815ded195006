package declapi

import "strings"

// normalizeType converts a loosely-typed type token into its canonical form.
// A list input signals a union and its members are kept in order; recognized
// scalar tags map to their lowercase string form; any other token is converted
// to its string form verbatim. Total over any input, no error conditions.
func normalizeType(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		list := make([]string, 0, len(val))
		for _, item := range val {
			list = append(list, normalizeTag(item))
		}
		return list
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			list = append(list, normalizeTag(item))
		}
		return list
	default:
		return []string{normalizeTag(v)}
	}
}

func normalizeTag(v any) string {
	s := toString(v)
	switch strings.ToLower(s) {
	case TypeNumber, TypeString, TypeBoolean, TypeObject, TypeArray:
		return strings.ToLower(s)
	}
	return s
}
