package utils

// ToStringSlice filters a []any, as produced by JSON decoding, down to its
// string members.
func ToStringSlice(slice []any) []string {
	out := make([]string, 0, len(slice))
	for _, v := range slice {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
