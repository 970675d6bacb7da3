package utils

import "strings"

// NormalizeCadastralRef normalizes a cadastral parcel reference. Strips
// whitespace, collapses separators to a single slash and uppercases letters,
// so "123 / 4a" and "123/4A" key the same parcel.
func NormalizeCadastralRef(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "/")
	normalized = strings.ToUpper(normalized)
	return normalized
}
