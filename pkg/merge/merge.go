// Package merge implements the list and map merge primitives used when
// layering configuration.
package merge

// Lists concatenates base then override. The result never aliases either input.
func Lists[T any](base, override []T) []T {
	out := make([]T, 0, len(base)+len(override))
	out = append(out, base...)
	return append(out, override...)
}

// Env overlays override onto a copy of base key by key.
func Env(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// DedupePreserveOrder drops later duplicates, keeping first-seen order.
func DedupePreserveOrder[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// MoveToFront returns items with item first and any other occurrence removed.
func MoveToFront[T comparable](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	for _, existing := range items {
		if existing != item {
			out = append(out, existing)
		}
	}
	return out
}
