package db

// NullIfEmpty helps store optional strings without writing empty values.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// LikePattern wraps a search term for a parameterized substring match. The
// term itself is always bound as an argument, never concatenated into SQL.
func LikePattern(term string) string {
	return "%" + term + "%"
}
