package header

// Key is a header name whose identity ignores ASCII case. Map stores entries
// under Key.Fold and keeps the Key itself for iteration.
type Key string

// Fold returns the case-folded identity of the key. Only ASCII letters fold.
func (k Key) Fold() string {
	s := string(k)
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
