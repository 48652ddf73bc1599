package xmldoc

// NormalizeSpace normalizes whitespace in an attribute value the way
// attribute-value normalization wants it: #xD, #xA, #x9 and runs of
// #x20 collapse into a single space, and leading and trailing
// whitespace is discarded. Normalizing an already-normalized value
// returns it unchanged.
func NormalizeSpace(value []byte) []byte {
	normalized := make([]byte, 0, len(value))
	charFound := false
	lastSpace := false
	for _, c := range value {
		switch c {
		case '\r', '\n', '\t', ' ':
			if charFound && !lastSpace {
				normalized = append(normalized, ' ')
				lastSpace = true
			}
		default:
			charFound = true
			lastSpace = false
			normalized = append(normalized, c)
		}
	}
	// There can't be multiple trailing spaces
	if n := len(normalized); n > 0 && normalized[n-1] == ' ' {
		normalized = normalized[:n-1]
	}
	return normalized
}
