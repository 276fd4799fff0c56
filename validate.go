package polyline

const (
	minValid = '!' // 0x21, first printable non-blank ASCII
	maxValid = '~' // 0x7E
)

// IsValidEncoding reports whether s could be an encoded polyline: non-empty
// and composed solely of printable, non-blank ASCII bytes ('!'..'~'). It is a
// cheap syntactic pre-filter, not a decode guarantee - a truncated value still
// passes, and so do strings the encoder would never emit (Encode stays within
// '?'..'~'; validation only rejects what can never be an encoding: whitespace,
// control bytes, non-ASCII). The empty string is rejected even though Decode
// accepts it; validation answers "is there an encoding here", not "would
// Decode succeed".
func IsValidEncoding(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < minValid || s[i] > maxValid {
			return false
		}
	}
	return true
}

// IsValidEncodingValue is IsValidEncoding over an untyped value, for callers
// holding untrusted dynamic data (a field pulled out of decoded JSON, say).
// Anything that is not a string is reported as invalid, never as an error.
func IsValidEncodingValue(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return IsValidEncoding(s)
}
