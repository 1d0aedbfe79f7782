package key

// ForChar maps an ASCII character to the key that produces it and whether
// shift has to be held while tapping it. ok is false for anything outside
// letters, digits and space; callers are expected to skip those.
func ForChar(c byte) (k Key, shift bool, ok bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return A + Key(c-'a'), false, true
	case c >= 'A' && c <= 'Z':
		return A + Key(c-'A'), true, true
	case c >= '0' && c <= '9':
		return Num0 + Key(c-'0'), false, true
	case c == ' ':
		return Space, false, true
	}
	return 0, false, false
}
