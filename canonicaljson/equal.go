package canonicaljson

// String returns the canonical encoding as a string, suitable as a map key
// when deduplicating JSON values.
func String(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Equal reports whether a and b are the same JSON value under canonical
// encoding: object member order is irrelevant and numerically equal numbers
// compare equal regardless of their source spelling.
func Equal(a, b any) (bool, error) {
	ca, err := Marshal(a)
	if err != nil {
		return false, err
	}
	cb, err := Marshal(b)
	if err != nil {
		return false, err
	}
	return string(ca) == string(cb), nil
}
