package utils

// IsOneOf checks if the value is one of the allowed options.
func IsOneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// IsPositive checks if the value is a positive integer.
func IsPositive(value int) bool {
	return value > 0
}
