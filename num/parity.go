package num

// IsEven reports whether x is divisible by two.
func IsEven[T Integer](x T) bool {
	return x%2 == 0
}

// IsOdd reports whether x is not divisible by two.
func IsOdd[T Integer](x T) bool {
	return x%2 != 0
}

// Parity returns "even" or "odd".
func Parity[T Integer](x T) string {
	if IsEven(x) {
		return "even"
	}
	return "odd"
}
