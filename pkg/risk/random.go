package risk

import (
	"math/rand"

	"github.com/pkg/errors"
)

// RandomNumberOfLength returns a uniformly distributed integer with exactly
// n decimal digits. For n = 1 that is 0..9; for n >= 2 the first digit is
// never zero. n is capped at 18 so the result fits in an int64.
func RandomNumberOfLength(n int) (int64, error) {
	if n <= 0 {
		return 0, errors.Errorf("length must be positive, got %d", n)
	}

	if n > 18 {
		return 0, errors.Errorf("length %d exceeds int64 range", n)
	}

	if n == 1 {
		return rand.Int63n(10), nil
	}

	low := int64(1)
	for i := 1; i < n; i++ {
		low *= 10
	}

	return low + rand.Int63n(low*9), nil
}
