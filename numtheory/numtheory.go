package numtheory

// maxFactorial64 is the largest n with n! representable in int64 (20! fits, 21! overflows).
const maxFactorial64 = 20

// IsPrime reports whether n is prime.
//
// Algorithm Outline (6k±1 wheel):
//  1. n ≤ 1 → false; n ∈ {2, 3} → true.
//  2. n divisible by 2 or 3 → false.
//  3. Every remaining prime has the form 6k±1, so trial-divide only by
//     d and d+2 for d = 5, 11, 17, … while d² ≤ n; the first divisor
//     found proves compositeness.
//
// Complexity: O(√n) divisions, O(1) memory.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for d := int64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}

	return true
}

// Factorial returns n! computed iteratively.
//
// Errors:
//   - ErrDomain — n < 0 (factorial is undefined), or n > 20 (the
//     result exceeds int64; arbitrary precision is out of scope).
//
// The loop keeps call depth constant: large arguments can never
// exhaust the stack the way a recursive definition could.
// Complexity: O(n) multiplications, O(1) memory.
func Factorial(n int64) (int64, error) {
	if n < 0 || n > maxFactorial64 {
		return 0, ErrDomain
	}

	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}

	return result, nil
}

// GCD returns the greatest common divisor of a and b via the iterative
// Euclidean algorithm. Operands are normalized to their absolute
// values first, so the result is non-negative for every sign
// combination rather than inheriting the host's truncated-modulo sign.
// GCD(a, 0) = |a|; GCD(0, 0) = 0.
//
// Complexity: O(log min(|a|,|b|)) divisions, O(1) memory.
func GCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple |a·b| / GCD(a, b).
//
// The quotient |a|/g is taken before multiplying by |b| to keep
// intermediate values inside int64 whenever the final result fits.
// LCM(0, n) = 0 for n ≠ 0.
//
// Errors:
//   - ErrZeroDivision — both operands are 0 (gcd is 0, the quotient
//     is undefined).
//
// Complexity: O(log min(|a|,|b|)), O(1) memory.
func LCM(a, b int64) (int64, error) {
	if a == 0 && b == 0 {
		return 0, ErrZeroDivision
	}
	if a == 0 || b == 0 {
		return 0, nil
	}

	g := GCD(a, b)

	return abs64(a) / g * abs64(b), nil
}

// Fibonacci returns the first n terms of the sequence 0, 1, 1, 2, 3, …
// as an eagerly materialized slice. n ≤ 0 yields an empty slice;
// no state is retained between calls.
//
// Complexity: O(n) time, O(n) memory for the result.
func Fibonacci(n int) []int64 {
	seq := make([]int64, 0, max(n, 0))
	if n <= 0 {
		return seq
	}

	seq = append(seq, 0)
	if n == 1 {
		return seq
	}

	seq = append(seq, 1)
	for i := 2; i < n; i++ {
		seq = append(seq, seq[i-1]+seq[i-2])
	}

	return seq
}

// IsPerfect reports whether n equals the sum of its proper divisors.
//
// Divisors are found in pairs (i, n/i) for i ≤ √n, adding both ends
// of each pair and counting a square root only once; the walk costs
// O(√n) instead of the naive O(n) scan. n ≤ 1 → false.
func IsPerfect(n int64) bool {
	if n <= 1 {
		return false
	}

	sum := int64(1) // 1 divides everything; n itself is not proper
	for i := int64(2); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		sum += i
		if i*i != n {
			sum += n / i
		}
	}

	return sum == n
}

// Divisors returns every positive divisor of n (including n itself)
// in ascending order, using the same √n pairing walk as IsPerfect.
// n < 1 yields an empty slice.
//
// Complexity: O(√n) time, O(d) memory for d divisors.
func Divisors(n int64) []int64 {
	if n < 1 {
		return []int64{}
	}

	var low, high []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if i*i != n {
			high = append(high, n/i)
		}
	}

	// high holds the large halves in descending order; reverse-append
	// to keep the result ascending.
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return low
}

// abs64 returns |v|. Behavior at math.MinInt64 follows two's-complement
// wrap, the same as the standard library's integer arithmetic.
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
