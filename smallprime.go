package ievalg

// smallPrimes lists the primes this package accepts as a field characteristic.
var smallPrimes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97,
}

// isSmallPrime reports whether p is one of the characteristics this package supports.
func isSmallPrime(p int) bool {
	for _, sp := range smallPrimes {
		if sp == p {
			return true
		}
	}
	return false
}
