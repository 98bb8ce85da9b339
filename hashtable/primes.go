package hashtable

// divisionPrimes is the built-in ascending prime table Division draws
// its slot count from, each entry roughly double the last. The table
// mirrors the classic growth-prime sequence used by bucket hash tables
// (e.g. the one shipped with the GNU C++ standard library's unordered
// containers), extended upward with primes close to successive powers
// of two so the last entry stays representable as a 64-bit word.
var divisionPrimes = []uint64{
	53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869, 3145739, 6291469,
	12582917, 25165843, 50331653, 100663319, 201326611, 402653189,
	805306457, 1610612741, 3221225473, 4294967291,
	8589934583, 17179869143, 34359738337, 68719476731,
	137438953447, 274877906899, 549755813881, 1099511627689,
	2199023255531, 4398046511093, 8796093022151, 17592186044399,
	35184372088777, 70368744177643, 140737488355213, 281474976710597,
	562949953421231, 1125899906842597, 2251799813685119,
	4503599627370449, 9007199254740881, 18014398509481951,
	36028797018963913, 72057594037927931, 144115188075855859,
	288230376151711717, 576460752303423433, 1152921504606846883,
	2305843009213693921, 4611686018427387847, 9223372036854775783,
}

// divisionMaxCount is the largest slot count Division will ever grow to.
var divisionMaxCount = divisionPrimes[len(divisionPrimes)-1]

// nextPrime returns the smallest entry of divisionPrimes strictly greater
// than n, or divisionMaxCount (== n) if n is already at or beyond the top
// of the table.
func nextPrime(n uint64) uint64 {
	for _, p := range divisionPrimes {
		if p > n {
			return p
		}
	}
	return divisionMaxCount
}
