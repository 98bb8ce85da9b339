package hashtable

// multiplierPairs holds the built-in (p1, p2) odd-multiplier pairs
// Multiplication draws its two hash constants from. The values are the
// first two 64-bit primes from the xxHash64 constant set
// (Cyan4973/xxHash), real, well-studied odd constants close to 2^64
// with good avalanche behaviour under multiplication, rather than ones
// invented for this table.
var multiplierPairs = [2]uint64{
	0x9E3779B185EBCA87, // xxHash64 PRIME64_1
	0xC2B2AE3D27D4EB4F, // xxHash64 PRIME64_2
}
