// Package obfint provides Int64, a signed 64-bit integer that is kept
// XOR-masked in memory so its plaintext bytes never appear contiguously.
// It defeats casual memory scanners that search for a known value or track
// how it changes over time.
//
//	score := obfint.New(100)
//	score = score.Add(obfint.New(25))  // stays masked, fresh key
//	bonus := obfint.MulInt(score, 2)   // plain int64: 250
//	if obfint.GreaterThan(score, 100) {
//		fmt.Println(score)             // 125
//	}
//
// Combining two Int64 values yields an Int64; combining an Int64 with a plain
// integer yields a plain int64. Masks come from a process-wide Source, which
// defaults to fastrand and can be replaced with SetSource.
//
// This is obfuscation, not encryption. The 8-byte key sits right next to the
// 8 masked bytes, so anyone who can read both (a single memory snapshot, or a
// scan for the adjacent 16-byte pair) recovers the value. Keys are not
// rotated while a value is unchanged.
package obfint
