// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sha3

import "math/bits"

// rhoCount, rhoX, and rhoY describe the per-lane rotation offsets applied
// by the rho step, indexed in the scan order used below; lane (0,0) is
// never rotated. piX[x][y] names the source x-coordinate the pi step reads
// from when producing lane (x,y), reading from the y==x row of the state
// as it stood after rho. iotaRC holds the 24 round constants xored into
// lane (0,0) by the iota step.
var rhoCount = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

var rhoX = [24]int{1, 0, 2, 1, 2, 3, 3, 0, 1, 3, 1, 4, 4, 0, 3, 4, 3, 2, 2, 0, 4, 2, 4, 1}
var rhoY = [24]int{0, 2, 1, 2, 3, 3, 0, 1, 3, 1, 4, 4, 0, 3, 4, 3, 2, 2, 0, 4, 2, 4, 1, 1}

var piX = [5][5]int{
	{0, 3, 1, 4, 2},
	{1, 4, 2, 0, 3},
	{2, 0, 3, 1, 4},
	{3, 1, 4, 2, 0},
	{4, 2, 0, 3, 1},
}

var iotaRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotl64 rotates v left by n bits, the left-rotation convention this
// package's source tables (rhoCount, LeftRotate64 in the C original) were
// written against.
func rotl64(v uint64, n uint) uint64 { return bits.RotateLeft64(v, int(n)) }

// keccakF applies the Keccak-f[1600] permutation to the 25-lane state a,
// laid out so lane (x, y) lives at a[x+5*y], in 24 rounds of theta, rho,
// pi, chi, and iota.
func keccakF(a *[25]uint64) {
	var b [25]uint64
	var c, d [5]uint64

	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		d[0] = c[4] ^ rotl64(c[1], 1)
		d[1] = c[0] ^ rotl64(c[2], 1)
		d[2] = c[1] ^ rotl64(c[3], 1)
		d[3] = c[2] ^ rotl64(c[4], 1)
		d[4] = c[3] ^ rotl64(c[0], 1)
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho: a(0,0) is left untouched, every other lane rotates.
		for i := 0; i < 24; i++ {
			idx := rhoX[i] + 5*rhoY[i]
			a[idx] = rotl64(a[idx], rhoCount[i])
		}

		// pi
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				b[i+5*j] = a[piX[i][j]+5*i]
			}
		}

		// chi
		for y := 0; y < 5; y++ {
			a[0+5*y] = b[0+5*y] ^ (^b[1+5*y] & b[2+5*y])
			a[1+5*y] = b[1+5*y] ^ (^b[2+5*y] & b[3+5*y])
			a[2+5*y] = b[2+5*y] ^ (^b[3+5*y] & b[4+5*y])
			a[3+5*y] = b[3+5*y] ^ (^b[4+5*y] & b[0+5*y])
			a[4+5*y] = b[4+5*y] ^ (^b[0+5*y] & b[1+5*y])
		}

		// iota
		a[0] ^= iotaRC[round]
	}
}
