// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastsimd

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Slice kernels shared by the multi-lane value types. Every function writes
// len(r) lanes; the operands have the same length as r.
//
// Lane masks (the []int32 arguments) hold 0 or -1 per lane and are tested by
// the sign bit, like blendvps.

func fillF(r []float32, v float32) {
	for i := range r {
		r[i] = v
	}
}

func fillI(r []int32, v int32) {
	for i := range r {
		r[i] = v
	}
}

func iotaF(r []float32) {
	for i := range r {
		r[i] = float32(i)
	}
}

func iotaI(r []int32) {
	for i := range r {
		r[i] = int32(i)
	}
}

func checkLen(n, lanes int) {
	if n < lanes {
		panic(fmt.Sprintf("fastsimd: slice of length %d is shorter than %d lanes", n, lanes))
	}
}

// Float arithmetic.

func addF(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

func subF(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
}

func mulF(r, a, b []float32) {
	for i := range r {
		r[i] = mulLane(a[i], b[i])
	}
}

func divF(r, a, b []float32) {
	for i := range r {
		r[i] = a[i] / b[i]
	}
}

func negF(r, a []float32) {
	for i := range r {
		r[i] = negLane(a[i])
	}
}

func mulAddF(r, a, b, c []float32, fused bool) {
	for i := range r {
		r[i] = mulAddLane(a[i], b[i], c[i], fused)
	}
}

func mapF(r, a []float32, fn func(float32) float32) {
	for i := range r {
		r[i] = fn(a[i])
	}
}

func zipF(r, a, b []float32, fn func(a, b float32) float32) {
	for i := range r {
		r[i] = fn(a[i], b[i])
	}
}

func sqrtF(r, a []float32) {
	for i := range r {
		r[i] = math32.Sqrt(a[i])
	}
}

// Float bitwise.

func andF(r, a, b []float32) {
	for i := range r {
		r[i] = fromBits(bitsF(a[i]) & bitsF(b[i]))
	}
}

func orF(r, a, b []float32) {
	for i := range r {
		r[i] = fromBits(bitsF(a[i]) | bitsF(b[i]))
	}
}

func xorF(r, a, b []float32) {
	for i := range r {
		r[i] = fromBits(bitsF(a[i]) ^ bitsF(b[i]))
	}
}

func andNotF(r, a, b []float32) {
	for i := range r {
		r[i] = fromBits(bitsF(a[i]) &^ bitsF(b[i]))
	}
}

// Int arithmetic and bitwise.

func addI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

func subI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] - b[i]
	}
}

func mulI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] * b[i]
	}
}

func andI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
}

func orI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
}

func xorI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
}

func andNotI(r, a, b []int32) {
	for i := range r {
		r[i] = a[i] &^ b[i]
	}
}

func shlI(r, a []int32, n uint) {
	for i := range r {
		r[i] = a[i] << n
	}
}

func shrI(r, a []int32, n uint) {
	for i := range r {
		r[i] = a[i] >> n
	}
}

func notI(r, a []int32) {
	for i := range r {
		r[i] = ^a[i]
	}
}

func negI(r, a []int32) {
	for i := range r {
		r[i] = -a[i]
	}
}

func absI(r, a []int32) {
	for i := range r {
		r[i] = absILane(a[i])
	}
}

func minI(r, a, b []int32) {
	for i := range r {
		r[i] = min(a[i], b[i])
	}
}

func maxI(r, a, b []int32) {
	for i := range r {
		r[i] = max(a[i], b[i])
	}
}

// Conversions.

func castToF(r []float32, a []int32) {
	for i := range r {
		r[i] = math.Float32frombits(uint32(a[i]))
	}
}

func castToI(r []int32, a []float32) {
	for i := range r {
		r[i] = int32(math.Float32bits(a[i]))
	}
}

func convertToF(r []float32, a []int32) {
	for i := range r {
		r[i] = float32(a[i])
	}
}

func convertToI(r []int32, a []float32, cvt func(float32) int32) {
	for i := range r {
		r[i] = cvt(a[i])
	}
}

// Compares produce lane masks.

func eqF(r []int32, a, b []float32) {
	for i := range r {
		r[i] = laneOf(a[i] == b[i])
	}
}

func gtF(r []int32, a, b []float32) {
	for i := range r {
		r[i] = laneOf(a[i] > b[i])
	}
}

func ltF(r []int32, a, b []float32) {
	for i := range r {
		r[i] = laneOf(a[i] < b[i])
	}
}

func geF(r []int32, a, b []float32) {
	for i := range r {
		r[i] = laneOf(a[i] >= b[i])
	}
}

func leF(r []int32, a, b []float32) {
	for i := range r {
		r[i] = laneOf(a[i] <= b[i])
	}
}

func eqI(r []int32, a, b []int32) {
	for i := range r {
		r[i] = laneOf(a[i] == b[i])
	}
}

func gtI(r []int32, a, b []int32) {
	for i := range r {
		r[i] = laneOf(a[i] > b[i])
	}
}

func ltI(r []int32, a, b []int32) {
	for i := range r {
		r[i] = laneOf(a[i] < b[i])
	}
}

func firstN(r []int32, n int) {
	for i := range r {
		r[i] = laneOf(i < n)
	}
}

// Lane-mask consumers.

func blendF(r []float32, m []int32, a, b []float32) {
	for i := range r {
		if m[i] < 0 {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
}

func blendI(r []int32, m []int32, a, b []int32) {
	for i := range r {
		if m[i] < 0 {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
}

// bitSelectF is the and/andnot/or form of blendF for targets without a blend
// instruction. The mask lanes are sign-extended first.
func bitSelectF(r []float32, m []int32, a, b []float32) {
	for i := range r {
		s := uint32(m[i] >> 31)
		r[i] = fromBits(bitsF(a[i])&s | bitsF(b[i])&^s)
	}
}

func bitSelectI(r []int32, m []int32, a, b []int32) {
	for i := range r {
		s := m[i] >> 31
		r[i] = a[i]&s | b[i]&^s
	}
}

func maskLoadF(r []float32, m []int32, p []float32) {
	for i := range r {
		if m[i] < 0 {
			r[i] = p[i]
		}
	}
}

func maskStoreF(m []int32, v []float32, p []float32) {
	for i := range v {
		if m[i] < 0 {
			p[i] = v[i]
		}
	}
}

func maskStoreI(m []int32, v []int32, p []int32) {
	for i := range v {
		if m[i] < 0 {
			p[i] = v[i]
		}
	}
}

// packSigns gathers the sign bit of each lane, like movmskps.
func packSigns(m []int32) uint32 {
	var b uint32
	for i, v := range m {
		b |= uint32(v>>31&1) << i
	}
	return b
}

// unpackBits expands a bit mask into lane masks.
func unpackBits(r []int32, b uint32) {
	for i := range r {
		r[i] = laneOf(b>>i&1 != 0)
	}
}

func lowBits(n int) uint32 {
	switch {
	case n <= 0:
		return 0
	case n >= 32:
		return math.MaxUint32
	}
	return 1<<n - 1
}
