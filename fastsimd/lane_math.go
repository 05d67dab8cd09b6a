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
	"math"

	"github.com/chewxy/math32"
)

// Per-lane semantics of the individual instructions. The vector types and
// backends apply these lane by lane.

const twoTo23 = 1 << 23

func laneOf(b bool) int32 {
	if b {
		return -1
	}
	return 0
}

func bitsF(x float32) uint32 { return math.Float32bits(x) }

func fromBits(u uint32) float32 { return math.Float32frombits(u) }

func mulLane(a, b float32) float32 {
	// The conversion forbids fusing the product into a following add.
	return float32(a * b)
}

func fmaLane(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

func mulAddLane(a, b, c float32, fused bool) float32 {
	if fused {
		return fmaLane(a, b, c)
	}
	return mulLane(a, b) + c
}

func negLane(a float32) float32 { return fromBits(bitsF(a) ^ signBit32) }

func absLane(a float32) float32 { return fromBits(bitsF(a) & absMask32) }

func notLane(a float32) float32 { return fromBits(bitsF(a) ^ allOnes32) }

func absILane(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

// minX86 and maxX86 follow minps/maxps: the second operand is returned when
// either operand is NaN or both are zero.
func minX86(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxX86(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minNEON and maxNEON follow fmin/fmax: NaN propagates and -0 < +0.
func minNEON(a, b float32) float32 {
	switch {
	case a != a || b != b:
		return math32.NaN()
	case a < b:
		return a
	case b < a:
		return b
	}
	return fromBits(bitsF(a) | bitsF(b))
}

func maxNEON(a, b float32) float32 {
	switch {
	case a != a || b != b:
		return math32.NaN()
	case a > b:
		return a
	case b > a:
		return b
	}
	return fromBits(bitsF(a) & bitsF(b))
}

// cvtX86 follows cvtps2dq: round to nearest even, and the "integer
// indefinite" value MinInt32 for NaN and out of range input.
func cvtX86(x float32) int32 {
	r := math.RoundToEven(float64(x))
	if r != r || r < math.MinInt32 || r > math.MaxInt32 {
		return math.MinInt32
	}
	return int32(r)
}

// cvtNEON follows fcvtns: round to nearest even, saturating, NaN to zero.
func cvtNEON(x float32) int32 {
	r := math.RoundToEven(float64(x))
	switch {
	case r != r:
		return 0
	case r < math.MinInt32:
		return math.MinInt32
	case r > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(r)
}

func roundLane(x float32) float32 {
	return float32(math.RoundToEven(float64(x)))
}

// floorViaInt, ceilViaInt and roundViaInt emulate rounding without roundps
// by converting through int32. Inputs of magnitude 2^23 or more are already
// integral and are returned unchanged, as are NaNs. A zero result is always +0.
func floorViaInt(x float32) float32 {
	if !(absLane(x) < twoTo23) {
		return x
	}
	t := float32(int32(x))
	if t > x {
		t--
	}
	return t
}

func ceilViaInt(x float32) float32 {
	if !(absLane(x) < twoTo23) {
		return x
	}
	t := float32(int32(x))
	if t < x {
		t++
	}
	return t
}

func roundViaInt(x float32) float32 {
	if !(absLane(x) < twoTo23) {
		return x
	}
	return float32(cvtX86(x))
}

// truncMantissa keeps the top n of the 23 explicit mantissa bits, modelling a
// hardware estimate with n bits of precision.
func truncMantissa(x float32, n uint) float32 {
	if x != x {
		return x
	}
	return fromBits(bitsF(x) &^ (1<<(23-n) - 1))
}

// recipEstimate models rcpps (n = 12) and vrcp14ps (n = 14).
func recipEstimate(x float32, n uint) float32 {
	return truncMantissa(1/x, n)
}

// rsqrtEstimate models rsqrtps (n = 12) and vrsqrt14ps (n = 14).
func rsqrtEstimate(x float32, n uint) float32 {
	return truncMantissa(1/math32.Sqrt(x), n)
}

// recipNEON models vrecpe followed by one vrecps Newton-Raphson step.
func recipNEON(x float32) float32 {
	e := recipEstimate(x, 8)
	if e == 0 || math32.IsInf(e, 0) || e != e {
		return e
	}
	return mulLane(e, 2-mulLane(x, e))
}

// rsqrtNEON models vrsqrte followed by one vrsqrts Newton-Raphson step.
func rsqrtNEON(x float32) float32 {
	e := rsqrtEstimate(x, 8)
	if e == 0 || math32.IsInf(e, 0) || e != e {
		return e
	}
	return mulLane(e, (3-mulLane(mulLane(x, e), e))*0.5)
}

// rsqrtBits is the classic bit-level estimate refined by two Newton-Raphson
// steps.
func rsqrtBits(x float32) float32 {
	switch {
	case x != x || x < 0:
		return math32.NaN()
	case x == 0:
		return fromBits(bitsF(x) | 0x7F800000)
	case math32.IsInf(x, 1):
		return 0
	}
	half := x * 0.5
	y := fromBits(0x5f3759df - bitsF(x)>>1)
	y = mulLane(y, 1.5-mulLane(mulLane(half, y), y))
	y = mulLane(y, 1.5-mulLane(mulLane(half, y), y))
	return y
}
