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

package fastnoise

import (
	"math"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// Per-axis hashing primes.
const (
	PrimeX int32 = 1619
	PrimeY int32 = 31337
	PrimeZ int32 = 6971
	PrimeW int32 = 1013
)

// Primes lists the per-axis primes in x, y, z, w order.
var Primes = [4]int32{PrimeX, PrimeY, PrimeZ, PrimeW}

const (
	hashMultiplier int32 = 0x27d4eb2d
	invMaxInt32          = float32(1.0 / math.MaxInt32)
	root3                = float32(1.7320508075688772935)
)

// Kit bundles the vector helpers that noise kernels are written with.
// It carries the backend so helpers read like methods of the kernel:
//
//	type myKernel[F ..., B fastsimd.Backend[F, I, M]] struct {
//	    fastnoise.Kit[F, I, M, B]
//	}
//
//	func (k myKernel[F, I, M, B]) gen2(seed I, x, y F) F {
//	    xi := k.B.ConvertI(k.B.FloorF(x)).Mul(k.B.SetI(fastnoise.PrimeX))
//	    ...
//	}
type Kit[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	B B
}

func (k Kit[F, I, M, B]) mix(seed I, primed []I) I {
	h := seed
	for _, p := range primed {
		h = h.Xor(p)
	}
	return h.Mul(k.B.SetI(hashMultiplier))
}

// valueOfMixed is ValueCoord for a seed already xored with every primed
// coordinate.
func (k Kit[F, I, M, B]) valueOfMixed(h I) F {
	return k.B.ConvertF(h.Mul(k.B.SetI(hashMultiplier))).Mul(k.B.SetF(invMaxInt32))
}

// HashPrimes hashes a seed with coordinates already multiplied by their
// primes. The result is well mixed in all bits.
func (k Kit[F, I, M, B]) HashPrimes(seed I, primed ...I) I {
	h := k.mix(seed, primed)
	return h.Shr(15).Xor(h)
}

// HashPrimesHB is HashPrimes without the final shift. Only the high bits
// are well mixed.
func (k Kit[F, I, M, B]) HashPrimesHB(seed I, primed ...I) I {
	return k.mix(seed, primed)
}

// ValueCoord hashes like HashPrimesHB and maps the hash to [-1, 1].
func (k Kit[F, I, M, B]) ValueCoord(seed I, primed ...I) F {
	h := seed
	for _, p := range primed {
		h = h.Xor(p)
	}
	return k.valueOfMixed(h)
}

// Lerp interpolates from a to b by t.
func (k Kit[F, I, M, B]) Lerp(a, b, t F) F {
	return k.B.MulAddF(t, b.Sub(a), a)
}

// InterpHermite is the cubic smoothstep t*t*(3 - 2t).
func (k Kit[F, I, M, B]) InterpHermite(t F) F {
	return t.Mul(t).Mul(k.B.MulAddF(t, k.B.SetF(-2), k.B.SetF(3)))
}

// InterpQuintic is the quintic smootherstep t^3*(t*(6t - 15) + 10).
func (k Kit[F, I, M, B]) InterpQuintic(t F) F {
	b := k.B
	inner := b.MulAddF(t, b.MulAddF(t, b.SetF(6), b.SetF(-15)), b.SetF(10))
	return t.Mul(t).Mul(t).Mul(inner)
}

// GradientDot2 dots (x, y) with one of 8 gradients selected by the low
// three bits of hash:
//
//	( 0, 1) (-1, 0) ( 0,-1) ( 1, 0)
//	( 1, 1) (-1, 1) (-1,-1) ( 1,-1)
func (k Kit[F, I, M, B]) GradientDot2(hash I, x, y F) F {
	b := k.B
	bit1 := hash.Shl(31)
	bit2 := hash.Shr(1).Shl(31)
	bit4 := hash.Shl(29)

	x = b.XorF(x, b.CastF(bit1.Xor(bit2)))
	y = b.XorF(y, b.CastF(bit2))

	zeroX := bit1
	zeroY := zeroX.Not()

	x = b.AndF(x, b.CastF(zeroX.Or(bit4).Shr(31)))
	y = b.AndF(y, b.CastF(zeroY.Or(bit4).Shr(31)))
	return x.Add(y)
}

// GradientDot2Fancy dots (x, y) with one of 12 gradients of length 2, the
// axis directions and the directions 30 degrees off each axis. It gives more
// even coverage of directions than GradientDot2.
func (k Kit[F, I, M, B]) GradientDot2Fancy(hash I, x, y F) F {
	b := k.B
	index := b.ConvertI(b.ConvertF(hash.And(b.SetI(0x3FFFFF))).Mul(b.SetF(1.3333333333333333)))

	// Bit 4 chooses the x/y ordering.
	xy := b.SignMask(index.Shl(29))
	u := b.SelectF(xy, y, x)
	v := b.SelectF(xy, x, y)

	// Bit 1 flips the sign of v.
	v = b.XorF(v, b.CastF(index.Shl(31)))

	// Bit 2 scales u by 2 and zeroes v, or scales u by sqrt(3).
	mul2 := index.Shl(30).Shr(31)
	u = u.Mul(b.SelectF(b.SignMask(mul2), b.SetF(2), b.SetF(root3)))
	v = b.AndNotF(v, b.CastF(mul2))

	// Bit 8 flips the sign of the sum.
	return b.XorF(u.Add(v), b.CastF(index.Shr(3).Shl(31)))
}

// GradientDot3 dots (x, y, z) with one of the 12 cube-edge gradients
// selected by hash.
func (k Kit[F, I, M, B]) GradientDot3(hash I, x, y, z F) F {
	b := k.B
	h13 := hash.And(b.SetI(13))

	u := b.SelectF(b.LessThanI(h13, b.SetI(8)), x, y)
	v := b.SelectF(b.LessThanI(h13, b.SetI(2)), y,
		b.SelectF(b.EqualI(h13, b.SetI(12)), x, z))

	h1 := b.CastF(hash.Shl(31))
	h2 := b.CastF(hash.And(b.SetI(2)).Shl(30))
	return b.XorF(u, h1).Add(b.XorF(v, h2))
}

// CalcDistance2 applies the distance function to the deltas of a 2D point.
// Euclidean goes through InvSqrtF and is accurate to
// fastsimd.ApproxRelTolerance; a zero distance is exactly zero.
func (k Kit[F, I, M, B]) CalcDistance2(fn DistanceFunction, dx, dy F) F {
	return k.distFinish(fn, k.distAdd(fn, k.distAxis(fn, dx), dy))
}

// CalcDistance3 is CalcDistance2 for a 3D point.
func (k Kit[F, I, M, B]) CalcDistance3(fn DistanceFunction, dx, dy, dz F) F {
	return k.distFinish(fn, k.distAdd(fn, k.distAdd(fn, k.distAxis(fn, dx), dy), dz))
}

// CalcDistance4 is CalcDistance2 for a 4D point.
func (k Kit[F, I, M, B]) CalcDistance4(fn DistanceFunction, dx, dy, dz, dw F) F {
	acc := k.distAdd(fn, k.distAdd(fn, k.distAxis(fn, dx), dy), dz)
	return k.distFinish(fn, k.distAdd(fn, acc, dw))
}

// distAxis is the contribution of one delta to the distance accumulator.
func (k Kit[F, I, M, B]) distAxis(fn DistanceFunction, d F) F {
	b := k.B
	switch fn {
	case Euclidean, EuclideanSquared:
		return d.Mul(d)
	case Hybrid:
		return b.MulAddF(d, d, b.AbsF(d))
	default:
		return b.AbsF(d)
	}
}

func (k Kit[F, I, M, B]) distAdd(fn DistanceFunction, acc, d F) F {
	b := k.B
	switch fn {
	case Euclidean, EuclideanSquared:
		return b.MulAddF(d, d, acc)
	case Manhattan:
		return acc.Add(b.AbsF(d))
	case Hybrid:
		return acc.Add(b.MulAddF(d, d, b.AbsF(d)))
	default:
		return b.MaxF(acc, b.AbsF(d))
	}
}

func (k Kit[F, I, M, B]) distFinish(fn DistanceFunction, acc F) F {
	if fn != Euclidean {
		return acc
	}
	b := k.B
	return b.MaskF(b.GreaterThanF(acc, b.ZeroF()), b.InvSqrtF(acc).Mul(acc))
}

// Coefficients for Sin. pi is split so that q*sinPiHi is exact for the
// quadrant counts that fit in float32 precision.
const (
	sinInvPi = float32(1 / math.Pi)
	sinPiHi  = float32(3.140625)
	sinPiLo  = float32(math.Pi - 3.140625)
	sinC3    = float32(-1.0 / 6)
	sinC5    = float32(1.0 / 120)
	sinC7    = float32(-1.0 / 5040)
	sinC9    = float32(1.0 / 362880)
	sinC11   = float32(-1.0 / 39916800)
)

// Sin approximates sin(x) to about 1e-6 absolute error for |x| < 1e4.
// NaN and infinite inputs produce NaN.
func (k Kit[F, I, M, B]) Sin(x F) F {
	b := k.B
	q := b.RoundF(x.Mul(b.SetF(sinInvPi)))
	r := b.MulAddF(q, b.SetF(-sinPiHi), x)
	r = b.MulAddF(q, b.SetF(-sinPiLo), r)

	r2 := r.Mul(r)
	p := b.MulAddF(b.SetF(sinC11), r2, b.SetF(sinC9))
	p = b.MulAddF(p, r2, b.SetF(sinC7))
	p = b.MulAddF(p, r2, b.SetF(sinC5))
	p = b.MulAddF(p, r2, b.SetF(sinC3))
	p = b.MulAddF(p.Mul(r2), r, r)

	// sin(r + q*pi) = (-1)^q sin(r)
	odd := b.ConvertI(q).Shl(31)
	return b.XorF(p, b.CastF(odd))
}
