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
	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// kernel is the per-algorithm body. Coordinates arrive already scaled by
// the frequency (grids) or offset (position arrays).
type kernel[F, I any] interface {
	gen2(seed I, x, y F) F
	gen3(seed I, x, y, z F) F
	gen4(seed I, x, y, z, w F) F
}

type constantKernel[F, I any] struct {
	value F
}

func (k constantKernel[F, I]) gen2(I, F, F) F       { return k.value }
func (k constantKernel[F, I]) gen3(I, F, F, F) F    { return k.value }
func (k constantKernel[F, I]) gen4(I, F, F, F, F) F { return k.value }

type whiteKernel[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	Kit[F, I, M, B]
}

// axis folds the bit pattern of p and multiplies it by the axis prime.
func (k whiteKernel[F, I, M, B]) axis(p F, prime int32) I {
	i := k.B.CastI(p)
	return i.Xor(i.Shr(16)).Mul(k.B.SetI(prime))
}

func (k whiteKernel[F, I, M, B]) gen2(seed I, x, y F) F {
	return k.valueOfMixed(seed.Xor(k.axis(x, PrimeX)).Xor(k.axis(y, PrimeY)))
}

func (k whiteKernel[F, I, M, B]) gen3(seed I, x, y, z F) F {
	return k.valueOfMixed(seed.Xor(k.axis(x, PrimeX)).Xor(k.axis(y, PrimeY)).Xor(k.axis(z, PrimeZ)))
}

func (k whiteKernel[F, I, M, B]) gen4(seed I, x, y, z, w F) F {
	return k.valueOfMixed(seed.Xor(k.axis(x, PrimeX)).Xor(k.axis(y, PrimeY)).Xor(k.axis(z, PrimeZ)).Xor(k.axis(w, PrimeW)))
}

type checkerboardKernel[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	Kit[F, I, M, B]
	mult F
}

func (k checkerboardKernel[F, I, M, B]) cell(p F) I { return k.B.ConvertI(p.Mul(k.mult)) }

// parity is 1 for even cell sums and -1 for odd ones.
func (k checkerboardKernel[F, I, M, B]) parity(v I) F {
	return k.B.XorF(k.B.SetF(1), k.B.CastF(v.Shl(31)))
}

func (k checkerboardKernel[F, I, M, B]) gen2(_ I, x, y F) F {
	return k.parity(k.cell(x).Xor(k.cell(y)))
}

func (k checkerboardKernel[F, I, M, B]) gen3(_ I, x, y, z F) F {
	return k.parity(k.cell(x).Xor(k.cell(y)).Xor(k.cell(z)))
}

func (k checkerboardKernel[F, I, M, B]) gen4(_ I, x, y, z, w F) F {
	return k.parity(k.cell(x).Xor(k.cell(y)).Xor(k.cell(z)).Xor(k.cell(w)))
}

type sineWaveKernel[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	Kit[F, I, M, B]
	mult F
}

func (k sineWaveKernel[F, I, M, B]) wave(p F) F { return k.Sin(p.Mul(k.mult)) }

func (k sineWaveKernel[F, I, M, B]) gen2(_ I, x, y F) F { return k.wave(x).Mul(k.wave(y)) }
func (k sineWaveKernel[F, I, M, B]) gen3(_ I, x, y, z F) F {
	return k.wave(x).Mul(k.wave(y)).Mul(k.wave(z))
}
func (k sineWaveKernel[F, I, M, B]) gen4(_ I, x, y, z, w F) F {
	return k.wave(x).Mul(k.wave(y)).Mul(k.wave(z)).Mul(k.wave(w))
}

type positionOutputKernel[F fastsimd.Float32v[F], I any] struct {
	mult   [4]F
	offset [4]F
}

func (k positionOutputKernel[F, I]) term(axis int, p F) F {
	return p.Add(k.offset[axis]).Mul(k.mult[axis])
}

func (k positionOutputKernel[F, I]) gen2(_ I, x, y F) F { return k.term(0, x).Add(k.term(1, y)) }
func (k positionOutputKernel[F, I]) gen3(_ I, x, y, z F) F {
	return k.term(0, x).Add(k.term(1, y)).Add(k.term(2, z))
}
func (k positionOutputKernel[F, I]) gen4(_ I, x, y, z, w F) F {
	return k.term(0, x).Add(k.term(1, y)).Add(k.term(2, z)).Add(k.term(3, w))
}

type distanceKernel[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]] struct {
	Kit[F, I, M, B]
	fn DistanceFunction
}

func (k distanceKernel[F, I, M, B]) gen2(_ I, x, y F) F { return k.CalcDistance2(k.fn, x, y) }
func (k distanceKernel[F, I, M, B]) gen3(_ I, x, y, z F) F {
	return k.CalcDistance3(k.fn, x, y, z)
}
func (k distanceKernel[F, I, M, B]) gen4(_ I, x, y, z, w F) F {
	return k.CalcDistance4(k.fn, x, y, z, w)
}
