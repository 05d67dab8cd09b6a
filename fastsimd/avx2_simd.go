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

//go:build amd64 && goexperiment.simd && !fastsimd_noavx2

package fastsimd

import (
	"math"
	"simd/archsimd"
)

// AVX2 is the 256-bit backend (8 lanes) on archsimd YMM registers. MulAddF
// is fused unless built with fastsimd_nofma.
//
// Min and Max return the second operand when either is NaN, like vminps, and
// ConvertI rounds to even and yields MinInt32 for NaN and out of range
// values. InvSqrtF is the 12-bit vrsqrtps estimate.
type AVX2 struct{}

var _ Backend[Float32x8, Int32x8, Mask32x8] = AVX2{}

func init() {
	compiled[LevelAVX2] = true
	native[LevelAVX2] = true
}

func splatF8(x float32) archsimd.Float32x8 { return archsimd.BroadcastFloat32x8(x) }
func splatI8(x int32) archsimd.Int32x8     { return archsimd.BroadcastInt32x8(x) }

func (AVX2) Level() Level { return LevelAVX2 }
func (AVX2) Size() int    { return 8 }

func (AVX2) ZeroF() Float32x8         { return Float32x8{splatF8(0)} }
func (AVX2) ZeroI() Int32x8           { return Int32x8{splatI8(0)} }
func (AVX2) SetF(x float32) Float32x8 { return Float32x8{splatF8(x)} }
func (AVX2) SetI(x int32) Int32x8     { return Int32x8{splatI8(x)} }
func (AVX2) IncrementedF() Float32x8 {
	return Float32x8{archsimd.LoadFloat32x8Slice(laneIndexF[:8])}
}
func (AVX2) IncrementedI() Int32x8 {
	return Int32x8{archsimd.LoadInt32x8Slice(laneIndexI[:8])}
}

func (AVX2) LoadF(p []float32) Float32x8 {
	checkLen(len(p), 8)
	return Float32x8{archsimd.LoadFloat32x8Slice(p)}
}
func (AVX2) LoadI(p []int32) Int32x8 {
	checkLen(len(p), 8)
	return Int32x8{archsimd.LoadInt32x8Slice(p)}
}
func (AVX2) StoreF(a Float32x8, p []float32) { checkLen(len(p), 8); a.data.StoreSlice(p) }
func (AVX2) StoreI(a Int32x8, p []int32)     { checkLen(len(p), 8); a.data.StoreSlice(p) }

func (AVX2) GetLaneF(a Float32x8, i int) float32 {
	var buf [8]float32
	a.data.StoreSlice(buf[:])
	return buf[i]
}
func (AVX2) GetLaneI(a Int32x8, i int) int32 {
	var buf [8]int32
	a.data.StoreSlice(buf[:])
	return buf[i]
}

func (AVX2) MaskLoadF(m Mask32x8, p []float32) Float32x8 {
	var buf [8]float32
	loadBitsF(buf[:], uint32(m.data.ToBits()), p)
	return Float32x8{archsimd.LoadFloat32x8Slice(buf[:])}
}
func (AVX2) MaskStoreF(m Mask32x8, a Float32x8, p []float32) {
	var buf [8]float32
	a.data.StoreSlice(buf[:])
	storeBitsF(uint32(m.data.ToBits()), buf[:], p)
}
func (AVX2) MaskStoreI(m Mask32x8, a Int32x8, p []int32) {
	var buf [8]int32
	a.data.StoreSlice(buf[:])
	storeBitsI(uint32(m.data.ToBits()), buf[:], p)
}

func (AVX2) CastF(a Int32x8) Float32x8    { return Float32x8{a.data.AsFloat32x8()} }
func (AVX2) CastI(a Float32x8) Int32x8    { return Int32x8{a.data.AsInt32x8()} }
func (AVX2) ConvertF(a Int32x8) Float32x8 { return Float32x8{a.data.ConvertToFloat32()} }

// ConvertI rounds first: vcvttps2dq truncates.
func (AVX2) ConvertI(a Float32x8) Int32x8 {
	return Int32x8{a.data.RoundToEven().ConvertToInt32()}
}

func (AVX2) EqualF(a, b Float32x8) Mask32x8        { return Mask32x8{a.data.Equal(b.data)} }
func (AVX2) GreaterThanF(a, b Float32x8) Mask32x8  { return Mask32x8{a.data.Greater(b.data)} }
func (AVX2) LessThanF(a, b Float32x8) Mask32x8     { return Mask32x8{a.data.Less(b.data)} }
func (AVX2) GreaterEqualF(a, b Float32x8) Mask32x8 { return Mask32x8{a.data.GreaterEqual(b.data)} }
func (AVX2) LessEqualF(a, b Float32x8) Mask32x8    { return Mask32x8{a.data.LessEqual(b.data)} }
func (AVX2) EqualI(a, b Int32x8) Mask32x8          { return Mask32x8{a.data.Equal(b.data)} }
func (AVX2) GreaterThanI(a, b Int32x8) Mask32x8    { return Mask32x8{a.data.Greater(b.data)} }
func (AVX2) LessThanI(a, b Int32x8) Mask32x8       { return Mask32x8{a.data.Less(b.data)} }

func (AVX2) SignMask(a Int32x8) Mask32x8 { return Mask32x8{a.data.Less(splatI8(0))} }
func (AVX2) FirstN(n int) Mask32x8 {
	idx := archsimd.LoadInt32x8Slice(laneIndexI[:8])
	return Mask32x8{idx.Less(splatI8(clampLanes(n, 8)))}
}

func (AVX2) MaskAnd(a, b Mask32x8) Mask32x8    { return Mask32x8{a.data.And(b.data)} }
func (AVX2) MaskOr(a, b Mask32x8) Mask32x8     { return Mask32x8{a.data.Or(b.data)} }
func (AVX2) MaskAndNot(a, b Mask32x8) Mask32x8 { return Mask32x8{a.data.AndNot(b.data)} }
func (AVX2) MaskXor(a, b Mask32x8) Mask32x8 {
	return Mask32x8{a.data.Or(b.data).AndNot(a.data.And(b.data))}
}
func (AVX2) MaskNot(a Mask32x8) Mask32x8 {
	z := splatF8(0)
	return Mask32x8{z.Equal(z).AndNot(a.data)}
}
func (AVX2) MaskBits(m Mask32x8) uint32 { return uint32(m.data.ToBits()) }
func (AVX2) AnyTrue(m Mask32x8) bool    { return m.data.ToBits() != 0 }
func (AVX2) AllTrue(m Mask32x8) bool    { return m.data.ToBits() == 0xFF }

func (AVX2) SelectF(m Mask32x8, a, b Float32x8) Float32x8 {
	return Float32x8{a.data.Merge(b.data, m.data)}
}
func (AVX2) SelectI(m Mask32x8, a, b Int32x8) Int32x8 {
	return Int32x8{a.data.Merge(b.data, m.data)}
}

func (AVX2) MinF(a, b Float32x8) Float32x8 {
	return Float32x8{a.data.Merge(b.data, a.data.Less(b.data))}
}
func (AVX2) MaxF(a, b Float32x8) Float32x8 {
	return Float32x8{a.data.Merge(b.data, a.data.Greater(b.data))}
}
func (AVX2) MinI(a, b Int32x8) Int32x8 { return Int32x8{a.data.Merge(b.data, a.data.Less(b.data))} }
func (AVX2) MaxI(a, b Int32x8) Int32x8 { return Int32x8{a.data.Merge(b.data, a.data.Greater(b.data))} }

func (AVX2) AndF(a, b Float32x8) Float32x8 {
	return Float32x8{a.data.AsInt32x8().And(b.data.AsInt32x8()).AsFloat32x8()}
}
func (AVX2) OrF(a, b Float32x8) Float32x8 {
	return Float32x8{a.data.AsInt32x8().Or(b.data.AsInt32x8()).AsFloat32x8()}
}
func (AVX2) XorF(a, b Float32x8) Float32x8 {
	return Float32x8{a.data.AsInt32x8().Xor(b.data.AsInt32x8()).AsFloat32x8()}
}
func (AVX2) AndNotF(a, b Float32x8) Float32x8 {
	return Float32x8{a.data.AsInt32x8().AndNot(b.data.AsInt32x8()).AsFloat32x8()}
}
func (AVX2) NotF(a Float32x8) Float32x8 {
	return Float32x8{a.data.AsInt32x8().Xor(splatI8(-1)).AsFloat32x8()}
}
func (AVX2) AndNotI(a, b Int32x8) Int32x8 { return a.AndNot(b) }

func (AVX2) AbsF(a Float32x8) Float32x8 {
	return Float32x8{a.data.AsInt32x8().AndNot(splatI8(math.MinInt32)).AsFloat32x8()}
}
func (AVX2) AbsI(a Int32x8) Int32x8 {
	return Int32x8{a.Neg().data.Merge(a.data, a.data.Less(splatI8(0)))}
}
func (AVX2) SqrtF(a Float32x8) Float32x8       { return Float32x8{a.data.Sqrt()} }
func (AVX2) InvSqrtF(a Float32x8) Float32x8    { return Float32x8{a.data.ReciprocalSqrt()} }
func (AVX2) ReciprocalF(a Float32x8) Float32x8 { return Float32x8{splatF8(1).Div(a.data)} }
func (AVX2) RoundF(a Float32x8) Float32x8      { return Float32x8{a.data.RoundToEven()} }

// FloorF and CeilF correct the round-to-even result by one where it landed
// on the wrong side of a. NaN compares false and passes through.
func (AVX2) FloorF(a Float32x8) Float32x8 {
	r := a.data.RoundToEven()
	return Float32x8{r.Sub(splatF8(1)).Merge(r, r.Greater(a.data))}
}
func (AVX2) CeilF(a Float32x8) Float32x8 {
	r := a.data.RoundToEven()
	return Float32x8{r.Add(splatF8(1)).Merge(r, r.Less(a.data))}
}

func (AVX2) MulAddF(a, b, c Float32x8) Float32x8 {
	if useFMA {
		return Float32x8{a.data.MulAdd(b.data, c.data)}
	}
	return Float32x8{a.data.Mul(b.data).Add(c.data)}
}

func (v AVX2) MaskF(m Mask32x8, a Float32x8) Float32x8  { return v.SelectF(m, a, v.ZeroF()) }
func (v AVX2) MaskI(m Mask32x8, a Int32x8) Int32x8      { return v.SelectI(m, a, v.ZeroI()) }
func (v AVX2) NMaskF(m Mask32x8, a Float32x8) Float32x8 { return v.SelectF(m, v.ZeroF(), a) }
func (v AVX2) NMaskI(m Mask32x8, a Int32x8) Int32x8     { return v.SelectI(m, v.ZeroI(), a) }

func (v AVX2) MaskedAddF(m Mask32x8, a, b Float32x8) Float32x8  { return v.SelectF(m, a.Add(b), a) }
func (v AVX2) MaskedSubF(m Mask32x8, a, b Float32x8) Float32x8  { return v.SelectF(m, a.Sub(b), a) }
func (v AVX2) MaskedMulF(m Mask32x8, a, b Float32x8) Float32x8  { return v.SelectF(m, a.Mul(b), a) }
func (v AVX2) MaskedAddI(m Mask32x8, a, b Int32x8) Int32x8      { return v.SelectI(m, a.Add(b), a) }
func (v AVX2) MaskedSubI(m Mask32x8, a, b Int32x8) Int32x8      { return v.SelectI(m, a.Sub(b), a) }
func (v AVX2) MaskedMulI(m Mask32x8, a, b Int32x8) Int32x8      { return v.SelectI(m, a.Mul(b), a) }
func (v AVX2) NMaskedAddF(m Mask32x8, a, b Float32x8) Float32x8 { return v.SelectF(m, a, a.Add(b)) }
func (v AVX2) NMaskedSubF(m Mask32x8, a, b Float32x8) Float32x8 { return v.SelectF(m, a, a.Sub(b)) }
func (v AVX2) NMaskedMulF(m Mask32x8, a, b Float32x8) Float32x8 { return v.SelectF(m, a, a.Mul(b)) }
func (v AVX2) NMaskedAddI(m Mask32x8, a, b Int32x8) Int32x8     { return v.SelectI(m, a, a.Add(b)) }
func (v AVX2) NMaskedSubI(m Mask32x8, a, b Int32x8) Int32x8     { return v.SelectI(m, a, a.Sub(b)) }
func (v AVX2) NMaskedMulI(m Mask32x8, a, b Int32x8) Int32x8     { return v.SelectI(m, a, a.Mul(b)) }

func (v AVX2) MaskedIncrementI(m Mask32x8, a Int32x8) Int32x8 {
	return v.SelectI(m, a.Add(v.SetI(1)), a)
}
