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

//go:build amd64 && goexperiment.simd && !fastsimd_noavx512

package fastsimd

import (
	"math"
	"simd/archsimd"
)

// AVX512 is the 512-bit backend (16 lanes) on archsimd ZMM registers, with
// opmask registers for masks. MulAddF is fused unless built with
// fastsimd_nofma.
//
// Min and Max return the second operand when either is NaN, like vminps, and
// ConvertI rounds to even and yields MinInt32 for NaN and out of range
// values. InvSqrtF is the 14-bit vrsqrt14ps estimate.
type AVX512 struct{}

var _ Backend[Float32x16, Int32x16, Mask32x16] = AVX512{}

func init() {
	compiled[LevelAVX512] = true
	native[LevelAVX512] = true
}

func splatF16(x float32) archsimd.Float32x16 { return archsimd.BroadcastFloat32x16(x) }
func splatI16(x int32) archsimd.Int32x16     { return archsimd.BroadcastInt32x16(x) }

func (AVX512) Level() Level { return LevelAVX512 }
func (AVX512) Size() int    { return 16 }

func (AVX512) ZeroF() Float32x16         { return Float32x16{splatF16(0)} }
func (AVX512) ZeroI() Int32x16           { return Int32x16{splatI16(0)} }
func (AVX512) SetF(x float32) Float32x16 { return Float32x16{splatF16(x)} }
func (AVX512) SetI(x int32) Int32x16     { return Int32x16{splatI16(x)} }
func (AVX512) IncrementedF() Float32x16 {
	return Float32x16{archsimd.LoadFloat32x16Slice(laneIndexF[:16])}
}
func (AVX512) IncrementedI() Int32x16 {
	return Int32x16{archsimd.LoadInt32x16Slice(laneIndexI[:16])}
}

func (AVX512) LoadF(p []float32) Float32x16 {
	checkLen(len(p), 16)
	return Float32x16{archsimd.LoadFloat32x16Slice(p)}
}
func (AVX512) LoadI(p []int32) Int32x16 {
	checkLen(len(p), 16)
	return Int32x16{archsimd.LoadInt32x16Slice(p)}
}
func (AVX512) StoreF(a Float32x16, p []float32) { checkLen(len(p), 16); a.data.StoreSlice(p) }
func (AVX512) StoreI(a Int32x16, p []int32)     { checkLen(len(p), 16); a.data.StoreSlice(p) }

func (AVX512) GetLaneF(a Float32x16, i int) float32 {
	var buf [16]float32
	a.data.StoreSlice(buf[:])
	return buf[i]
}
func (AVX512) GetLaneI(a Int32x16, i int) int32 {
	var buf [16]int32
	a.data.StoreSlice(buf[:])
	return buf[i]
}

func (AVX512) MaskLoadF(m Mask32x16, p []float32) Float32x16 {
	var buf [16]float32
	loadBitsF(buf[:], uint32(m.data.ToBits()), p)
	return Float32x16{archsimd.LoadFloat32x16Slice(buf[:])}
}
func (AVX512) MaskStoreF(m Mask32x16, a Float32x16, p []float32) {
	var buf [16]float32
	a.data.StoreSlice(buf[:])
	storeBitsF(uint32(m.data.ToBits()), buf[:], p)
}
func (AVX512) MaskStoreI(m Mask32x16, a Int32x16, p []int32) {
	var buf [16]int32
	a.data.StoreSlice(buf[:])
	storeBitsI(uint32(m.data.ToBits()), buf[:], p)
}

func (AVX512) CastF(a Int32x16) Float32x16    { return Float32x16{a.data.AsFloat32x16()} }
func (AVX512) CastI(a Float32x16) Int32x16    { return Int32x16{a.data.AsInt32x16()} }
func (AVX512) ConvertF(a Int32x16) Float32x16 { return Float32x16{a.data.ConvertToFloat32()} }

// ConvertI rounds first: vcvttps2dq truncates. Float32x16 has no plain
// RoundToEven, so it rounds with a scale of zero.
func (AVX512) ConvertI(a Float32x16) Int32x16 {
	return Int32x16{a.data.RoundToEvenScaled(0).ConvertToInt32()}
}

func (AVX512) EqualF(a, b Float32x16) Mask32x16        { return Mask32x16{a.data.Equal(b.data)} }
func (AVX512) GreaterThanF(a, b Float32x16) Mask32x16  { return Mask32x16{a.data.Greater(b.data)} }
func (AVX512) LessThanF(a, b Float32x16) Mask32x16     { return Mask32x16{a.data.Less(b.data)} }
func (AVX512) GreaterEqualF(a, b Float32x16) Mask32x16 { return Mask32x16{a.data.GreaterEqual(b.data)} }
func (AVX512) LessEqualF(a, b Float32x16) Mask32x16    { return Mask32x16{a.data.LessEqual(b.data)} }
func (AVX512) EqualI(a, b Int32x16) Mask32x16          { return Mask32x16{a.data.Equal(b.data)} }
func (AVX512) GreaterThanI(a, b Int32x16) Mask32x16    { return Mask32x16{a.data.Greater(b.data)} }
func (AVX512) LessThanI(a, b Int32x16) Mask32x16       { return Mask32x16{a.data.Less(b.data)} }

func (AVX512) SignMask(a Int32x16) Mask32x16 { return Mask32x16{a.data.Less(splatI16(0))} }
func (AVX512) FirstN(n int) Mask32x16 {
	idx := archsimd.LoadInt32x16Slice(laneIndexI[:16])
	return Mask32x16{idx.Less(splatI16(clampLanes(n, 16)))}
}

func (AVX512) MaskAnd(a, b Mask32x16) Mask32x16    { return Mask32x16{a.data.And(b.data)} }
func (AVX512) MaskOr(a, b Mask32x16) Mask32x16     { return Mask32x16{a.data.Or(b.data)} }
func (AVX512) MaskAndNot(a, b Mask32x16) Mask32x16 { return Mask32x16{a.data.AndNot(b.data)} }
func (AVX512) MaskXor(a, b Mask32x16) Mask32x16 {
	return Mask32x16{a.data.Or(b.data).AndNot(a.data.And(b.data))}
}
func (AVX512) MaskNot(a Mask32x16) Mask32x16 {
	z := splatF16(0)
	return Mask32x16{z.Equal(z).AndNot(a.data)}
}
func (AVX512) MaskBits(m Mask32x16) uint32 { return uint32(m.data.ToBits()) }
func (AVX512) AnyTrue(m Mask32x16) bool    { return m.data.ToBits() != 0 }
func (AVX512) AllTrue(m Mask32x16) bool    { return m.data.ToBits() == 0xFFFF }

func (AVX512) SelectF(m Mask32x16, a, b Float32x16) Float32x16 {
	return Float32x16{a.data.Merge(b.data, m.data)}
}
func (AVX512) SelectI(m Mask32x16, a, b Int32x16) Int32x16 {
	return Int32x16{a.data.Merge(b.data, m.data)}
}

func (AVX512) MinF(a, b Float32x16) Float32x16 {
	return Float32x16{a.data.Merge(b.data, a.data.Less(b.data))}
}
func (AVX512) MaxF(a, b Float32x16) Float32x16 {
	return Float32x16{a.data.Merge(b.data, a.data.Greater(b.data))}
}
func (AVX512) MinI(a, b Int32x16) Int32x16 {
	return Int32x16{a.data.Merge(b.data, a.data.Less(b.data))}
}
func (AVX512) MaxI(a, b Int32x16) Int32x16 {
	return Int32x16{a.data.Merge(b.data, a.data.Greater(b.data))}
}

func (AVX512) AndF(a, b Float32x16) Float32x16 {
	return Float32x16{a.data.AsInt32x16().And(b.data.AsInt32x16()).AsFloat32x16()}
}
func (AVX512) OrF(a, b Float32x16) Float32x16 {
	return Float32x16{a.data.AsInt32x16().Or(b.data.AsInt32x16()).AsFloat32x16()}
}
func (AVX512) XorF(a, b Float32x16) Float32x16 {
	return Float32x16{a.data.AsInt32x16().Xor(b.data.AsInt32x16()).AsFloat32x16()}
}
func (AVX512) AndNotF(a, b Float32x16) Float32x16 {
	return Float32x16{a.data.AsInt32x16().AndNot(b.data.AsInt32x16()).AsFloat32x16()}
}
func (AVX512) NotF(a Float32x16) Float32x16 {
	return Float32x16{a.data.AsInt32x16().Xor(splatI16(-1)).AsFloat32x16()}
}
func (AVX512) AndNotI(a, b Int32x16) Int32x16 { return a.AndNot(b) }

func (AVX512) AbsF(a Float32x16) Float32x16 {
	return Float32x16{a.data.AsInt32x16().AndNot(splatI16(math.MinInt32)).AsFloat32x16()}
}
func (AVX512) AbsI(a Int32x16) Int32x16 {
	return Int32x16{a.Neg().data.Merge(a.data, a.data.Less(splatI16(0)))}
}
func (AVX512) SqrtF(a Float32x16) Float32x16       { return Float32x16{a.data.Sqrt()} }
func (AVX512) InvSqrtF(a Float32x16) Float32x16    { return Float32x16{a.data.ReciprocalSqrt()} }
func (AVX512) ReciprocalF(a Float32x16) Float32x16 { return Float32x16{splatF16(1).Div(a.data)} }
func (AVX512) RoundF(a Float32x16) Float32x16      { return Float32x16{a.data.RoundToEvenScaled(0)} }

// FloorF and CeilF correct the round-to-even result by one where it landed
// on the wrong side of a. NaN compares false and passes through.
func (AVX512) FloorF(a Float32x16) Float32x16 {
	r := a.data.RoundToEvenScaled(0)
	return Float32x16{r.Sub(splatF16(1)).Merge(r, r.Greater(a.data))}
}
func (AVX512) CeilF(a Float32x16) Float32x16 {
	r := a.data.RoundToEvenScaled(0)
	return Float32x16{r.Add(splatF16(1)).Merge(r, r.Less(a.data))}
}

func (AVX512) MulAddF(a, b, c Float32x16) Float32x16 {
	if useFMA {
		return Float32x16{a.data.MulAdd(b.data, c.data)}
	}
	return Float32x16{a.data.Mul(b.data).Add(c.data)}
}

func (v AVX512) MaskF(m Mask32x16, a Float32x16) Float32x16  { return v.SelectF(m, a, v.ZeroF()) }
func (v AVX512) MaskI(m Mask32x16, a Int32x16) Int32x16      { return v.SelectI(m, a, v.ZeroI()) }
func (v AVX512) NMaskF(m Mask32x16, a Float32x16) Float32x16 { return v.SelectF(m, v.ZeroF(), a) }
func (v AVX512) NMaskI(m Mask32x16, a Int32x16) Int32x16     { return v.SelectI(m, v.ZeroI(), a) }

func (v AVX512) MaskedAddF(m Mask32x16, a, b Float32x16) Float32x16 { return v.SelectF(m, a.Add(b), a) }
func (v AVX512) MaskedSubF(m Mask32x16, a, b Float32x16) Float32x16 { return v.SelectF(m, a.Sub(b), a) }
func (v AVX512) MaskedMulF(m Mask32x16, a, b Float32x16) Float32x16 { return v.SelectF(m, a.Mul(b), a) }
func (v AVX512) MaskedAddI(m Mask32x16, a, b Int32x16) Int32x16     { return v.SelectI(m, a.Add(b), a) }
func (v AVX512) MaskedSubI(m Mask32x16, a, b Int32x16) Int32x16     { return v.SelectI(m, a.Sub(b), a) }
func (v AVX512) MaskedMulI(m Mask32x16, a, b Int32x16) Int32x16     { return v.SelectI(m, a.Mul(b), a) }
func (v AVX512) NMaskedAddF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a, a.Add(b))
}
func (v AVX512) NMaskedSubF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a, a.Sub(b))
}
func (v AVX512) NMaskedMulF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a, a.Mul(b))
}
func (v AVX512) NMaskedAddI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a, a.Add(b)) }
func (v AVX512) NMaskedSubI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a, a.Sub(b)) }
func (v AVX512) NMaskedMulI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a, a.Mul(b)) }

func (v AVX512) MaskedIncrementI(m Mask32x16, a Int32x16) Int32x16 {
	return v.SelectI(m, a.Add(v.SetI(1)), a)
}
