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

//go:build amd64 && goexperiment.simd && !fastsimd_nosse41

package fastsimd

import (
	"math"
	"simd/archsimd"
)

// SSE41 is the 128-bit backend (4 lanes) on archsimd XMM registers. It
// requires SSE3 and SSSE3 as well, and AVX: archsimd emits the VEX encoded
// forms of the SSE4.1 instructions.
//
// Min and Max return the second operand when either is NaN, like minps, and
// ConvertI rounds to even and yields MinInt32 for NaN and out of range
// values. InvSqrtF is the 12-bit rsqrtps estimate. MulAddF is never fused.
type SSE41 struct{}

var _ Backend[Float32x4, Int32x4, Mask32x4] = SSE41{}

func init() {
	compiled[LevelSSE41] = true
	native[LevelSSE41] = true
	vexOnly[LevelSSE41] = true
}

func (SSE41) Level() Level { return LevelSSE41 }
func (SSE41) Size() int    { return 4 }

func (SSE41) ZeroF() Float32x4         { return Float32x4{splatF4(0)} }
func (SSE41) ZeroI() Int32x4           { return Int32x4{splatI4(0)} }
func (SSE41) SetF(x float32) Float32x4 { return Float32x4{splatF4(x)} }
func (SSE41) SetI(x int32) Int32x4     { return Int32x4{splatI4(x)} }
func (SSE41) IncrementedF() Float32x4 {
	return Float32x4{archsimd.LoadFloat32x4Slice(laneIndexF[:4])}
}
func (SSE41) IncrementedI() Int32x4 {
	return Int32x4{archsimd.LoadInt32x4Slice(laneIndexI[:4])}
}

func (SSE41) LoadF(p []float32) Float32x4 {
	checkLen(len(p), 4)
	return Float32x4{archsimd.LoadFloat32x4Slice(p)}
}
func (SSE41) LoadI(p []int32) Int32x4 {
	checkLen(len(p), 4)
	return Int32x4{archsimd.LoadInt32x4Slice(p)}
}
func (SSE41) StoreF(a Float32x4, p []float32) { checkLen(len(p), 4); a.data.StoreSlice(p) }
func (SSE41) StoreI(a Int32x4, p []int32)     { checkLen(len(p), 4); a.data.StoreSlice(p) }

func (SSE41) GetLaneF(a Float32x4, i int) float32 {
	var buf [4]float32
	a.data.StoreSlice(buf[:])
	return buf[i]
}
func (SSE41) GetLaneI(a Int32x4, i int) int32 {
	var buf [4]int32
	a.data.StoreSlice(buf[:])
	return buf[i]
}

func (SSE41) MaskLoadF(m Mask32x4, p []float32) Float32x4 {
	var buf [4]float32
	loadBitsF(buf[:], uint32(m.data.ToBits()), p)
	return Float32x4{archsimd.LoadFloat32x4Slice(buf[:])}
}
func (SSE41) MaskStoreF(m Mask32x4, a Float32x4, p []float32) {
	var buf [4]float32
	a.data.StoreSlice(buf[:])
	storeBitsF(uint32(m.data.ToBits()), buf[:], p)
}
func (SSE41) MaskStoreI(m Mask32x4, a Int32x4, p []int32) {
	var buf [4]int32
	a.data.StoreSlice(buf[:])
	storeBitsI(uint32(m.data.ToBits()), buf[:], p)
}

func (SSE41) CastF(a Int32x4) Float32x4    { return Float32x4{a.data.AsFloat32x4()} }
func (SSE41) CastI(a Float32x4) Int32x4    { return Int32x4{a.data.AsInt32x4()} }
func (SSE41) ConvertF(a Int32x4) Float32x4 { return Float32x4{a.data.ConvertToFloat32()} }

// ConvertI rounds first: cvttps2dq truncates.
func (SSE41) ConvertI(a Float32x4) Int32x4 {
	return Int32x4{a.data.RoundToEven().ConvertToInt32()}
}

func (SSE41) EqualF(a, b Float32x4) Mask32x4        { return Mask32x4{a.data.Equal(b.data)} }
func (SSE41) GreaterThanF(a, b Float32x4) Mask32x4  { return Mask32x4{a.data.Greater(b.data)} }
func (SSE41) LessThanF(a, b Float32x4) Mask32x4     { return Mask32x4{a.data.Less(b.data)} }
func (SSE41) GreaterEqualF(a, b Float32x4) Mask32x4 { return Mask32x4{a.data.GreaterEqual(b.data)} }
func (SSE41) LessEqualF(a, b Float32x4) Mask32x4    { return Mask32x4{a.data.LessEqual(b.data)} }
func (SSE41) EqualI(a, b Int32x4) Mask32x4          { return Mask32x4{a.data.Equal(b.data)} }
func (SSE41) GreaterThanI(a, b Int32x4) Mask32x4    { return Mask32x4{a.data.Greater(b.data)} }
func (SSE41) LessThanI(a, b Int32x4) Mask32x4       { return Mask32x4{a.data.Less(b.data)} }

func (SSE41) SignMask(a Int32x4) Mask32x4 { return Mask32x4{a.data.Less(splatI4(0))} }
func (SSE41) FirstN(n int) Mask32x4 {
	idx := archsimd.LoadInt32x4Slice(laneIndexI[:4])
	return Mask32x4{idx.Less(splatI4(clampLanes(n, 4)))}
}

func (SSE41) MaskAnd(a, b Mask32x4) Mask32x4    { return Mask32x4{a.data.And(b.data)} }
func (SSE41) MaskOr(a, b Mask32x4) Mask32x4     { return Mask32x4{a.data.Or(b.data)} }
func (SSE41) MaskAndNot(a, b Mask32x4) Mask32x4 { return Mask32x4{a.data.AndNot(b.data)} }
func (SSE41) MaskXor(a, b Mask32x4) Mask32x4 {
	return Mask32x4{a.data.Or(b.data).AndNot(a.data.And(b.data))}
}
func (SSE41) MaskNot(a Mask32x4) Mask32x4 {
	z := splatF4(0)
	return Mask32x4{z.Equal(z).AndNot(a.data)}
}
func (SSE41) MaskBits(m Mask32x4) uint32 { return uint32(m.data.ToBits()) }
func (SSE41) AnyTrue(m Mask32x4) bool    { return m.data.ToBits() != 0 }
func (SSE41) AllTrue(m Mask32x4) bool    { return m.data.ToBits() == 0xF }

func (SSE41) SelectF(m Mask32x4, a, b Float32x4) Float32x4 {
	return Float32x4{a.data.Merge(b.data, m.data)}
}
func (SSE41) SelectI(m Mask32x4, a, b Int32x4) Int32x4 {
	return Int32x4{a.data.Merge(b.data, m.data)}
}

func (SSE41) MinF(a, b Float32x4) Float32x4 {
	return Float32x4{a.data.Merge(b.data, a.data.Less(b.data))}
}
func (SSE41) MaxF(a, b Float32x4) Float32x4 {
	return Float32x4{a.data.Merge(b.data, a.data.Greater(b.data))}
}
func (SSE41) MinI(a, b Int32x4) Int32x4 { return Int32x4{a.data.Merge(b.data, a.data.Less(b.data))} }
func (SSE41) MaxI(a, b Int32x4) Int32x4 { return Int32x4{a.data.Merge(b.data, a.data.Greater(b.data))} }

func (SSE41) AndF(a, b Float32x4) Float32x4 {
	return Float32x4{a.data.AsInt32x4().And(b.data.AsInt32x4()).AsFloat32x4()}
}
func (SSE41) OrF(a, b Float32x4) Float32x4 {
	return Float32x4{a.data.AsInt32x4().Or(b.data.AsInt32x4()).AsFloat32x4()}
}
func (SSE41) XorF(a, b Float32x4) Float32x4 {
	return Float32x4{a.data.AsInt32x4().Xor(b.data.AsInt32x4()).AsFloat32x4()}
}
func (SSE41) AndNotF(a, b Float32x4) Float32x4 {
	return Float32x4{a.data.AsInt32x4().AndNot(b.data.AsInt32x4()).AsFloat32x4()}
}
func (SSE41) NotF(a Float32x4) Float32x4 {
	return Float32x4{a.data.AsInt32x4().Xor(splatI4(-1)).AsFloat32x4()}
}
func (SSE41) AndNotI(a, b Int32x4) Int32x4 { return a.AndNot(b) }

func (SSE41) AbsF(a Float32x4) Float32x4 {
	return Float32x4{a.data.AsInt32x4().AndNot(splatI4(math.MinInt32)).AsFloat32x4()}
}
func (SSE41) AbsI(a Int32x4) Int32x4 {
	return Int32x4{a.Neg().data.Merge(a.data, a.data.Less(splatI4(0)))}
}
func (SSE41) SqrtF(a Float32x4) Float32x4       { return Float32x4{a.data.Sqrt()} }
func (SSE41) InvSqrtF(a Float32x4) Float32x4    { return Float32x4{a.data.ReciprocalSqrt()} }
func (SSE41) ReciprocalF(a Float32x4) Float32x4 { return Float32x4{splatF4(1).Div(a.data)} }
func (SSE41) RoundF(a Float32x4) Float32x4      { return Float32x4{a.data.RoundToEven()} }

// FloorF and CeilF correct the round-to-even result by one where it landed
// on the wrong side of a. NaN compares false and passes through.
func (SSE41) FloorF(a Float32x4) Float32x4 {
	r := a.data.RoundToEven()
	return Float32x4{r.Sub(splatF4(1)).Merge(r, r.Greater(a.data))}
}
func (SSE41) CeilF(a Float32x4) Float32x4 {
	r := a.data.RoundToEven()
	return Float32x4{r.Add(splatF4(1)).Merge(r, r.Less(a.data))}
}

func (SSE41) MulAddF(a, b, c Float32x4) Float32x4 {
	return Float32x4{a.data.Mul(b.data).Add(c.data)}
}

func (v SSE41) MaskF(m Mask32x4, a Float32x4) Float32x4  { return v.SelectF(m, a, v.ZeroF()) }
func (v SSE41) MaskI(m Mask32x4, a Int32x4) Int32x4      { return v.SelectI(m, a, v.ZeroI()) }
func (v SSE41) NMaskF(m Mask32x4, a Float32x4) Float32x4 { return v.SelectF(m, v.ZeroF(), a) }
func (v SSE41) NMaskI(m Mask32x4, a Int32x4) Int32x4     { return v.SelectI(m, v.ZeroI(), a) }

func (v SSE41) MaskedAddF(m Mask32x4, a, b Float32x4) Float32x4  { return v.SelectF(m, a.Add(b), a) }
func (v SSE41) MaskedSubF(m Mask32x4, a, b Float32x4) Float32x4  { return v.SelectF(m, a.Sub(b), a) }
func (v SSE41) MaskedMulF(m Mask32x4, a, b Float32x4) Float32x4  { return v.SelectF(m, a.Mul(b), a) }
func (v SSE41) MaskedAddI(m Mask32x4, a, b Int32x4) Int32x4      { return v.SelectI(m, a.Add(b), a) }
func (v SSE41) MaskedSubI(m Mask32x4, a, b Int32x4) Int32x4      { return v.SelectI(m, a.Sub(b), a) }
func (v SSE41) MaskedMulI(m Mask32x4, a, b Int32x4) Int32x4      { return v.SelectI(m, a.Mul(b), a) }
func (v SSE41) NMaskedAddF(m Mask32x4, a, b Float32x4) Float32x4 { return v.SelectF(m, a, a.Add(b)) }
func (v SSE41) NMaskedSubF(m Mask32x4, a, b Float32x4) Float32x4 { return v.SelectF(m, a, a.Sub(b)) }
func (v SSE41) NMaskedMulF(m Mask32x4, a, b Float32x4) Float32x4 { return v.SelectF(m, a, a.Mul(b)) }
func (v SSE41) NMaskedAddI(m Mask32x4, a, b Int32x4) Int32x4     { return v.SelectI(m, a, a.Add(b)) }
func (v SSE41) NMaskedSubI(m Mask32x4, a, b Int32x4) Int32x4     { return v.SelectI(m, a, a.Sub(b)) }
func (v SSE41) NMaskedMulI(m Mask32x4, a, b Int32x4) Int32x4     { return v.SelectI(m, a, a.Mul(b)) }

func (v SSE41) MaskedIncrementI(m Mask32x4, a Int32x4) Int32x4 {
	return v.SelectI(m, a.Add(v.SetI(1)), a)
}
