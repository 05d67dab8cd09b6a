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

// Scalar is the portable one-lane backend. It is always compiled.
//
// Edge cases follow the x86 backends: Min/Max return the second operand on
// NaN and ConvertI yields MinInt32 for NaN and out of range values.
// ReciprocalF is exact; InvSqrtF uses a bit-level estimate refined twice.
type Scalar struct{}

var _ Backend[Float32x1, Int32x1, Mask32x1] = Scalar{}

type (
	f1 = Float32x1
	i1 = Int32x1
	m1 = Mask32x1
)

func (Scalar) Level() Level { return LevelScalar }
func (Scalar) Size() int    { return 1 }

func (Scalar) ZeroF() f1                { return 0 }
func (Scalar) ZeroI() i1                { return 0 }
func (Scalar) SetF(v float32) f1        { return f1(v) }
func (Scalar) SetI(v int32) i1          { return i1(v) }
func (Scalar) IncrementedF() f1         { return 0 }
func (Scalar) IncrementedI() i1         { return 0 }
func (Scalar) LoadF(p []float32) f1     { return f1(p[0]) }
func (Scalar) LoadI(p []int32) i1       { return i1(p[0]) }
func (Scalar) StoreF(v f1, p []float32) { p[0] = float32(v) }
func (Scalar) StoreI(v i1, p []int32)   { p[0] = int32(v) }

func (Scalar) MaskLoadF(m m1, p []float32) f1 {
	if m {
		return f1(p[0])
	}
	return 0
}

func (Scalar) MaskStoreF(m m1, v f1, p []float32) {
	if m {
		p[0] = float32(v)
	}
}

func (Scalar) MaskStoreI(m m1, v i1, p []int32) {
	if m {
		p[0] = int32(v)
	}
}

func (Scalar) GetLaneF(v f1, _ int) float32 { return float32(v) }
func (Scalar) GetLaneI(v i1, _ int) int32   { return int32(v) }

func (Scalar) CastF(v i1) f1    { return f1(math.Float32frombits(uint32(v))) }
func (Scalar) CastI(v f1) i1    { return i1(math.Float32bits(float32(v))) }
func (Scalar) ConvertF(v i1) f1 { return f1(v) }
func (Scalar) ConvertI(v f1) i1 { return i1(cvtX86(float32(v))) }

func (Scalar) EqualF(a, b f1) m1        { return a == b }
func (Scalar) GreaterThanF(a, b f1) m1  { return a > b }
func (Scalar) LessThanF(a, b f1) m1     { return a < b }
func (Scalar) GreaterEqualF(a, b f1) m1 { return a >= b }
func (Scalar) LessEqualF(a, b f1) m1    { return a <= b }
func (Scalar) EqualI(a, b i1) m1        { return a == b }
func (Scalar) GreaterThanI(a, b i1) m1  { return a > b }
func (Scalar) LessThanI(a, b i1) m1     { return a < b }

func (Scalar) SignMask(v i1) m1      { return v < 0 }
func (Scalar) FirstN(n int) m1       { return n > 0 }
func (Scalar) MaskAnd(a, b m1) m1    { return a && b }
func (Scalar) MaskOr(a, b m1) m1     { return a || b }
func (Scalar) MaskXor(a, b m1) m1    { return a != b }
func (Scalar) MaskAndNot(a, b m1) m1 { return a && !b }
func (Scalar) MaskNot(m m1) m1       { return !m }

func (Scalar) MaskBits(m m1) uint32 {
	if m {
		return 1
	}
	return 0
}

func (Scalar) AnyTrue(m m1) bool { return bool(m) }
func (Scalar) AllTrue(m m1) bool { return bool(m) }

func (Scalar) SelectF(m m1, a, b f1) f1 {
	if m {
		return a
	}
	return b
}

func (Scalar) SelectI(m m1, a, b i1) i1 {
	if m {
		return a
	}
	return b
}

func (Scalar) MinF(a, b f1) f1 { return f1(minX86(float32(a), float32(b))) }
func (Scalar) MaxF(a, b f1) f1 { return f1(maxX86(float32(a), float32(b))) }
func (Scalar) MinI(a, b i1) i1 { return min(a, b) }
func (Scalar) MaxI(a, b i1) i1 { return max(a, b) }

func (Scalar) AndF(a, b f1) f1    { return f1(fromBits(bitsF(float32(a)) & bitsF(float32(b)))) }
func (Scalar) OrF(a, b f1) f1     { return f1(fromBits(bitsF(float32(a)) | bitsF(float32(b)))) }
func (Scalar) XorF(a, b f1) f1    { return f1(fromBits(bitsF(float32(a)) ^ bitsF(float32(b)))) }
func (Scalar) AndNotF(a, b f1) f1 { return f1(fromBits(bitsF(float32(a)) &^ bitsF(float32(b)))) }
func (Scalar) NotF(v f1) f1       { return f1(notLane(float32(v))) }
func (Scalar) AndNotI(a, b i1) i1 { return a &^ b }

func (Scalar) AbsF(v f1) f1        { return f1(absLane(float32(v))) }
func (Scalar) AbsI(v i1) i1        { return i1(absILane(int32(v))) }
func (Scalar) SqrtF(v f1) f1       { return f1(math32.Sqrt(float32(v))) }
func (Scalar) InvSqrtF(v f1) f1    { return f1(rsqrtBits(float32(v))) }
func (Scalar) ReciprocalF(v f1) f1 { return 1 / v }
func (Scalar) FloorF(v f1) f1      { return f1(math32.Floor(float32(v))) }
func (Scalar) CeilF(v f1) f1       { return f1(math32.Ceil(float32(v))) }
func (Scalar) RoundF(v f1) f1      { return f1(roundLane(float32(v))) }

// MulAddF is never fused on Scalar.
func (Scalar) MulAddF(a, b, c f1) f1 { return f1(mulLane(float32(a), float32(b))) + c }

func (s Scalar) MaskF(m m1, v f1) f1  { return s.SelectF(m, v, 0) }
func (s Scalar) MaskI(m m1, v i1) i1  { return s.SelectI(m, v, 0) }
func (s Scalar) NMaskF(m m1, v f1) f1 { return s.SelectF(m, 0, v) }
func (s Scalar) NMaskI(m m1, v i1) i1 { return s.SelectI(m, 0, v) }

func (s Scalar) MaskedAddF(m m1, a, b f1) f1  { return s.SelectF(m, a.Add(b), a) }
func (s Scalar) MaskedSubF(m m1, a, b f1) f1  { return s.SelectF(m, a.Sub(b), a) }
func (s Scalar) MaskedMulF(m m1, a, b f1) f1  { return s.SelectF(m, a.Mul(b), a) }
func (s Scalar) MaskedAddI(m m1, a, b i1) i1  { return s.SelectI(m, a+b, a) }
func (s Scalar) MaskedSubI(m m1, a, b i1) i1  { return s.SelectI(m, a-b, a) }
func (s Scalar) MaskedMulI(m m1, a, b i1) i1  { return s.SelectI(m, a*b, a) }
func (s Scalar) NMaskedAddF(m m1, a, b f1) f1 { return s.SelectF(m, a, a.Add(b)) }
func (s Scalar) NMaskedSubF(m m1, a, b f1) f1 { return s.SelectF(m, a, a.Sub(b)) }
func (s Scalar) NMaskedMulF(m m1, a, b f1) f1 { return s.SelectF(m, a, a.Mul(b)) }
func (s Scalar) NMaskedAddI(m m1, a, b i1) i1 { return s.SelectI(m, a, a+b) }
func (s Scalar) NMaskedSubI(m m1, a, b i1) i1 { return s.SelectI(m, a, a-b) }
func (s Scalar) NMaskedMulI(m m1, a, b i1) i1 { return s.SelectI(m, a, a*b) }

func (s Scalar) MaskedIncrementI(m m1, a i1) i1 { return s.SelectI(m, a+1, a) }
