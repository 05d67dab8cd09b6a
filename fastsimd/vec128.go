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

//go:build !amd64 || !goexperiment.simd

package fastsimd

// vec128 implements the Backend operations on 4-lane values. The lane
// semantics that differ between levels come from the traits type T, so each
// 128-bit backend is vec128 instantiated with its own traits.
type vec128[T laneTraits] struct{}

func (v vec128[T]) traits() (t T) { return }

func (v vec128[T]) Level() Level { return v.traits().level() }
func (v vec128[T]) Size() int    { return 4 }

func (v vec128[T]) ZeroF() (r Float32x4)                { return }
func (v vec128[T]) ZeroI() (r Int32x4)                  { return }
func (v vec128[T]) SetF(x float32) (r Float32x4)        { fillF(r[:], x); return }
func (v vec128[T]) SetI(x int32) (r Int32x4)            { fillI(r[:], x); return }
func (v vec128[T]) IncrementedF() (r Float32x4)         { iotaF(r[:]); return }
func (v vec128[T]) IncrementedI() (r Int32x4)           { iotaI(r[:]); return }
func (v vec128[T]) LoadF(p []float32) (r Float32x4)     { checkLen(len(p), 4); copy(r[:], p); return }
func (v vec128[T]) LoadI(p []int32) (r Int32x4)         { checkLen(len(p), 4); copy(r[:], p); return }
func (v vec128[T]) StoreF(a Float32x4, p []float32)     { checkLen(len(p), 4); copy(p, a[:]) }
func (v vec128[T]) StoreI(a Int32x4, p []int32)         { checkLen(len(p), 4); copy(p, a[:]) }
func (v vec128[T]) GetLaneF(a Float32x4, i int) float32 { return a[i] }
func (v vec128[T]) GetLaneI(a Int32x4, i int) int32     { return a[i] }

func (v vec128[T]) CastF(a Int32x4) (r Float32x4)    { castToF(r[:], a[:]); return }
func (v vec128[T]) CastI(a Float32x4) (r Int32x4)    { castToI(r[:], a[:]); return }
func (v vec128[T]) ConvertF(a Int32x4) (r Float32x4) { convertToF(r[:], a[:]); return }
func (v vec128[T]) ConvertI(a Float32x4) (r Int32x4) {
	convertToI(r[:], a[:], v.traits().convertI)
	return
}

func (v vec128[T]) MinF(a, b Float32x4) (r Float32x4) {
	zipF(r[:], a[:], b[:], v.traits().minF)
	return
}
func (v vec128[T]) MaxF(a, b Float32x4) (r Float32x4) {
	zipF(r[:], a[:], b[:], v.traits().maxF)
	return
}
func (v vec128[T]) MinI(a, b Int32x4) (r Int32x4) { minI(r[:], a[:], b[:]); return }
func (v vec128[T]) MaxI(a, b Int32x4) (r Int32x4) { maxI(r[:], a[:], b[:]); return }

func (v vec128[T]) AndF(a, b Float32x4) (r Float32x4)    { andF(r[:], a[:], b[:]); return }
func (v vec128[T]) OrF(a, b Float32x4) (r Float32x4)     { orF(r[:], a[:], b[:]); return }
func (v vec128[T]) XorF(a, b Float32x4) (r Float32x4)    { xorF(r[:], a[:], b[:]); return }
func (v vec128[T]) AndNotF(a, b Float32x4) (r Float32x4) { andNotF(r[:], a[:], b[:]); return }
func (v vec128[T]) NotF(a Float32x4) (r Float32x4)       { mapF(r[:], a[:], notLane); return }
func (v vec128[T]) AndNotI(a, b Int32x4) Int32x4         { return a.AndNot(b) }

func (v vec128[T]) AbsF(a Float32x4) (r Float32x4)     { mapF(r[:], a[:], absLane); return }
func (v vec128[T]) AbsI(a Int32x4) (r Int32x4)         { absI(r[:], a[:]); return }
func (v vec128[T]) SqrtF(a Float32x4) (r Float32x4)    { sqrtF(r[:], a[:]); return }
func (v vec128[T]) InvSqrtF(a Float32x4) (r Float32x4) { mapF(r[:], a[:], v.traits().invSqrt); return }
func (v vec128[T]) ReciprocalF(a Float32x4) (r Float32x4) {
	mapF(r[:], a[:], v.traits().reciprocal)
	return
}
func (v vec128[T]) FloorF(a Float32x4) (r Float32x4) { mapF(r[:], a[:], v.traits().floor); return }
func (v vec128[T]) CeilF(a Float32x4) (r Float32x4)  { mapF(r[:], a[:], v.traits().ceil); return }
func (v vec128[T]) RoundF(a Float32x4) (r Float32x4) { mapF(r[:], a[:], v.traits().round); return }

func (v vec128[T]) MulAddF(a, b, c Float32x4) (r Float32x4) {
	mulAddF(r[:], a[:], b[:], c[:], useFMA && v.traits().fusedMulAdd())
	return
}

func (v vec128[T]) MaskLoadF(m Mask32x4, p []float32) (r Float32x4) { maskLoadF(r[:], m[:], p); return }
func (v vec128[T]) MaskStoreF(m Mask32x4, a Float32x4, p []float32) { maskStoreF(m[:], a[:], p) }
func (v vec128[T]) MaskStoreI(m Mask32x4, a Int32x4, p []int32)     { maskStoreI(m[:], a[:], p) }

func (v vec128[T]) EqualF(a, b Float32x4) (m Mask32x4)        { eqF(m[:], a[:], b[:]); return }
func (v vec128[T]) GreaterThanF(a, b Float32x4) (m Mask32x4)  { gtF(m[:], a[:], b[:]); return }
func (v vec128[T]) LessThanF(a, b Float32x4) (m Mask32x4)     { ltF(m[:], a[:], b[:]); return }
func (v vec128[T]) GreaterEqualF(a, b Float32x4) (m Mask32x4) { geF(m[:], a[:], b[:]); return }
func (v vec128[T]) LessEqualF(a, b Float32x4) (m Mask32x4)    { leF(m[:], a[:], b[:]); return }
func (v vec128[T]) EqualI(a, b Int32x4) (m Mask32x4)          { eqI(m[:], a[:], b[:]); return }
func (v vec128[T]) GreaterThanI(a, b Int32x4) (m Mask32x4)    { gtI(m[:], a[:], b[:]); return }
func (v vec128[T]) LessThanI(a, b Int32x4) (m Mask32x4)       { ltI(m[:], a[:], b[:]); return }

func (v vec128[T]) SignMask(a Int32x4) (m Mask32x4)       { shrI(m[:], a[:], 31); return }
func (v vec128[T]) FirstN(n int) (m Mask32x4)             { firstN(m[:], n); return }
func (v vec128[T]) MaskAnd(a, b Mask32x4) (m Mask32x4)    { andI(m[:], a[:], b[:]); return }
func (v vec128[T]) MaskOr(a, b Mask32x4) (m Mask32x4)     { orI(m[:], a[:], b[:]); return }
func (v vec128[T]) MaskXor(a, b Mask32x4) (m Mask32x4)    { xorI(m[:], a[:], b[:]); return }
func (v vec128[T]) MaskAndNot(a, b Mask32x4) (m Mask32x4) { andNotI(m[:], a[:], b[:]); return }
func (v vec128[T]) MaskNot(a Mask32x4) (m Mask32x4)       { notI(m[:], a[:]); return }
func (v vec128[T]) MaskBits(m Mask32x4) uint32            { return packSigns(m[:]) }
func (v vec128[T]) AnyTrue(m Mask32x4) bool               { return packSigns(m[:]) != 0 }
func (v vec128[T]) AllTrue(m Mask32x4) bool               { return packSigns(m[:]) == lowBits(4) }

func (v vec128[T]) SelectF(m Mask32x4, a, b Float32x4) (r Float32x4) {
	v.traits().selectF(r[:], m[:], a[:], b[:])
	return
}
func (v vec128[T]) SelectI(m Mask32x4, a, b Int32x4) (r Int32x4) {
	v.traits().selectI(r[:], m[:], a[:], b[:])
	return
}

func (v vec128[T]) MaskF(m Mask32x4, a Float32x4) Float32x4  { return v.SelectF(m, a, Float32x4{}) }
func (v vec128[T]) MaskI(m Mask32x4, a Int32x4) Int32x4      { return v.SelectI(m, a, Int32x4{}) }
func (v vec128[T]) NMaskF(m Mask32x4, a Float32x4) Float32x4 { return v.SelectF(m, Float32x4{}, a) }
func (v vec128[T]) NMaskI(m Mask32x4, a Int32x4) Int32x4     { return v.SelectI(m, Int32x4{}, a) }

func (v vec128[T]) MaskedAddF(m Mask32x4, a, b Float32x4) Float32x4 { return v.SelectF(m, a.Add(b), a) }
func (v vec128[T]) MaskedSubF(m Mask32x4, a, b Float32x4) Float32x4 { return v.SelectF(m, a.Sub(b), a) }
func (v vec128[T]) MaskedMulF(m Mask32x4, a, b Float32x4) Float32x4 { return v.SelectF(m, a.Mul(b), a) }
func (v vec128[T]) MaskedAddI(m Mask32x4, a, b Int32x4) Int32x4     { return v.SelectI(m, a.Add(b), a) }
func (v vec128[T]) MaskedSubI(m Mask32x4, a, b Int32x4) Int32x4     { return v.SelectI(m, a.Sub(b), a) }
func (v vec128[T]) MaskedMulI(m Mask32x4, a, b Int32x4) Int32x4     { return v.SelectI(m, a.Mul(b), a) }
func (v vec128[T]) NMaskedAddF(m Mask32x4, a, b Float32x4) Float32x4 {
	return v.SelectF(m, a, a.Add(b))
}
func (v vec128[T]) NMaskedSubF(m Mask32x4, a, b Float32x4) Float32x4 {
	return v.SelectF(m, a, a.Sub(b))
}
func (v vec128[T]) NMaskedMulF(m Mask32x4, a, b Float32x4) Float32x4 {
	return v.SelectF(m, a, a.Mul(b))
}
func (v vec128[T]) NMaskedAddI(m Mask32x4, a, b Int32x4) Int32x4 { return v.SelectI(m, a, a.Add(b)) }
func (v vec128[T]) NMaskedSubI(m Mask32x4, a, b Int32x4) Int32x4 { return v.SelectI(m, a, a.Sub(b)) }
func (v vec128[T]) NMaskedMulI(m Mask32x4, a, b Int32x4) Int32x4 { return v.SelectI(m, a, a.Mul(b)) }

func (v vec128[T]) MaskedIncrementI(m Mask32x4, a Int32x4) Int32x4 {
	var one Int32x4
	fillI(one[:], 1)
	return v.SelectI(m, a.Add(one), a)
}
