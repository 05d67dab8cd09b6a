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

// vec256 implements the Backend operations on 8-lane values with lane masks.
type vec256[T laneTraits] struct{}

func (v vec256[T]) traits() (t T) { return }

func (v vec256[T]) Level() Level { return v.traits().level() }
func (v vec256[T]) Size() int    { return 8 }

func (v vec256[T]) ZeroF() (r Float32x8)                { return }
func (v vec256[T]) ZeroI() (r Int32x8)                  { return }
func (v vec256[T]) SetF(x float32) (r Float32x8)        { fillF(r[:], x); return }
func (v vec256[T]) SetI(x int32) (r Int32x8)            { fillI(r[:], x); return }
func (v vec256[T]) IncrementedF() (r Float32x8)         { iotaF(r[:]); return }
func (v vec256[T]) IncrementedI() (r Int32x8)           { iotaI(r[:]); return }
func (v vec256[T]) LoadF(p []float32) (r Float32x8)     { checkLen(len(p), 8); copy(r[:], p); return }
func (v vec256[T]) LoadI(p []int32) (r Int32x8)         { checkLen(len(p), 8); copy(r[:], p); return }
func (v vec256[T]) StoreF(a Float32x8, p []float32)     { checkLen(len(p), 8); copy(p, a[:]) }
func (v vec256[T]) StoreI(a Int32x8, p []int32)         { checkLen(len(p), 8); copy(p, a[:]) }
func (v vec256[T]) GetLaneF(a Float32x8, i int) float32 { return a[i] }
func (v vec256[T]) GetLaneI(a Int32x8, i int) int32     { return a[i] }

func (v vec256[T]) CastF(a Int32x8) (r Float32x8)    { castToF(r[:], a[:]); return }
func (v vec256[T]) CastI(a Float32x8) (r Int32x8)    { castToI(r[:], a[:]); return }
func (v vec256[T]) ConvertF(a Int32x8) (r Float32x8) { convertToF(r[:], a[:]); return }
func (v vec256[T]) ConvertI(a Float32x8) (r Int32x8) {
	convertToI(r[:], a[:], v.traits().convertI)
	return
}

func (v vec256[T]) MinF(a, b Float32x8) (r Float32x8) {
	zipF(r[:], a[:], b[:], v.traits().minF)
	return
}
func (v vec256[T]) MaxF(a, b Float32x8) (r Float32x8) {
	zipF(r[:], a[:], b[:], v.traits().maxF)
	return
}
func (v vec256[T]) MinI(a, b Int32x8) (r Int32x8) { minI(r[:], a[:], b[:]); return }
func (v vec256[T]) MaxI(a, b Int32x8) (r Int32x8) { maxI(r[:], a[:], b[:]); return }

func (v vec256[T]) AndF(a, b Float32x8) (r Float32x8)    { andF(r[:], a[:], b[:]); return }
func (v vec256[T]) OrF(a, b Float32x8) (r Float32x8)     { orF(r[:], a[:], b[:]); return }
func (v vec256[T]) XorF(a, b Float32x8) (r Float32x8)    { xorF(r[:], a[:], b[:]); return }
func (v vec256[T]) AndNotF(a, b Float32x8) (r Float32x8) { andNotF(r[:], a[:], b[:]); return }
func (v vec256[T]) NotF(a Float32x8) (r Float32x8)       { mapF(r[:], a[:], notLane); return }
func (v vec256[T]) AndNotI(a, b Int32x8) Int32x8         { return a.AndNot(b) }

func (v vec256[T]) AbsF(a Float32x8) (r Float32x8)     { mapF(r[:], a[:], absLane); return }
func (v vec256[T]) AbsI(a Int32x8) (r Int32x8)         { absI(r[:], a[:]); return }
func (v vec256[T]) SqrtF(a Float32x8) (r Float32x8)    { sqrtF(r[:], a[:]); return }
func (v vec256[T]) InvSqrtF(a Float32x8) (r Float32x8) { mapF(r[:], a[:], v.traits().invSqrt); return }
func (v vec256[T]) ReciprocalF(a Float32x8) (r Float32x8) {
	mapF(r[:], a[:], v.traits().reciprocal)
	return
}
func (v vec256[T]) FloorF(a Float32x8) (r Float32x8) { mapF(r[:], a[:], v.traits().floor); return }
func (v vec256[T]) CeilF(a Float32x8) (r Float32x8)  { mapF(r[:], a[:], v.traits().ceil); return }
func (v vec256[T]) RoundF(a Float32x8) (r Float32x8) { mapF(r[:], a[:], v.traits().round); return }

func (v vec256[T]) MulAddF(a, b, c Float32x8) (r Float32x8) {
	mulAddF(r[:], a[:], b[:], c[:], useFMA && v.traits().fusedMulAdd())
	return
}

func (v vec256[T]) MaskLoadF(m Mask32x8, p []float32) (r Float32x8) { maskLoadF(r[:], m[:], p); return }
func (v vec256[T]) MaskStoreF(m Mask32x8, a Float32x8, p []float32) { maskStoreF(m[:], a[:], p) }
func (v vec256[T]) MaskStoreI(m Mask32x8, a Int32x8, p []int32)     { maskStoreI(m[:], a[:], p) }

func (v vec256[T]) EqualF(a, b Float32x8) (m Mask32x8)        { eqF(m[:], a[:], b[:]); return }
func (v vec256[T]) GreaterThanF(a, b Float32x8) (m Mask32x8)  { gtF(m[:], a[:], b[:]); return }
func (v vec256[T]) LessThanF(a, b Float32x8) (m Mask32x8)     { ltF(m[:], a[:], b[:]); return }
func (v vec256[T]) GreaterEqualF(a, b Float32x8) (m Mask32x8) { geF(m[:], a[:], b[:]); return }
func (v vec256[T]) LessEqualF(a, b Float32x8) (m Mask32x8)    { leF(m[:], a[:], b[:]); return }
func (v vec256[T]) EqualI(a, b Int32x8) (m Mask32x8)          { eqI(m[:], a[:], b[:]); return }
func (v vec256[T]) GreaterThanI(a, b Int32x8) (m Mask32x8)    { gtI(m[:], a[:], b[:]); return }
func (v vec256[T]) LessThanI(a, b Int32x8) (m Mask32x8)       { ltI(m[:], a[:], b[:]); return }

func (v vec256[T]) SignMask(a Int32x8) (m Mask32x8)       { shrI(m[:], a[:], 31); return }
func (v vec256[T]) FirstN(n int) (m Mask32x8)             { firstN(m[:], n); return }
func (v vec256[T]) MaskAnd(a, b Mask32x8) (m Mask32x8)    { andI(m[:], a[:], b[:]); return }
func (v vec256[T]) MaskOr(a, b Mask32x8) (m Mask32x8)     { orI(m[:], a[:], b[:]); return }
func (v vec256[T]) MaskXor(a, b Mask32x8) (m Mask32x8)    { xorI(m[:], a[:], b[:]); return }
func (v vec256[T]) MaskAndNot(a, b Mask32x8) (m Mask32x8) { andNotI(m[:], a[:], b[:]); return }
func (v vec256[T]) MaskNot(a Mask32x8) (m Mask32x8)       { notI(m[:], a[:]); return }
func (v vec256[T]) MaskBits(m Mask32x8) uint32            { return packSigns(m[:]) }
func (v vec256[T]) AnyTrue(m Mask32x8) bool               { return packSigns(m[:]) != 0 }
func (v vec256[T]) AllTrue(m Mask32x8) bool               { return packSigns(m[:]) == lowBits(8) }

func (v vec256[T]) SelectF(m Mask32x8, a, b Float32x8) (r Float32x8) {
	v.traits().selectF(r[:], m[:], a[:], b[:])
	return
}
func (v vec256[T]) SelectI(m Mask32x8, a, b Int32x8) (r Int32x8) {
	v.traits().selectI(r[:], m[:], a[:], b[:])
	return
}

func (v vec256[T]) MaskF(m Mask32x8, a Float32x8) Float32x8  { return v.SelectF(m, a, Float32x8{}) }
func (v vec256[T]) MaskI(m Mask32x8, a Int32x8) Int32x8      { return v.SelectI(m, a, Int32x8{}) }
func (v vec256[T]) NMaskF(m Mask32x8, a Float32x8) Float32x8 { return v.SelectF(m, Float32x8{}, a) }
func (v vec256[T]) NMaskI(m Mask32x8, a Int32x8) Int32x8     { return v.SelectI(m, Int32x8{}, a) }

func (v vec256[T]) MaskedAddF(m Mask32x8, a, b Float32x8) Float32x8 { return v.SelectF(m, a.Add(b), a) }
func (v vec256[T]) MaskedSubF(m Mask32x8, a, b Float32x8) Float32x8 { return v.SelectF(m, a.Sub(b), a) }
func (v vec256[T]) MaskedMulF(m Mask32x8, a, b Float32x8) Float32x8 { return v.SelectF(m, a.Mul(b), a) }
func (v vec256[T]) MaskedAddI(m Mask32x8, a, b Int32x8) Int32x8     { return v.SelectI(m, a.Add(b), a) }
func (v vec256[T]) MaskedSubI(m Mask32x8, a, b Int32x8) Int32x8     { return v.SelectI(m, a.Sub(b), a) }
func (v vec256[T]) MaskedMulI(m Mask32x8, a, b Int32x8) Int32x8     { return v.SelectI(m, a.Mul(b), a) }
func (v vec256[T]) NMaskedAddF(m Mask32x8, a, b Float32x8) Float32x8 {
	return v.SelectF(m, a, a.Add(b))
}
func (v vec256[T]) NMaskedSubF(m Mask32x8, a, b Float32x8) Float32x8 {
	return v.SelectF(m, a, a.Sub(b))
}
func (v vec256[T]) NMaskedMulF(m Mask32x8, a, b Float32x8) Float32x8 {
	return v.SelectF(m, a, a.Mul(b))
}
func (v vec256[T]) NMaskedAddI(m Mask32x8, a, b Int32x8) Int32x8 { return v.SelectI(m, a, a.Add(b)) }
func (v vec256[T]) NMaskedSubI(m Mask32x8, a, b Int32x8) Int32x8 { return v.SelectI(m, a, a.Sub(b)) }
func (v vec256[T]) NMaskedMulI(m Mask32x8, a, b Int32x8) Int32x8 { return v.SelectI(m, a, a.Mul(b)) }

func (v vec256[T]) MaskedIncrementI(m Mask32x8, a Int32x8) Int32x8 {
	var one Int32x8
	fillI(one[:], 1)
	return v.SelectI(m, a.Add(one), a)
}
