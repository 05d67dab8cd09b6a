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

// vec512 implements the Backend operations on 16-lane values. Masks are
// one bit per lane, like AVX-512 opmask registers.
type vec512[T laneTraits] struct{}

func (v vec512[T]) traits() (t T) { return }

func (v vec512[T]) Level() Level { return v.traits().level() }
func (v vec512[T]) Size() int    { return 16 }

func (v vec512[T]) ZeroF() (r Float32x16)                { return }
func (v vec512[T]) ZeroI() (r Int32x16)                  { return }
func (v vec512[T]) SetF(x float32) (r Float32x16)        { fillF(r[:], x); return }
func (v vec512[T]) SetI(x int32) (r Int32x16)            { fillI(r[:], x); return }
func (v vec512[T]) IncrementedF() (r Float32x16)         { iotaF(r[:]); return }
func (v vec512[T]) IncrementedI() (r Int32x16)           { iotaI(r[:]); return }
func (v vec512[T]) LoadF(p []float32) (r Float32x16)     { checkLen(len(p), 16); copy(r[:], p); return }
func (v vec512[T]) LoadI(p []int32) (r Int32x16)         { checkLen(len(p), 16); copy(r[:], p); return }
func (v vec512[T]) StoreF(a Float32x16, p []float32)     { checkLen(len(p), 16); copy(p, a[:]) }
func (v vec512[T]) StoreI(a Int32x16, p []int32)         { checkLen(len(p), 16); copy(p, a[:]) }
func (v vec512[T]) GetLaneF(a Float32x16, i int) float32 { return a[i] }
func (v vec512[T]) GetLaneI(a Int32x16, i int) int32     { return a[i] }

func (v vec512[T]) CastF(a Int32x16) (r Float32x16)    { castToF(r[:], a[:]); return }
func (v vec512[T]) CastI(a Float32x16) (r Int32x16)    { castToI(r[:], a[:]); return }
func (v vec512[T]) ConvertF(a Int32x16) (r Float32x16) { convertToF(r[:], a[:]); return }
func (v vec512[T]) ConvertI(a Float32x16) (r Int32x16) {
	convertToI(r[:], a[:], v.traits().convertI)
	return
}

func (v vec512[T]) MinF(a, b Float32x16) (r Float32x16) {
	zipF(r[:], a[:], b[:], v.traits().minF)
	return
}
func (v vec512[T]) MaxF(a, b Float32x16) (r Float32x16) {
	zipF(r[:], a[:], b[:], v.traits().maxF)
	return
}
func (v vec512[T]) MinI(a, b Int32x16) (r Int32x16) { minI(r[:], a[:], b[:]); return }
func (v vec512[T]) MaxI(a, b Int32x16) (r Int32x16) { maxI(r[:], a[:], b[:]); return }

func (v vec512[T]) AndF(a, b Float32x16) (r Float32x16)    { andF(r[:], a[:], b[:]); return }
func (v vec512[T]) OrF(a, b Float32x16) (r Float32x16)     { orF(r[:], a[:], b[:]); return }
func (v vec512[T]) XorF(a, b Float32x16) (r Float32x16)    { xorF(r[:], a[:], b[:]); return }
func (v vec512[T]) AndNotF(a, b Float32x16) (r Float32x16) { andNotF(r[:], a[:], b[:]); return }
func (v vec512[T]) NotF(a Float32x16) (r Float32x16)       { mapF(r[:], a[:], notLane); return }
func (v vec512[T]) AndNotI(a, b Int32x16) Int32x16         { return a.AndNot(b) }

func (v vec512[T]) AbsF(a Float32x16) (r Float32x16)  { mapF(r[:], a[:], absLane); return }
func (v vec512[T]) AbsI(a Int32x16) (r Int32x16)      { absI(r[:], a[:]); return }
func (v vec512[T]) SqrtF(a Float32x16) (r Float32x16) { sqrtF(r[:], a[:]); return }
func (v vec512[T]) InvSqrtF(a Float32x16) (r Float32x16) {
	mapF(r[:], a[:], v.traits().invSqrt)
	return
}
func (v vec512[T]) ReciprocalF(a Float32x16) (r Float32x16) {
	mapF(r[:], a[:], v.traits().reciprocal)
	return
}
func (v vec512[T]) FloorF(a Float32x16) (r Float32x16) { mapF(r[:], a[:], v.traits().floor); return }
func (v vec512[T]) CeilF(a Float32x16) (r Float32x16)  { mapF(r[:], a[:], v.traits().ceil); return }
func (v vec512[T]) RoundF(a Float32x16) (r Float32x16) { mapF(r[:], a[:], v.traits().round); return }

func (v vec512[T]) MulAddF(a, b, c Float32x16) (r Float32x16) {
	mulAddF(r[:], a[:], b[:], c[:], useFMA && v.traits().fusedMulAdd())
	return
}

func (v vec512[T]) lanes(m Mask32x16) (l [16]int32) { unpackBits(l[:], uint32(m)); return }

func (v vec512[T]) MaskLoadF(m Mask32x16, p []float32) (r Float32x16) {
	l := v.lanes(m)
	maskLoadF(r[:], l[:], p)
	return
}
func (v vec512[T]) MaskStoreF(m Mask32x16, a Float32x16, p []float32) {
	l := v.lanes(m)
	maskStoreF(l[:], a[:], p)
}
func (v vec512[T]) MaskStoreI(m Mask32x16, a Int32x16, p []int32) {
	l := v.lanes(m)
	maskStoreI(l[:], a[:], p)
}

func pack16(l [16]int32) Mask32x16 { return Mask32x16(packSigns(l[:])) }

func (v vec512[T]) EqualF(a, b Float32x16) Mask32x16 {
	var l [16]int32
	eqF(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) GreaterThanF(a, b Float32x16) Mask32x16 {
	var l [16]int32
	gtF(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) LessThanF(a, b Float32x16) Mask32x16 {
	var l [16]int32
	ltF(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) GreaterEqualF(a, b Float32x16) Mask32x16 {
	var l [16]int32
	geF(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) LessEqualF(a, b Float32x16) Mask32x16 {
	var l [16]int32
	leF(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) EqualI(a, b Int32x16) Mask32x16 {
	var l [16]int32
	eqI(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) GreaterThanI(a, b Int32x16) Mask32x16 {
	var l [16]int32
	gtI(l[:], a[:], b[:])
	return pack16(l)
}
func (v vec512[T]) LessThanI(a, b Int32x16) Mask32x16 {
	var l [16]int32
	ltI(l[:], a[:], b[:])
	return pack16(l)
}

func (v vec512[T]) SignMask(a Int32x16) Mask32x16       { return pack16(a) }
func (v vec512[T]) FirstN(n int) Mask32x16              { return Mask32x16(lowBits(n)) }
func (v vec512[T]) MaskAnd(a, b Mask32x16) Mask32x16    { return a & b }
func (v vec512[T]) MaskOr(a, b Mask32x16) Mask32x16     { return a | b }
func (v vec512[T]) MaskXor(a, b Mask32x16) Mask32x16    { return a ^ b }
func (v vec512[T]) MaskAndNot(a, b Mask32x16) Mask32x16 { return a &^ b }
func (v vec512[T]) MaskNot(a Mask32x16) Mask32x16       { return ^a }
func (v vec512[T]) MaskBits(m Mask32x16) uint32         { return uint32(m) }
func (v vec512[T]) AnyTrue(m Mask32x16) bool            { return m != 0 }
func (v vec512[T]) AllTrue(m Mask32x16) bool            { return m == ^Mask32x16(0) }

func (v vec512[T]) SelectF(m Mask32x16, a, b Float32x16) (r Float32x16) {
	l := v.lanes(m)
	v.traits().selectF(r[:], l[:], a[:], b[:])
	return
}

func (v vec512[T]) SelectI(m Mask32x16, a, b Int32x16) (r Int32x16) {
	l := v.lanes(m)
	v.traits().selectI(r[:], l[:], a[:], b[:])
	return
}

func (v vec512[T]) MaskF(m Mask32x16, a Float32x16) Float32x16  { return v.SelectF(m, a, Float32x16{}) }
func (v vec512[T]) MaskI(m Mask32x16, a Int32x16) Int32x16      { return v.SelectI(m, a, Int32x16{}) }
func (v vec512[T]) NMaskF(m Mask32x16, a Float32x16) Float32x16 { return v.SelectF(m, Float32x16{}, a) }
func (v vec512[T]) NMaskI(m Mask32x16, a Int32x16) Int32x16     { return v.SelectI(m, Int32x16{}, a) }

func (v vec512[T]) MaskedAddF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a.Add(b), a)
}
func (v vec512[T]) MaskedSubF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a.Sub(b), a)
}
func (v vec512[T]) MaskedMulF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a.Mul(b), a)
}
func (v vec512[T]) MaskedAddI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a.Add(b), a) }
func (v vec512[T]) MaskedSubI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a.Sub(b), a) }
func (v vec512[T]) MaskedMulI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a.Mul(b), a) }
func (v vec512[T]) NMaskedAddF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a, a.Add(b))
}
func (v vec512[T]) NMaskedSubF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a, a.Sub(b))
}
func (v vec512[T]) NMaskedMulF(m Mask32x16, a, b Float32x16) Float32x16 {
	return v.SelectF(m, a, a.Mul(b))
}
func (v vec512[T]) NMaskedAddI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a, a.Add(b)) }
func (v vec512[T]) NMaskedSubI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a, a.Sub(b)) }
func (v vec512[T]) NMaskedMulI(m Mask32x16, a, b Int32x16) Int32x16 { return v.SelectI(m, a, a.Mul(b)) }

func (v vec512[T]) MaskedIncrementI(m Mask32x16, a Int32x16) Int32x16 {
	var one Int32x16
	fillI(one[:], 1)
	return v.SelectI(m, a.Add(one), a)
}
