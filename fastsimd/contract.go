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

// ApproxRelTolerance is the relative error bound of InvSqrtF and ReciprocalF
// on every backend. Results computed through these operations agree across
// levels only within this tolerance.
const ApproxRelTolerance = 1.0 / 1024

// Float32v is the contract satisfied by every float32 vector value type.
// All operations are lane-wise and return a new value.
type Float32v[F any] interface {
	Add(F) F
	Sub(F) F
	Mul(F) F
	Div(F) F
	Neg() F

	// Size returns the number of lanes.
	Size() int
}

// Int32v is the contract satisfied by every int32 vector value type.
// Arithmetic wraps on overflow; Shr is an arithmetic shift.
type Int32v[I any] interface {
	Add(I) I
	Sub(I) I
	Mul(I) I
	And(I) I
	Or(I) I
	Xor(I) I
	AndNot(I) I
	Shl(n uint) I
	Shr(n uint) I
	Not() I
	Neg() I

	// Size returns the number of lanes.
	Size() int
}

// Backend is the operation table of one capability level. Each concrete
// backend is a stateless struct; algorithms are written once against this
// interface as generic code and instantiated per level.
//
// Suffix F marks float lanes and suffix I int lanes. Masked operations take
// the mask first; lanes that are not selected keep the value of the first
// vector operand.
type Backend[F Float32v[F], I Int32v[I], M any] interface {
	Level() Level
	Size() int

	ZeroF() F
	ZeroI() I
	SetF(v float32) F
	SetI(v int32) I
	// IncrementedF returns {0, 1, 2, ...}.
	IncrementedF() F
	// IncrementedI returns {0, 1, 2, ...}.
	IncrementedI() I

	// LoadF reads Size lanes from p. p must hold at least Size elements.
	LoadF(p []float32) F
	LoadI(p []int32) I
	StoreF(v F, p []float32)
	StoreI(v I, p []int32)
	// MaskLoadF reads the active lanes of m from p; inactive lanes are zero.
	// p only needs to hold the active lanes.
	MaskLoadF(m M, p []float32) F
	// MaskStoreF writes only the active lanes of m to p.
	MaskStoreF(m M, v F, p []float32)
	MaskStoreI(m M, v I, p []int32)
	GetLaneF(v F, i int) float32
	GetLaneI(v I, i int) int32

	// CastF and CastI reinterpret bits.
	CastF(v I) F
	CastI(v F) I
	// ConvertF converts int32 lanes to the nearest float32.
	ConvertF(v I) F
	// ConvertI rounds to the nearest int32, ties to even.
	ConvertI(v F) I

	EqualF(a, b F) M
	GreaterThanF(a, b F) M
	LessThanF(a, b F) M
	GreaterEqualF(a, b F) M
	LessEqualF(a, b F) M
	EqualI(a, b I) M
	GreaterThanI(a, b I) M
	LessThanI(a, b I) M

	// SignMask returns true in every lane whose sign bit is set.
	SignMask(v I) M
	// FirstN returns true in lanes [0, n).
	FirstN(n int) M
	MaskAnd(a, b M) M
	MaskOr(a, b M) M
	MaskXor(a, b M) M
	// MaskAndNot returns a &^ b.
	MaskAndNot(a, b M) M
	MaskNot(m M) M
	// MaskBits returns bit i set for every true lane i.
	MaskBits(m M) uint32
	AnyTrue(m M) bool
	AllTrue(m M) bool

	// SelectF returns a where m is true and b elsewhere.
	SelectF(m M, a, b F) F
	SelectI(m M, a, b I) I

	MinF(a, b F) F
	MaxF(a, b F) F
	MinI(a, b I) I
	MaxI(a, b I) I

	AndF(a, b F) F
	OrF(a, b F) F
	XorF(a, b F) F
	// AndNotF returns a &^ b.
	AndNotF(a, b F) F
	NotF(v F) F
	AndNotI(a, b I) I

	AbsF(v F) F
	AbsI(v I) I
	SqrtF(v F) F
	// InvSqrtF approximates 1/sqrt(v) within ApproxRelTolerance.
	InvSqrtF(v F) F
	// ReciprocalF approximates 1/v within ApproxRelTolerance.
	ReciprocalF(v F) F
	FloorF(v F) F
	CeilF(v F) F
	// RoundF rounds to the nearest integer, ties to even.
	RoundF(v F) F
	// MulAddF returns a*b + c.
	MulAddF(a, b, c F) F

	// MaskF zeroes the lanes where m is false.
	MaskF(m M, v F) F
	MaskI(m M, v I) I
	// NMaskF zeroes the lanes where m is true.
	NMaskF(m M, v F) F
	NMaskI(m M, v I) I

	MaskedAddF(m M, a, b F) F
	MaskedSubF(m M, a, b F) F
	MaskedMulF(m M, a, b F) F
	MaskedAddI(m M, a, b I) I
	MaskedSubI(m M, a, b I) I
	MaskedMulI(m M, a, b I) I
	NMaskedAddF(m M, a, b F) F
	NMaskedSubF(m M, a, b F) F
	NMaskedMulF(m M, a, b F) F
	NMaskedAddI(m M, a, b I) I
	NMaskedSubI(m M, a, b I) I
	NMaskedMulI(m M, a, b I) I
	// MaskedIncrementI adds 1 to the lanes where m is true.
	MaskedIncrementI(m M, a I) I
}
