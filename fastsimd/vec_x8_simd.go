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

//go:build amd64 && goexperiment.simd

package fastsimd

import (
	"math"
	"simd/archsimd"
)

// Float32x8 holds 8 float32 lanes in a YMM register, used by the AVX2 backend.
type Float32x8 struct {
	data archsimd.Float32x8
}

// Int32x8 holds 8 int32 lanes in a YMM register.
type Int32x8 struct {
	data archsimd.Int32x8
}

// Mask32x8 is an 8-lane comparison mask.
type Mask32x8 struct {
	data archsimd.Mask32x8
}

var (
	_ Float32v[Float32x8] = Float32x8{}
	_ Int32v[Int32x8]     = Int32x8{}
)

func (a Float32x8) Add(b Float32x8) Float32x8 { return Float32x8{a.data.Add(b.data)} }
func (a Float32x8) Sub(b Float32x8) Float32x8 { return Float32x8{a.data.Sub(b.data)} }
func (a Float32x8) Mul(b Float32x8) Float32x8 { return Float32x8{a.data.Mul(b.data)} }
func (a Float32x8) Div(b Float32x8) Float32x8 { return Float32x8{a.data.Div(b.data)} }
func (a Float32x8) Size() int                 { return 8 }

// Neg flips the sign bit, so Neg of +0 is -0.
func (a Float32x8) Neg() Float32x8 {
	return Float32x8{a.data.AsInt32x8().Xor(archsimd.BroadcastInt32x8(math.MinInt32)).AsFloat32x8()}
}

func (a Int32x8) Add(b Int32x8) Int32x8    { return Int32x8{a.data.Add(b.data)} }
func (a Int32x8) Sub(b Int32x8) Int32x8    { return Int32x8{a.data.Sub(b.data)} }
func (a Int32x8) Mul(b Int32x8) Int32x8    { return Int32x8{a.data.Mul(b.data)} }
func (a Int32x8) And(b Int32x8) Int32x8    { return Int32x8{a.data.And(b.data)} }
func (a Int32x8) Or(b Int32x8) Int32x8     { return Int32x8{a.data.Or(b.data)} }
func (a Int32x8) Xor(b Int32x8) Int32x8    { return Int32x8{a.data.Xor(b.data)} }
func (a Int32x8) AndNot(b Int32x8) Int32x8 { return Int32x8{a.data.AndNot(b.data)} }
func (a Int32x8) Shl(n uint) Int32x8       { return Int32x8{a.data.ShiftAllLeft(uint64(n))} }
func (a Int32x8) Shr(n uint) Int32x8       { return Int32x8{a.data.ShiftAllRight(uint64(n))} }
func (a Int32x8) Not() Int32x8             { return Int32x8{a.data.Xor(archsimd.BroadcastInt32x8(-1))} }
func (a Int32x8) Neg() Int32x8             { return Int32x8{archsimd.BroadcastInt32x8(0).Sub(a.data)} }
func (a Int32x8) Size() int                { return 8 }
