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

// Float32x16 holds 16 float32 lanes in a ZMM register, used by the AVX512 backend.
type Float32x16 struct {
	data archsimd.Float32x16
}

// Int32x16 holds 16 int32 lanes in a ZMM register.
type Int32x16 struct {
	data archsimd.Int32x16
}

// Mask32x16 is a 16-lane comparison mask held in an opmask register.
type Mask32x16 struct {
	data archsimd.Mask32x16
}

var (
	_ Float32v[Float32x16] = Float32x16{}
	_ Int32v[Int32x16]     = Int32x16{}
)

func (a Float32x16) Add(b Float32x16) Float32x16 { return Float32x16{a.data.Add(b.data)} }
func (a Float32x16) Sub(b Float32x16) Float32x16 { return Float32x16{a.data.Sub(b.data)} }
func (a Float32x16) Mul(b Float32x16) Float32x16 { return Float32x16{a.data.Mul(b.data)} }
func (a Float32x16) Div(b Float32x16) Float32x16 { return Float32x16{a.data.Div(b.data)} }
func (a Float32x16) Size() int                   { return 16 }

// Neg flips the sign bit, so Neg of +0 is -0.
func (a Float32x16) Neg() Float32x16 {
	return Float32x16{a.data.AsInt32x16().Xor(archsimd.BroadcastInt32x16(math.MinInt32)).AsFloat32x16()}
}

func (a Int32x16) Add(b Int32x16) Int32x16    { return Int32x16{a.data.Add(b.data)} }
func (a Int32x16) Sub(b Int32x16) Int32x16    { return Int32x16{a.data.Sub(b.data)} }
func (a Int32x16) Mul(b Int32x16) Int32x16    { return Int32x16{a.data.Mul(b.data)} }
func (a Int32x16) And(b Int32x16) Int32x16    { return Int32x16{a.data.And(b.data)} }
func (a Int32x16) Or(b Int32x16) Int32x16     { return Int32x16{a.data.Or(b.data)} }
func (a Int32x16) Xor(b Int32x16) Int32x16    { return Int32x16{a.data.Xor(b.data)} }
func (a Int32x16) AndNot(b Int32x16) Int32x16 { return Int32x16{a.data.AndNot(b.data)} }
func (a Int32x16) Shl(n uint) Int32x16        { return Int32x16{a.data.ShiftAllLeft(uint64(n))} }
func (a Int32x16) Shr(n uint) Int32x16        { return Int32x16{a.data.ShiftAllRight(uint64(n))} }
func (a Int32x16) Not() Int32x16              { return Int32x16{a.data.Xor(archsimd.BroadcastInt32x16(-1))} }
func (a Int32x16) Neg() Int32x16              { return Int32x16{archsimd.BroadcastInt32x16(0).Sub(a.data)} }
func (a Int32x16) Size() int                  { return 16 }
