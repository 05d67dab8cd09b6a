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

// Float32x16 holds 16 float32 lanes (512-bit), used by the AVX512 backend.
type Float32x16 [16]float32

// Int32x16 holds 16 int32 lanes (512-bit).
type Int32x16 [16]int32

// Mask32x16 is a 16-lane mask with one bit per lane, like an AVX-512 opmask
// register. Bit i is lane i.
type Mask32x16 uint16

var (
	_ Float32v[Float32x16] = Float32x16{}
	_ Int32v[Int32x16]     = Int32x16{}
)

func (a Float32x16) Add(b Float32x16) (r Float32x16) { addF(r[:], a[:], b[:]); return }
func (a Float32x16) Sub(b Float32x16) (r Float32x16) { subF(r[:], a[:], b[:]); return }
func (a Float32x16) Mul(b Float32x16) (r Float32x16) { mulF(r[:], a[:], b[:]); return }
func (a Float32x16) Div(b Float32x16) (r Float32x16) { divF(r[:], a[:], b[:]); return }
func (a Float32x16) Neg() (r Float32x16)             { negF(r[:], a[:]); return }
func (a Float32x16) Size() int                       { return 16 }

func (a Int32x16) Add(b Int32x16) (r Int32x16)    { addI(r[:], a[:], b[:]); return }
func (a Int32x16) Sub(b Int32x16) (r Int32x16)    { subI(r[:], a[:], b[:]); return }
func (a Int32x16) Mul(b Int32x16) (r Int32x16)    { mulI(r[:], a[:], b[:]); return }
func (a Int32x16) And(b Int32x16) (r Int32x16)    { andI(r[:], a[:], b[:]); return }
func (a Int32x16) Or(b Int32x16) (r Int32x16)     { orI(r[:], a[:], b[:]); return }
func (a Int32x16) Xor(b Int32x16) (r Int32x16)    { xorI(r[:], a[:], b[:]); return }
func (a Int32x16) AndNot(b Int32x16) (r Int32x16) { andNotI(r[:], a[:], b[:]); return }
func (a Int32x16) Shl(n uint) (r Int32x16)        { shlI(r[:], a[:], n); return }
func (a Int32x16) Shr(n uint) (r Int32x16)        { shrI(r[:], a[:], n); return }
func (a Int32x16) Not() (r Int32x16)              { notI(r[:], a[:]); return }
func (a Int32x16) Neg() (r Int32x16)              { negI(r[:], a[:]); return }
func (a Int32x16) Size() int                      { return 16 }
