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

// Float32x8 holds 8 float32 lanes (256-bit), used by the AVX2 backend.
type Float32x8 [8]float32

// Int32x8 holds 8 int32 lanes (256-bit).
type Int32x8 [8]int32

// Mask32x8 is a 8-lane mask. A lane is true when its sign bit is set; masks
// produced by the backend hold all ones or all zeros per lane.
type Mask32x8 [8]int32

var (
	_ Float32v[Float32x8] = Float32x8{}
	_ Int32v[Int32x8]     = Int32x8{}
)

func (a Float32x8) Add(b Float32x8) (r Float32x8) { addF(r[:], a[:], b[:]); return }
func (a Float32x8) Sub(b Float32x8) (r Float32x8) { subF(r[:], a[:], b[:]); return }
func (a Float32x8) Mul(b Float32x8) (r Float32x8) { mulF(r[:], a[:], b[:]); return }
func (a Float32x8) Div(b Float32x8) (r Float32x8) { divF(r[:], a[:], b[:]); return }
func (a Float32x8) Neg() (r Float32x8)            { negF(r[:], a[:]); return }
func (a Float32x8) Size() int                     { return 8 }

func (a Int32x8) Add(b Int32x8) (r Int32x8)    { addI(r[:], a[:], b[:]); return }
func (a Int32x8) Sub(b Int32x8) (r Int32x8)    { subI(r[:], a[:], b[:]); return }
func (a Int32x8) Mul(b Int32x8) (r Int32x8)    { mulI(r[:], a[:], b[:]); return }
func (a Int32x8) And(b Int32x8) (r Int32x8)    { andI(r[:], a[:], b[:]); return }
func (a Int32x8) Or(b Int32x8) (r Int32x8)     { orI(r[:], a[:], b[:]); return }
func (a Int32x8) Xor(b Int32x8) (r Int32x8)    { xorI(r[:], a[:], b[:]); return }
func (a Int32x8) AndNot(b Int32x8) (r Int32x8) { andNotI(r[:], a[:], b[:]); return }
func (a Int32x8) Shl(n uint) (r Int32x8)       { shlI(r[:], a[:], n); return }
func (a Int32x8) Shr(n uint) (r Int32x8)       { shrI(r[:], a[:], n); return }
func (a Int32x8) Not() (r Int32x8)             { notI(r[:], a[:]); return }
func (a Int32x8) Neg() (r Int32x8)             { negI(r[:], a[:]); return }
func (a Int32x8) Size() int                    { return 8 }
