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

// Float32x4 holds 4 float32 lanes (128-bit), used by the SSE2, SSE41 and NEON backends.
type Float32x4 [4]float32

// Int32x4 holds 4 int32 lanes (128-bit).
type Int32x4 [4]int32

// Mask32x4 is a 4-lane mask. A lane is true when its sign bit is set; masks
// produced by the backend hold all ones or all zeros per lane.
type Mask32x4 [4]int32

var (
	_ Float32v[Float32x4] = Float32x4{}
	_ Int32v[Int32x4]     = Int32x4{}
)

func (a Float32x4) Add(b Float32x4) (r Float32x4) { addF(r[:], a[:], b[:]); return }
func (a Float32x4) Sub(b Float32x4) (r Float32x4) { subF(r[:], a[:], b[:]); return }
func (a Float32x4) Mul(b Float32x4) (r Float32x4) { mulF(r[:], a[:], b[:]); return }
func (a Float32x4) Div(b Float32x4) (r Float32x4) { divF(r[:], a[:], b[:]); return }
func (a Float32x4) Neg() (r Float32x4)            { negF(r[:], a[:]); return }
func (a Float32x4) Size() int                     { return 4 }

func (a Int32x4) Add(b Int32x4) (r Int32x4)    { addI(r[:], a[:], b[:]); return }
func (a Int32x4) Sub(b Int32x4) (r Int32x4)    { subI(r[:], a[:], b[:]); return }
func (a Int32x4) Mul(b Int32x4) (r Int32x4)    { mulI(r[:], a[:], b[:]); return }
func (a Int32x4) And(b Int32x4) (r Int32x4)    { andI(r[:], a[:], b[:]); return }
func (a Int32x4) Or(b Int32x4) (r Int32x4)     { orI(r[:], a[:], b[:]); return }
func (a Int32x4) Xor(b Int32x4) (r Int32x4)    { xorI(r[:], a[:], b[:]); return }
func (a Int32x4) AndNot(b Int32x4) (r Int32x4) { andNotI(r[:], a[:], b[:]); return }
func (a Int32x4) Shl(n uint) (r Int32x4)       { shlI(r[:], a[:], n); return }
func (a Int32x4) Shr(n uint) (r Int32x4)       { shrI(r[:], a[:], n); return }
func (a Int32x4) Not() (r Int32x4)             { notI(r[:], a[:]); return }
func (a Int32x4) Neg() (r Int32x4)             { negI(r[:], a[:]); return }
func (a Int32x4) Size() int                    { return 4 }
