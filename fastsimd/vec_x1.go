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

// Float32x1 is a single float32 lane, used by the Scalar backend.
type Float32x1 float32

// Int32x1 is a single int32 lane, used by the Scalar backend.
type Int32x1 int32

// Mask32x1 is a single-lane mask.
type Mask32x1 bool

var (
	_ Float32v[Float32x1] = Float32x1(0)
	_ Int32v[Int32x1]     = Int32x1(0)
)

func (a Float32x1) Add(b Float32x1) Float32x1 { return a + b }
func (a Float32x1) Sub(b Float32x1) Float32x1 { return a - b }
func (a Float32x1) Mul(b Float32x1) Float32x1 { return Float32x1(mulLane(float32(a), float32(b))) }
func (a Float32x1) Div(b Float32x1) Float32x1 { return a / b }
func (a Float32x1) Neg() Float32x1            { return Float32x1(negLane(float32(a))) }
func (a Float32x1) Size() int                 { return 1 }

func (a Int32x1) Add(b Int32x1) Int32x1    { return a + b }
func (a Int32x1) Sub(b Int32x1) Int32x1    { return a - b }
func (a Int32x1) Mul(b Int32x1) Int32x1    { return a * b }
func (a Int32x1) And(b Int32x1) Int32x1    { return a & b }
func (a Int32x1) Or(b Int32x1) Int32x1     { return a | b }
func (a Int32x1) Xor(b Int32x1) Int32x1    { return a ^ b }
func (a Int32x1) AndNot(b Int32x1) Int32x1 { return a &^ b }
func (a Int32x1) Shl(n uint) Int32x1       { return a << n }
func (a Int32x1) Shr(n uint) Int32x1       { return a >> n }
func (a Int32x1) Not() Int32x1             { return ^a }
func (a Int32x1) Neg() Int32x1             { return -a }
func (a Int32x1) Size() int                { return 1 }
