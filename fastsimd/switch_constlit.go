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

//go:build !fastsimd_genconst

package fastsimd

const generateConstants = false

// Bit-pattern constants, written as literals.
var (
	allOnes32 uint32 = 0xFFFFFFFF
	signBit32 uint32 = 0x80000000
	absMask32 uint32 = 0x7FFFFFFF
)
