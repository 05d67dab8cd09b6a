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

// UseFMA reports whether MulAddF is fused on levels with FMA support.
// It is false when built with the fastsimd_nofma tag.
func UseFMA() bool {
	return useFMA
}

// GenerateConstants reports whether bit-pattern constants are derived at
// init time (fastsimd_genconst tag) rather than written as literals.
func GenerateConstants() bool {
	return generateConstants
}
