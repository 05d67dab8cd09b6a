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

// Package fastnoise builds noise generators on top of the fastsimd backends.
//
// An algorithm is written once as a generic kernel over the fastsimd.Backend
// contract and instantiated for every compiled capability level. Create picks
// the level at run time and returns a level-erased Generator:
//
//	gen, err := fastnoise.Create(fastnoise.White{}, fastsimd.LevelAuto)
//	if err != nil {
//	    return err
//	}
//	out := make([]float32, 64*64)
//	mm := gen.GenUniformGrid2D(out, 0, 0, 64, 64, 0.02, 1337)
//
// This package ships the basic generators (Constant, White, Checkerboard,
// SineWave, PositionOutput and DistanceToOrigin) and the hashing, gradient
// and interpolation helpers in Kit that coherent noise is built from.
package fastnoise
