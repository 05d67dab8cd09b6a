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

import (
	"strings"

	"github.com/samber/lo"
)

// Features is a snapshot of the CPU features relevant to level selection.
// AVX and AVX-512 flags are only set when the operating system also saves the
// corresponding register state.
type Features struct {
	SSE2     bool
	SSE3     bool
	SSSE3    bool
	SSE41    bool
	AVX      bool
	AVX2     bool
	FMA      bool
	AVX512F  bool
	AVX512DQ bool
	AVX512BW bool
	AVX512VL bool
	ASIMD    bool
}

// String lists the set features, e.g. "sse2,sse3,avx2".
func (f Features) String() string {
	names := f.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

type featureFlag struct {
	name string
	on   bool
}

// Names returns the names of the set features in a stable order.
func (f Features) Names() []string {
	all := []featureFlag{
		{"sse2", f.SSE2}, {"sse3", f.SSE3}, {"ssse3", f.SSSE3}, {"sse41", f.SSE41},
		{"avx", f.AVX}, {"avx2", f.AVX2}, {"fma", f.FMA},
		{"avx512f", f.AVX512F}, {"avx512dq", f.AVX512DQ}, {"avx512bw", f.AVX512BW}, {"avx512vl", f.AVX512VL},
		{"asimd", f.ASIMD},
	}
	return lo.FilterMap(all, func(e featureFlag, _ int) (string, bool) {
		return e.name, e.on
	})
}

// Supports reports whether the features f meet the cumulative requirements
// of level l. LevelScalar is always supported.
func Supports(f Features, l Level) bool {
	switch l {
	case LevelScalar:
		return true
	case LevelSSE2:
		return f.SSE2
	case LevelSSE41:
		return Supports(f, LevelSSE2) && f.SSE3 && f.SSSE3 && f.SSE41 && (!vexOnly[LevelSSE41] || f.AVX)
	case LevelAVX2:
		return Supports(f, LevelSSE41) && f.AVX && f.AVX2 && (!useFMA || f.FMA)
	case LevelAVX512:
		return Supports(f, LevelAVX2) && f.AVX512F && f.AVX512DQ && f.AVX512BW && f.AVX512VL
	case LevelNEON:
		return f.ASIMD
	default:
		return false
	}
}

// MaxLevel returns the highest native level supported by f. Emulated levels
// are never chosen.
func MaxLevel(f Features) Level {
	for l := numLevels - 1; l > LevelScalar; l-- {
		if IsNative(l) && Supports(f, l) {
			return l
		}
	}
	return LevelScalar
}

// Capped returns a copy of f with every feature cleared that is only needed
// by levels above max in the same family. Capping at LevelScalar clears all
// features. Features of the other family are left alone.
func (f Features) Capped(max Level) Features {
	switch max {
	case LevelAuto:
		return f
	case LevelScalar:
		return Features{}
	case LevelNEON:
		return f
	}
	if max < LevelAVX512 {
		f.AVX512F, f.AVX512DQ, f.AVX512BW, f.AVX512VL = false, false, false, false
	}
	if max < LevelAVX2 {
		f.AVX2, f.FMA = false, false
		if max < LevelSSE41 || !vexOnly[LevelSSE41] {
			f.AVX = false
		}
	}
	if max < LevelSSE41 {
		f.SSE3, f.SSSE3, f.SSE41 = false, false, false
	}
	return f
}

// compiled records which levels have a backend in this binary, and native
// which of those run the level's own vector instructions. Set by init() in
// the backend files.
var compiled, native [numLevels]bool

// vexOnly marks 128-bit levels whose native backend is VEX encoded and so
// also needs AVX.
var vexOnly [numLevels]bool

func init() {
	compiled[LevelScalar] = true
	native[LevelScalar] = true
}

// IsNative reports whether the backend for l is compiled and executes the
// level's vector instructions. The other compiled levels emulate their lanes
// in Go: they reproduce the level's results but are slower than LevelScalar.
// LevelScalar is native.
func IsNative(l Level) bool {
	return IsCompiled(l) && native[l]
}

// NativeLevels returns the native levels from lowest to highest.
func NativeLevels() []Level {
	return lo.Filter(AllLevels, func(l Level, _ int) bool { return IsNative(l) })
}

// IsCompiled reports whether a backend for l is compiled into this binary.
func IsCompiled(l Level) bool {
	return l.Valid() && compiled[l]
}

// CompiledLevels returns the compiled levels from lowest to highest.
func CompiledLevels() []Level {
	return lo.Filter(AllLevels, func(l Level, _ int) bool { return IsCompiled(l) })
}
