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
	"fmt"
	"strings"
)

// Level identifies an instruction-set capability level. Levels are totally
// ordered: a higher value is preferred when it is both compiled in and
// supported by the running CPU.
type Level int8

// LevelAuto requests the highest level that is available.
const LevelAuto Level = -1

const (
	// LevelScalar processes one lane at a time in portable Go.
	// It is always compiled and always supported.
	LevelScalar Level = iota

	// LevelSSE2 is the x86-64 baseline (128-bit, 4 lanes).
	LevelSSE2

	// LevelSSE41 adds SSE3, SSSE3 and SSE4.1 (128-bit, 4 lanes).
	LevelSSE41

	// LevelAVX2 adds AVX, AVX2 and FMA (256-bit, 8 lanes).
	LevelAVX2

	// LevelAVX512 adds AVX-512 F, DQ, BW and VL (512-bit, 16 lanes).
	LevelAVX512

	// LevelNEON is ARM Advanced SIMD (128-bit, 4 lanes).
	LevelNEON

	numLevels
)

// MaxLanes is the widest lane count of any level.
const MaxLanes = 16

// AllLevels lists every concrete level from lowest to highest.
var AllLevels = []Level{LevelScalar, LevelSSE2, LevelSSE41, LevelAVX2, LevelAVX512, LevelNEON}

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelAuto:
		return "auto"
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelSSE41:
		return "sse41"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// Valid reports whether l is a concrete level (not LevelAuto).
func (l Level) Valid() bool {
	return l >= LevelScalar && l < numLevels
}

// Lanes returns the number of float32 lanes processed per vector at level l.
func (l Level) Lanes() int {
	switch l {
	case LevelSSE2, LevelSSE41, LevelNEON:
		return 4
	case LevelAVX2:
		return 8
	case LevelAVX512:
		return 16
	default:
		return 1
	}
}

// Width returns the vector register width in bytes at level l.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func (l Level) Width() int {
	return l.Lanes() * 4
}

// Family groups levels whose requirements are cumulative.
type Family uint8

const (
	// FamilyPortable contains only LevelScalar.
	FamilyPortable Family = iota
	// FamilyX86 contains SSE2 through AVX512.
	FamilyX86
	// FamilyARM contains NEON.
	FamilyARM
)

// Family returns the family of l.
func (l Level) Family() Family {
	switch l {
	case LevelSSE2, LevelSSE41, LevelAVX2, LevelAVX512:
		return FamilyX86
	case LevelNEON:
		return FamilyARM
	default:
		return FamilyPortable
	}
}

// ParseLevel parses a level name as printed by Level.String.
// Matching is case-insensitive; "sse4.1" and "sse4_1" are accepted for LevelSSE41.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "auto", "":
		return LevelAuto, nil
	case "scalar", "none", "fallback":
		return LevelScalar, nil
	case "sse2":
		return LevelSSE2, nil
	case "sse41", "sse4.1", "sse4_1":
		return LevelSSE41, nil
	case "avx2":
		return LevelAVX2, nil
	case "avx512":
		return LevelAVX512, nil
	case "neon", "asimd":
		return LevelNEON, nil
	}
	return LevelAuto, fmt.Errorf("fastsimd: unknown level %q", s)
}
