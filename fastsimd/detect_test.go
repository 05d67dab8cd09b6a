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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	featuresSSE2   = Features{SSE2: true}
	featuresSSE41  = Features{SSE2: true, SSE3: true, SSSE3: true, SSE41: true}
	featuresAVX2   = Features{SSE2: true, SSE3: true, SSSE3: true, SSE41: true, AVX: true, AVX2: true, FMA: true}
	featuresAVX512 = Features{SSE2: true, SSE3: true, SSSE3: true, SSE41: true, AVX: true, AVX2: true, FMA: true,
		AVX512F: true, AVX512DQ: true, AVX512BW: true, AVX512VL: true}
	featuresNEON = Features{ASIMD: true}
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		lanes int
	}{
		{LevelScalar, "scalar", 1},
		{LevelSSE2, "sse2", 4},
		{LevelSSE41, "sse41", 4},
		{LevelAVX2, "avx2", 8},
		{LevelAVX512, "avx512", 16},
		{LevelNEON, "neon", 4},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.level.Lanes(); got != tt.lanes {
			t.Errorf("%v.Lanes() = %d, want %d", tt.level, got, tt.lanes)
		}
		if got := tt.level.Width(); got != tt.lanes*4 {
			t.Errorf("%v.Width() = %d, want %d", tt.level, got, tt.lanes*4)
		}
		parsed, err := ParseLevel(tt.name)
		if err != nil || parsed != tt.level {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.name, parsed, err)
		}
	}
	assert.Equal(t, "auto", LevelAuto.String())
	assert.False(t, LevelAuto.Valid())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"AVX2", LevelAVX2, false},
		{" sse4.1 ", LevelSSE41, false},
		{"sse4_1", LevelSSE41, false},
		{"auto", LevelAuto, false},
		{"", LevelAuto, false},
		{"asimd", LevelNEON, false},
		{"fallback", LevelScalar, false},
		{"sve", LevelAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSupportsIsCumulative(t *testing.T) {
	assert.True(t, Supports(Features{}, LevelScalar))
	assert.False(t, Supports(Features{}, LevelSSE2))
	assert.True(t, Supports(featuresAVX512, LevelSSE2))
	assert.True(t, Supports(featuresAVX512, LevelAVX512))
	assert.False(t, Supports(featuresAVX512, LevelNEON))

	// AVX2 without SSE4.1 is not a valid AVX2 level.
	noSSE41 := featuresAVX2
	noSSE41.SSE41 = false
	assert.False(t, Supports(noSSE41, LevelAVX2))

	noFMA := featuresAVX2
	noFMA.FMA = false
	assert.Equal(t, !UseFMA(), Supports(noFMA, LevelAVX2))

	partial := featuresAVX512
	partial.AVX512VL = false
	assert.False(t, Supports(partial, LevelAVX512))
	assert.True(t, Supports(partial, LevelAVX2))
}

func TestMaxLevel(t *testing.T) {
	tests := []struct {
		f    Features
		want Level
	}{
		{Features{}, LevelScalar},
		{featuresSSE2, LevelSSE2},
		{featuresSSE41, LevelSSE41},
		{featuresAVX2, LevelAVX2},
		{featuresAVX512, LevelAVX512},
		{featuresNEON, LevelNEON},
	}
	for _, tt := range tests {
		got := MaxLevel(tt.f)
		assert.True(t, IsNative(got), "%s picked emulated %s", tt.f, got)
		if IsNative(tt.want) && Supports(tt.f, tt.want) {
			assert.Equal(t, tt.want, got, tt.f.String())
		}
	}
}

func TestMaxLevelSkipsEmulated(t *testing.T) {
	all := featuresAVX512
	all.ASIMD = true
	for _, l := range CompiledLevels() {
		if !IsNative(l) {
			assert.NotEqual(t, l, MaxLevel(all), "emulated %s chosen", l)
		}
	}
	native := NativeLevels()
	require.NotEmpty(t, native)
	assert.Equal(t, LevelScalar, native[0])
	assert.Subset(t, CompiledLevels(), native)
}

func TestCapped(t *testing.T) {
	sse41 := featuresSSE41
	sse41.AVX = vexOnly[LevelSSE41]
	assert.Equal(t, sse41, featuresAVX512.Capped(LevelSSE41))
	assert.Equal(t, Supports(featuresAVX512, LevelSSE41), Supports(featuresAVX512.Capped(LevelSSE41), LevelSSE41))
	assert.Equal(t, featuresAVX2, featuresAVX512.Capped(LevelAVX2))
	assert.Equal(t, Features{}, featuresAVX512.Capped(LevelScalar))
	assert.Equal(t, featuresNEON, featuresNEON.Capped(LevelSSE2))
	assert.Equal(t, featuresAVX512, featuresAVX512.Capped(LevelAuto))
}

func TestCompiledLevels(t *testing.T) {
	levels := CompiledLevels()
	require.NotEmpty(t, levels)
	assert.Equal(t, LevelScalar, levels[0])
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
	assert.False(t, IsCompiled(LevelAuto))
}

func TestSetFeaturesForTesting(t *testing.T) {
	restore := SetFeaturesForTesting(featuresSSE41)
	assert.Equal(t, featuresSSE41, DetectFeatures())
	assert.Equal(t, MaxLevel(featuresSSE41), DetectedLevel())
	restore()
	assert.Equal(t, MaxLevel(DetectFeatures()), DetectedLevel())
}

func TestDetectionConcurrentIdempotent(t *testing.T) {
	ResetDetection()
	const n = 64
	levels := make([]Level, n)
	features := make([]Features, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			levels[i] = DetectedLevel()
			features[i] = DetectFeatures()
		}()
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Equal(t, levels[0], levels[i])
		assert.Equal(t, features[0], features[i])
	}
}

func TestEnvNoSimd(t *testing.T) {
	t.Cleanup(ResetDetection)
	t.Setenv(EnvNoSimd, "1")
	ResetDetection()

	assert.True(t, NoSimdEnv())
	assert.Equal(t, LevelScalar, DetectedLevel())
	assert.Equal(t, Features{}, DetectFeatures())
}

func TestEnvNoSimdFalse(t *testing.T) {
	t.Setenv(EnvNoSimd, "false")
	assert.False(t, NoSimdEnv())
}

func TestEnvMaxLevel(t *testing.T) {
	t.Cleanup(ResetDetection)
	t.Setenv(EnvMaxLevel, "sse2")
	ResetDetection()

	got := DetectedLevel()
	assert.Contains(t, []Level{LevelScalar, LevelSSE2, LevelNEON}, got)
	assert.False(t, DetectFeatures().AVX2)
}

func TestEnvMaxLevelInvalid(t *testing.T) {
	t.Cleanup(ResetDetection)
	t.Setenv(EnvMaxLevel, "bogus")
	ResetDetection()

	assert.Equal(t, MaxLevel(readCPUFeatures()), DetectedLevel())
}

func TestFeaturesString(t *testing.T) {
	assert.Equal(t, "none", Features{}.String())
	assert.Equal(t, "sse2,sse3,ssse3,sse41", featuresSSE41.String())
	assert.Equal(t, []string{"asimd"}, featuresNEON.Names())
}
