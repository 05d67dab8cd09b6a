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

// Package cpuinfo collects a CPU report for the fastsimd command. It puts
// the features fastsimd detects next to an independent CPUID reading so the
// two can be compared.
package cpuinfo

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// Report is a snapshot of the host CPU and the fastsimd view of it.
type Report struct {
	GOOS   string `json:"goos" yaml:"goos"`
	GOARCH string `json:"goarch" yaml:"goarch"`

	Brand         string `json:"brand" yaml:"brand"`
	Vendor        string `json:"vendor" yaml:"vendor"`
	PhysicalCores int    `json:"physical_cores" yaml:"physical_cores"`
	LogicalCores  int    `json:"logical_cores" yaml:"logical_cores"`
	CacheL1D      int    `json:"cache_l1d" yaml:"cache_l1d"`
	CacheL2       int    `json:"cache_l2" yaml:"cache_l2"`
	CacheL3       int    `json:"cache_l3" yaml:"cache_l3"`
	OSXSAVE       bool   `json:"osxsave" yaml:"osxsave"`

	Detected string   `json:"detected_level" yaml:"detected_level"`
	Compiled []string `json:"compiled_levels" yaml:"compiled_levels"`
	// Native lists the compiled levels backed by vector instructions. The
	// rest run as lane loops and are never chosen automatically.
	Native        []string `json:"native_levels" yaml:"native_levels"`
	Features      []string `json:"features" yaml:"features"`
	CPUIDFeatures []string `json:"cpuid_features" yaml:"cpuid_features"`
	// Mismatches lists features where fastsimd and CPUID disagree.
	Mismatches []string `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`

	UseFMA            bool `json:"use_fma" yaml:"use_fma"`
	GenerateConstants bool `json:"generate_constants" yaml:"generate_constants"`
	NoSimdEnv         bool `json:"no_simd_env" yaml:"no_simd_env"`

	// VekAccelerated reports whether the vek library found SIMD support.
	VekAccelerated bool `json:"vek_accelerated" yaml:"vek_accelerated"`
}

// Collect builds a Report for the running process.
func Collect() Report {
	f := fastsimd.DetectFeatures()
	r := Report{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		Brand:         cpuid.CPU.BrandName,
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheL1D:      cpuid.CPU.Cache.L1D,
		CacheL2:       cpuid.CPU.Cache.L2,
		CacheL3:       cpuid.CPU.Cache.L3,
		OSXSAVE:       cpu.X86.HasOSXSAVE,

		Detected:      fastsimd.DetectedLevel().String(),
		Compiled:      lo.Map(fastsimd.CompiledLevels(), func(l fastsimd.Level, _ int) string { return l.String() }),
		Native:        lo.Map(fastsimd.NativeLevels(), func(l fastsimd.Level, _ int) string { return l.String() }),
		Features:      f.Names(),
		CPUIDFeatures: cpuid.CPU.FeatureSet(),

		UseFMA:            fastsimd.UseFMA(),
		GenerateConstants: fastsimd.GenerateConstants(),
		NoSimdEnv:         fastsimd.NoSimdEnv(),
		VekAccelerated:    vek32.Info().Acceleration,
	}
	r.Mismatches = Compare(f, cpuidFeatures())
	return r
}

// cpuidFeatures reads the fastsimd feature set through CPUID.
func cpuidFeatures() fastsimd.Features {
	has := func(id cpuid.FeatureID) bool { return cpuid.CPU.Supports(id) }
	return fastsimd.Features{
		SSE2:     has(cpuid.SSE2),
		SSE3:     has(cpuid.SSE3),
		SSSE3:    has(cpuid.SSSE3),
		SSE41:    has(cpuid.SSE4),
		AVX:      has(cpuid.AVX),
		AVX2:     has(cpuid.AVX2),
		FMA:      has(cpuid.FMA3),
		AVX512F:  has(cpuid.AVX512F),
		AVX512DQ: has(cpuid.AVX512DQ),
		AVX512BW: has(cpuid.AVX512BW),
		AVX512VL: has(cpuid.AVX512VL),
		ASIMD:    has(cpuid.ASIMD),
	}
}

// Compare returns the names of features set in exactly one of a and b.
// Environment overrides clear detected features, so mismatches are expected
// when FASTSIMD_NO_SIMD or FASTSIMD_MAX_LEVEL is set.
func Compare(a, b fastsimd.Features) []string {
	an, bn := a.Names(), b.Names()
	left, right := lo.Difference(an, bn)
	return append(left, right...)
}
