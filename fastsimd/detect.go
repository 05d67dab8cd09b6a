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
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

const (
	// EnvNoSimd forces LevelScalar when set to a true value.
	EnvNoSimd = "FASTSIMD_NO_SIMD"

	// EnvMaxLevel caps detection at the named level, e.g. "sse41".
	EnvMaxLevel = "FASTSIMD_MAX_LEVEL"
)

// detection is one immutable detection result. The once guards the read;
// after it fires, features and level are never written again.
type detection struct {
	once     sync.Once
	read     func() Features
	features Features
	level    Level
}

func (d *detection) get() *detection {
	d.once.Do(func() {
		d.features = d.read()
		d.level = MaxLevel(d.features)
		log().WithFields(logrus.Fields{
			"level":    d.level.String(),
			"features": d.features.String(),
		}).Debug("fastsimd: detected capability level")
	})
	return d
}

var current atomic.Pointer[detection]

func init() {
	current.Store(&detection{read: hostFeatures})
}

// DetectFeatures returns the CPU features of the running machine, after
// environment overrides. The hardware is read at most once per process; concurrent
// first callers wait for it and all observe the same result.
func DetectFeatures() Features {
	return current.Load().get().features
}

// DetectedLevel returns the highest level that is compiled into this binary
// and supported by DetectFeatures.
func DetectedLevel() Level {
	return current.Load().get().level
}

// ResetDetection discards the cached detection result so the next query
// reads the hardware again. It is meant for tests that change the
// environment overrides.
func ResetDetection() {
	current.Store(&detection{read: hostFeatures})
}

// SetFeaturesForTesting replaces the detected features with f, bypassing the
// hardware read and the environment overrides. It returns a function that
// restores the previous state.
func SetFeaturesForTesting(f Features) (restore func()) {
	prev := current.Swap(&detection{read: func() Features { return f }})
	return func() { current.Store(prev) }
}

// hostFeatures reads the CPU and applies FASTSIMD_NO_SIMD and
// FASTSIMD_MAX_LEVEL.
func hostFeatures() Features {
	if NoSimdEnv() {
		log().WithField("env", EnvNoSimd).Debug("fastsimd: SIMD disabled by environment")
		return Features{}
	}
	f := readCPUFeatures()
	if s := os.Getenv(EnvMaxLevel); s != "" {
		max, err := ParseLevel(s)
		if err != nil {
			log().WithError(err).WithField("env", EnvMaxLevel).Warn("fastsimd: ignoring invalid level cap")
			return f
		}
		f = f.Capped(max)
	}
	return f
}

// NoSimdEnv checks if the FASTSIMD_NO_SIMD environment variable is set.
// When set, detection reports LevelScalar regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv(EnvNoSimd)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
