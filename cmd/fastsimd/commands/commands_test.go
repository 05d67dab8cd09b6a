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

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-fastsimd/fastsimd"
	"github.com/ajroetker/go-fastsimd/internal/cpuinfo"
)

// run executes the command tree with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { fastsimd.SetLogger(nil) })

	cmd := NewRootCommand(viper.New())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--format", "json")
	require.NoError(t, err)
	var r cpuinfo.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, fastsimd.DetectedLevel().String(), r.Detected)
	assert.Contains(t, r.Compiled, "scalar")

	out, err = run(t, "info", "--format", "yaml")
	require.NoError(t, err)
	r = cpuinfo.Report{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, fastsimd.DetectedLevel().String(), r.Detected)

	out, err = run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Detected level:")

	_, err = run(t, "info", "--format", "xml")
	assert.Error(t, err)
}

func TestMaxLevelFlag(t *testing.T) {
	t.Cleanup(fastsimd.ResetDetection)
	t.Setenv(fastsimd.EnvMaxLevel, "")

	out, err := run(t, "--max-level", "scalar", "info", "--format", "json")
	require.NoError(t, err)
	var r cpuinfo.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "scalar", r.Detected)

	_, err = run(t, "--max-level", "avx3", "info")
	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "--algorithm", "constant", "--value", "2.5", "--size", "3", "--level", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "level: scalar")
	assert.Equal(t, 9, strings.Count(out, "2.5000"))
	assert.Contains(t, out, "min: 2.5 max: 2.5")

	out, err = run(t, "sample", "--algorithm", "positionoutput", "--multiplier", "1,0,0,0", "--dims", "3", "--size", "2", "--level", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "min: 0 max: 1")
}

func TestSampleErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"UnknownAlgorithm", []string{"sample", "--algorithm", "perlin"}},
		{"InvalidParameter", []string{"sample", "--algorithm", "checkerboard", "--cell-size", "0"}},
		{"BadDims", []string{"sample", "--dims", "5"}},
		{"BadSize", []string{"sample", "--size", "0"}},
		{"BadLevel", []string{"sample", "--level", "sse5"}},
		{"TooManyAxes", []string{"sample", "--algorithm", "positionoutput", "--offset", "1,2,3,4,5"}},
		{"BadLogLevel", []string{"--log-level", "loud", "sample"}},
		{"BadLogFormat", []string{"--log-format", "xml", "sample"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastsimd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: checkerboard\ncell-size: 2\n"), 0o644))

	out, err := run(t, "--config", path, "sample", "--size", "2", "--level", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: checkerboard")

	t.Setenv("FASTSIMD_ALGORITHM", "constant")
	t.Setenv("FASTSIMD_VALUE", "-4")
	out, err = run(t, "sample", "--size", "2", "--level", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: constant")
	assert.Contains(t, out, "min: -4 max: -4")

	// Flags win over the environment.
	out, err = run(t, "sample", "--algorithm", "white", "--size", "2", "--level", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "algorithm: white")
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--all-levels", "--size", "9", "--jobs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "white")
	assert.NotContains(t, out, "FAIL")
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--algorithm", "white", "--size", "8", "--iterations", "1", "--level", "scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "ns/sample")
	assert.Contains(t, out, "scalar")

	out, err = run(t, "bench", "--size", "8", "--iterations", "1", "--workers", "2", "--all-levels")
	require.NoError(t, err)
	for _, l := range runnableLevels() {
		assert.Contains(t, out, l.String())
	}

	_, err = run(t, "bench", "--iterations", "0")
	assert.Error(t, err)
}

func TestBindNamed(t *testing.T) {
	v := viper.New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "warn", "")
	require.NoError(t, bindNamed(v, fs, "log-level"))
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))
	assert.Equal(t, "debug", v.GetString("log-level"))

	err := bindNamed(v, fs, "log-level", "no-such-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-flag")
}

func TestRootFlagsDefined(t *testing.T) {
	pf := NewRootCommand(viper.New()).PersistentFlags()
	for _, name := range rootFlags {
		assert.NotNil(t, pf.Lookup(name), name)
	}
}

func TestRunnableLevels(t *testing.T) {
	levels := runnableLevels()
	assert.Contains(t, levels, fastsimd.LevelScalar)
	host := fastsimd.DetectFeatures()
	for _, l := range levels {
		if fastsimd.IsNative(l) {
			assert.True(t, fastsimd.Supports(host, l), "native %s unsupported by host", l)
		}
	}
}

func TestCompareGrids(t *testing.T) {
	want := []float32{1, 2, 3}
	assert.Zero(t, compareGrids(want, []float32{1, 2, 3}, true).bad)
	assert.Equal(t, 1, compareGrids(want, []float32{1, 2, 3.0001}, true).bad)
	assert.Zero(t, compareGrids(want, []float32{1, 2, 3.0001}, false).bad)
	assert.Equal(t, 1, compareGrids(want, []float32{1, 2, 3.1}, false).bad)
}
