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
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-fastsimd/fastnoise"
	"github.com/ajroetker/go-fastsimd/fastsimd"
	"github.com/ajroetker/go-fastsimd/fastsimd/contrib/workerpool"
)

func newBenchCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a 3D grid fill at every usable level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			return runBench(cmd.OutOrStdout(), v)
		},
	}
	fs := cmd.Flags()
	addAlgorithmFlags(fs)
	fs.Int("size", 64, "grid edge length")
	fs.Int("iterations", 10, "grid fills per level")
	fs.Int("workers", 1, "worker goroutines; more than 1 splits the grid across a pool")
	fs.Bool("all-levels", false, "run every compiled level the process can execute")
	return cmd
}

// factoryFromConfig honours --all-levels. Emulated levels run anywhere, so
// they are all enabled. Native levels still need the host CPU.
func factoryFromConfig(v *viper.Viper) *fastnoise.Factory {
	if v.GetBool("all-levels") {
		return fastnoise.NewFactory(
			fastnoise.WithFeatures(everyFeature),
			fastnoise.WithLevels(runnableLevels()...),
		)
	}
	return fastnoise.NewFactory()
}

var everyFeature = fastsimd.Features{
	SSE2: true, SSE3: true, SSSE3: true, SSE41: true,
	AVX: true, AVX2: true, FMA: true,
	AVX512F: true, AVX512DQ: true, AVX512BW: true, AVX512VL: true,
	ASIMD: true,
}

// runnableLevels lists the compiled levels this process can execute.
func runnableLevels() []fastsimd.Level {
	host := fastsimd.DetectFeatures()
	return lo.Filter(fastsimd.CompiledLevels(), func(l fastsimd.Level, _ int) bool {
		return !fastsimd.IsNative(l) || fastsimd.Supports(host, l)
	})
}

// levelsFromConfig returns the single level given by --level, or every
// level f can build when it is auto.
func levelsFromConfig(v *viper.Viper, f *fastnoise.Factory, a fastnoise.Algorithm) ([]fastsimd.Level, error) {
	level, err := levelFromConfig(v)
	if err != nil {
		return nil, err
	}
	if level != fastsimd.LevelAuto {
		return []fastsimd.Level{level}, nil
	}
	return f.Available(a), nil
}

func runBench(w io.Writer, v *viper.Viper) error {
	a, err := algorithmFromConfig(v)
	if err != nil {
		return err
	}
	size, iterations := v.GetInt("size"), v.GetInt("iterations")
	if size <= 0 || iterations <= 0 {
		return fmt.Errorf("--size and --iterations must be positive")
	}

	var pool *workerpool.Pool
	if n := v.GetInt("workers"); n > 1 {
		pool = workerpool.New(n)
		defer pool.Close()
	}

	f := factoryFromConfig(v)
	levels, err := levelsFromConfig(v, f, a)
	if err != nil {
		return err
	}

	out := make([]float32, size*size*size)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "level\tlanes\tns/sample\tmin\tmax\tmean")
	for _, l := range levels {
		g, err := f.Create(a, l)
		if err != nil {
			return err
		}
		fill := func() {
			if pool != nil {
				fastnoise.ParallelUniformGrid3D(pool, g, out, 0, 0, 0, size, size, size, 0.01, 1337)
				return
			}
			g.GenUniformGrid3D(out, 0, 0, 0, size, size, size, 0.01, 1337)
		}

		fill()
		start := time.Now()
		for range iterations {
			fill()
		}
		perSample := float64(time.Since(start).Nanoseconds()) / float64(iterations*len(out))
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%g\t%g\t%g\n",
			l, l.Lanes(), perSample, vek32.Min(out), vek32.Max(out), vek32.Mean(out))
	}
	return tw.Flush()
}
