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
	"context"
	"fmt"
	"io"
	"math"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-fastsimd/fastnoise"
	"github.com/ajroetker/go-fastsimd/fastsimd"
)

func newVerifyCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every level agrees with the scalar backend",
		Long: `Fill the same grid with each basic algorithm at every usable level and
compare against the scalar backend. Hash based algorithms must match
exactly; algorithms using estimates or fused multiply-add must match within
the documented tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			return runVerify(cmd.Context(), cmd.OutOrStdout(), v)
		},
	}
	fs := cmd.Flags()
	fs.Int("size", 33, "grid edge length")
	fs.Int("jobs", 0, "concurrent checks (0 means one per level)")
	fs.Bool("all-levels", false, "check every compiled level the process can execute")
	return cmd
}

// verifyAlgorithms lists the algorithms checked and whether their output
// must be bit-identical across levels.
var verifyAlgorithms = []struct {
	a     fastnoise.Algorithm
	exact bool
}{
	{fastnoise.Constant{Value: 0.5}, true},
	{fastnoise.White{}, true},
	{fastnoise.Checkerboard{Size: 3}, true},
	{fastnoise.PositionOutput{Multiplier: [4]float32{1, 2, 3, 4}, Offset: [4]float32{-1, 0, 1, 2}}, true},
	{fastnoise.DistanceToOrigin{Distance: fastnoise.Manhattan}, true},
	{fastnoise.DistanceToOrigin{Distance: fastnoise.MaxAxis}, true},
	{fastnoise.SineWave{Scale: 4}, false},
	{fastnoise.DistanceToOrigin{Distance: fastnoise.Euclidean}, false},
	{fastnoise.DistanceToOrigin{Distance: fastnoise.EuclideanSquared}, false},
	{fastnoise.DistanceToOrigin{Distance: fastnoise.Hybrid}, false},
}

type verifyResult struct {
	algorithm fastnoise.AlgorithmID
	level     fastsimd.Level
	worst     float64
	bad       int
}

func runVerify(ctx context.Context, w io.Writer, v *viper.Viper) error {
	size := v.GetInt("size")
	if size <= 0 {
		return fmt.Errorf("--size must be positive, got %d", size)
	}
	f := factoryFromConfig(v)

	var results []verifyResult
	for _, va := range verifyAlgorithms {
		levels := f.Available(va.a)
		want, err := fillGrid(f, va.a, fastsimd.LevelScalar, size)
		if err != nil {
			return err
		}

		got := make([]verifyResult, len(levels))
		g, _ := errgroup.WithContext(ctx)
		if jobs := v.GetInt("jobs"); jobs > 0 {
			g.SetLimit(jobs)
		}
		for i, l := range levels {
			g.Go(func() error {
				out, err := fillGrid(f, va.a, l, size)
				if err != nil {
					return err
				}
				got[i] = compareGrids(want, out, va.exact)
				got[i].algorithm, got[i].level = va.a.ID(), l
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		results = append(results, got...)
	}

	for _, r := range results {
		status := "ok"
		if r.bad > 0 {
			status = fmt.Sprintf("FAIL (%d samples)", r.bad)
		}
		fmt.Fprintf(w, "%-18s %-7s max rel diff %.3g  %s\n", r.algorithm, r.level, r.worst, status)
	}

	failed := lo.CountBy(results, func(r verifyResult) bool { return r.bad > 0 })
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

func fillGrid(f *fastnoise.Factory, a fastnoise.Algorithm, l fastsimd.Level, size int) ([]float32, error) {
	g, err := f.Create(a, l)
	if err != nil {
		return nil, err
	}
	out := make([]float32, size*size*size)
	half := int32(size / 2)
	g.GenUniformGrid3D(out, -half, -half, -half, size, size, size, 0.37, 1337)
	return out, nil
}

// compareGrids counts samples that differ beyond what the level contract
// allows.
func compareGrids(want, got []float32, exact bool) verifyResult {
	var r verifyResult
	for i := range want {
		a, b := float64(want[i]), float64(got[i])
		diff := math.Abs(a - b)
		rel := diff / max(math.Abs(a), math.Abs(b), 1e-30)
		if diff != 0 {
			r.worst = max(r.worst, rel)
		}
		switch {
		case exact && diff != 0:
			r.bad++
		case !exact && diff > 1e-5 && rel > 2*fastsimd.ApproxRelTolerance:
			r.bad++
		}
	}
	return r
}
