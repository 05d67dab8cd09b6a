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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-fastsimd/fastnoise"
)

func newSampleCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a small grid of generator output",
		Long: `Fill a uniform grid with the selected algorithm and print it.

2D grids print one row per line. Higher dimensions print one 2D slice per
remaining coordinate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			return runSample(cmd.OutOrStdout(), v)
		},
	}
	fs := cmd.Flags()
	addAlgorithmFlags(fs)
	fs.Int("dims", 2, "grid dimensions (2, 3 or 4)")
	fs.Int("size", 8, "grid edge length")
	fs.Float32("frequency", 1, "coordinate frequency")
	fs.Int32("seed", 1337, "seed")
	fs.Int32("start", 0, "grid start on every axis")
	return cmd
}

func runSample(w io.Writer, v *viper.Viper) error {
	a, err := algorithmFromConfig(v)
	if err != nil {
		return err
	}
	level, err := levelFromConfig(v)
	if err != nil {
		return err
	}
	g, err := fastnoise.Create(a, level)
	if err != nil {
		return err
	}

	dims, size := v.GetInt("dims"), v.GetInt("size")
	if size <= 0 {
		return fmt.Errorf("--size must be positive, got %d", size)
	}
	freq, seed, start := float32(v.GetFloat64("frequency")), v.GetInt32("seed"), v.GetInt32("start")

	var out []float32
	var mm fastnoise.MinMax
	switch dims {
	case 2:
		out = make([]float32, size*size)
		mm = g.GenUniformGrid2D(out, start, start, size, size, freq, seed)
	case 3:
		out = make([]float32, size*size*size)
		mm = g.GenUniformGrid3D(out, start, start, start, size, size, size, freq, seed)
	case 4:
		out = make([]float32, size*size*size*size)
		mm = g.GenUniformGrid4D(out, start, start, start, start, size, size, size, size, freq, seed)
	default:
		return fmt.Errorf("--dims must be 2, 3 or 4, got %d", dims)
	}

	fmt.Fprintf(w, "algorithm: %s\nlevel: %s\n", a.ID(), g.Level())
	for i := 0; i < len(out); i += size {
		if i > 0 && i%(size*size) == 0 {
			fmt.Fprintln(w)
		}
		for j, val := range out[i : i+size] {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%8.4f", val)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "min: %g max: %g\n", mm.Min, mm.Max)
	return nil
}
