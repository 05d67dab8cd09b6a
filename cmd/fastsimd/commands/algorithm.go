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
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-fastsimd/fastnoise"
	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// addAlgorithmFlags registers the flags that select and parameterise an
// algorithm.
func addAlgorithmFlags(fs *pflag.FlagSet) {
	fs.String("algorithm", "white", "algorithm (constant, white, checkerboard, sinewave, positionoutput, distancetoorigin)")
	fs.Float32("value", 1, "constant: output value")
	fs.Float32("cell-size", 1, "checkerboard: cell size")
	fs.Float32("scale", 1, "sinewave: wavelength scale")
	fs.String("distance", "euclidean", "distancetoorigin: distance function")
	fs.String("multiplier", "1,1,1,1", "positionoutput: comma-separated per-axis multipliers")
	fs.String("offset", "0,0,0,0", "positionoutput: comma-separated per-axis offsets")
	fs.String("level", "auto", "capability level")
}

// algorithmFromConfig builds the algorithm selected by the flags.
func algorithmFromConfig(v *viper.Viper) (fastnoise.Algorithm, error) {
	id, err := fastnoise.ParseAlgorithmID(v.GetString("algorithm"))
	if err != nil {
		return nil, err
	}
	switch id {
	case fastnoise.AlgorithmConstant:
		return fastnoise.Constant{Value: float32(v.GetFloat64("value"))}, nil
	case fastnoise.AlgorithmWhite:
		return fastnoise.White{}, nil
	case fastnoise.AlgorithmCheckerboard:
		return fastnoise.Checkerboard{Size: float32(v.GetFloat64("cell-size"))}, nil
	case fastnoise.AlgorithmSineWave:
		return fastnoise.SineWave{Scale: float32(v.GetFloat64("scale"))}, nil
	case fastnoise.AlgorithmPositionOutput:
		var p fastnoise.PositionOutput
		if err := axes(v, "multiplier", &p.Multiplier); err != nil {
			return nil, err
		}
		if err := axes(v, "offset", &p.Offset); err != nil {
			return nil, err
		}
		return p, nil
	case fastnoise.AlgorithmDistanceToOrigin:
		d, err := fastnoise.ParseDistanceFunction(v.GetString("distance"))
		if err != nil {
			return nil, err
		}
		return fastnoise.DistanceToOrigin{Distance: d}, nil
	}
	return nil, fmt.Errorf("%w: %s", fastnoise.ErrUnknownAlgorithm, id)
}

// axes parses up to four comma-separated per-axis values.
func axes(v *viper.Viper, key string, dst *[4]float32) error {
	parts := strings.Split(v.GetString(key), ",")
	if len(parts) > 4 {
		return fmt.Errorf("--%s takes at most 4 values, got %d", key, len(parts))
	}
	for i, s := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return fmt.Errorf("--%s: %w", key, err)
		}
		dst[i] = float32(f)
	}
	return nil
}

func levelFromConfig(v *viper.Viper) (fastsimd.Level, error) {
	return fastsimd.ParseLevel(v.GetString("level"))
}
