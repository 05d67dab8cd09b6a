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

package fastnoise

import (
	"fmt"
	"math"
	"strings"
)

// AlgorithmID identifies an algorithm family in the registry.
type AlgorithmID uint8

const (
	AlgorithmConstant AlgorithmID = iota + 1
	AlgorithmWhite
	AlgorithmCheckerboard
	AlgorithmSineWave
	AlgorithmPositionOutput
	AlgorithmDistanceToOrigin
)

var algorithmNames = map[AlgorithmID]string{
	AlgorithmConstant:         "constant",
	AlgorithmWhite:            "white",
	AlgorithmCheckerboard:     "checkerboard",
	AlgorithmSineWave:         "sinewave",
	AlgorithmPositionOutput:   "positionoutput",
	AlgorithmDistanceToOrigin: "distancetoorigin",
}

func (id AlgorithmID) String() string {
	if name, ok := algorithmNames[id]; ok {
		return name
	}
	return fmt.Sprintf("algorithm(%d)", uint8(id))
}

// ParseAlgorithmID parses a name printed by AlgorithmID.String. Case,
// dashes and underscores are ignored.
func ParseAlgorithmID(s string) (AlgorithmID, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for id, name := range algorithmNames {
		if name == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Algorithm is an algorithm with its parameters. Values are immutable; a
// Generator built from one keeps a copy.
type Algorithm interface {
	ID() AlgorithmID
	// Validate reports parameters that are out of range with an error
	// wrapping ErrInvalidParameter.
	Validate() error
}

// Constant outputs Value everywhere.
type Constant struct {
	Value float32
}

func (Constant) ID() AlgorithmID { return AlgorithmConstant }

func (c Constant) Validate() error {
	if isNaN32(c.Value) {
		return invalidParam("constant value is NaN")
	}
	return nil
}

// White outputs uncorrelated values in [-1, 1] hashed from the bit pattern
// of each coordinate and the seed.
type White struct{}

func (White) ID() AlgorithmID { return AlgorithmWhite }
func (White) Validate() error { return nil }

// Checkerboard alternates between 1 and -1 in cells of Size units.
type Checkerboard struct {
	Size float32
}

func (Checkerboard) ID() AlgorithmID { return AlgorithmCheckerboard }

func (c Checkerboard) Validate() error {
	if !(c.Size > 0) || math.IsInf(float64(c.Size), 0) {
		return invalidParam("checkerboard size must be positive and finite, got %v", c.Size)
	}
	return nil
}

// SineWave outputs the product of sin(p / Scale) over every axis p.
type SineWave struct {
	Scale float32
}

func (SineWave) ID() AlgorithmID { return AlgorithmSineWave }

func (s SineWave) Validate() error {
	if !(s.Scale > 0) || math.IsInf(float64(s.Scale), 0) {
		return invalidParam("sine wave scale must be positive and finite, got %v", s.Scale)
	}
	return nil
}

// PositionOutput outputs the sum over axes of (p + Offset[axis]) *
// Multiplier[axis], with axes ordered x, y, z, w.
type PositionOutput struct {
	Multiplier [4]float32
	Offset     [4]float32
}

func (PositionOutput) ID() AlgorithmID { return AlgorithmPositionOutput }

func (p PositionOutput) Validate() error {
	for i := range 4 {
		if isNaN32(p.Multiplier[i]) || isNaN32(p.Offset[i]) {
			return invalidParam("position output axis %d has a NaN parameter", i)
		}
	}
	return nil
}

// DistanceToOrigin outputs the distance of the sample position from the
// origin under Distance.
type DistanceToOrigin struct {
	Distance DistanceFunction
}

func (DistanceToOrigin) ID() AlgorithmID { return AlgorithmDistanceToOrigin }

func (d DistanceToOrigin) Validate() error {
	if !d.Distance.valid() {
		return invalidParam("unknown distance function %d", uint8(d.Distance))
	}
	return nil
}

// DistanceFunction selects the metric used by the CalcDistance helpers.
type DistanceFunction uint8

const (
	Euclidean DistanceFunction = iota
	EuclideanSquared
	Manhattan
	Hybrid
	MaxAxis
)

var distanceNames = []string{"euclidean", "euclideansquared", "manhattan", "hybrid", "maxaxis"}

func (d DistanceFunction) valid() bool { return int(d) < len(distanceNames) }

func (d DistanceFunction) String() string {
	if d.valid() {
		return distanceNames[d]
	}
	return fmt.Sprintf("distance(%d)", uint8(d))
}

// ParseDistanceFunction parses a name printed by DistanceFunction.String.
func ParseDistanceFunction(s string) (DistanceFunction, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(s))
	for i, name := range distanceNames {
		if name == key {
			return DistanceFunction(i), nil
		}
	}
	return 0, invalidParam("unknown distance function %q", s)
}

func isNaN32(f float32) bool { return f != f }
