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

//go:generate go run ../cmd/fsgen -out .

package fastnoise

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// levelTable maps each algorithm to its constructor at one level.
type levelTable map[AlgorithmID]func(Algorithm) Generator

// registry holds one table per compiled level. It is written only by init
// functions in the generated dispatch files.
var registry = map[fastsimd.Level]levelTable{}

func registerLevel(l fastsimd.Level, t levelTable) {
	if _, dup := registry[l]; dup {
		panic(fmt.Sprintf("fastnoise: level %s registered twice", l))
	}
	registry[l] = t
}

// instantiate builds the constructor table for backend b.
func instantiate[F fastsimd.Float32v[F], I fastsimd.Int32v[I], M any, B fastsimd.Backend[F, I, M]](b B) levelTable {
	kit := Kit[F, I, M, B]{B: b}
	return levelTable{
		AlgorithmConstant: func(a Algorithm) Generator {
			c := a.(Constant)
			return newGenerator[F, I, M](b, a, constantKernel[F, I]{value: b.SetF(c.Value)})
		},
		AlgorithmWhite: func(a Algorithm) Generator {
			return newGenerator[F, I, M](b, a, whiteKernel[F, I, M, B]{kit})
		},
		AlgorithmCheckerboard: func(a Algorithm) Generator {
			c := a.(Checkerboard)
			return newGenerator[F, I, M](b, a, checkerboardKernel[F, I, M, B]{kit, b.SetF(1 / c.Size)})
		},
		AlgorithmSineWave: func(a Algorithm) Generator {
			s := a.(SineWave)
			return newGenerator[F, I, M](b, a, sineWaveKernel[F, I, M, B]{kit, b.SetF(1 / s.Scale)})
		},
		AlgorithmPositionOutput: func(a Algorithm) Generator {
			p := a.(PositionOutput)
			var k positionOutputKernel[F, I]
			for i := range 4 {
				k.mult[i] = b.SetF(p.Multiplier[i])
				k.offset[i] = b.SetF(p.Offset[i])
			}
			return newGenerator[F, I, M](b, a, k)
		},
		AlgorithmDistanceToOrigin: func(a Algorithm) Generator {
			d := a.(DistanceToOrigin)
			return newGenerator[F, I, M](b, a, distanceKernel[F, I, M, B]{kit, d.Distance})
		},
	}
}

// Factory creates generators. The zero configuration allows every compiled
// level and uses the detected CPU features. A Factory is immutable and safe
// for concurrent use.
type Factory struct {
	allowed  []fastsimd.Level
	features *fastsimd.Features
	logger   logrus.FieldLogger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLevels restricts the factory to the given levels.
func WithLevels(levels ...fastsimd.Level) Option {
	return func(f *Factory) {
		f.allowed = slices.Clone(levels)
	}
}

// WithFeatures makes the factory use features instead of the detected ones.
func WithFeatures(features fastsimd.Features) Option {
	return func(f *Factory) {
		f.features = &features
	}
}

// WithLogger sets the logger refusals are reported to. The default is
// fastsimd.Logger() at the time of each call.
func WithLogger(l logrus.FieldLogger) Option {
	return func(f *Factory) {
		f.logger = l
	}
}

// NewFactory returns a Factory configured by opts.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFactory = NewFactory()

// Create builds a generator for a using the default factory.
func Create(a Algorithm, level fastsimd.Level) (Generator, error) {
	return defaultFactory.Create(a, level)
}

// Available lists the levels at which the default factory can build a,
// lowest first.
func Available(a Algorithm) []fastsimd.Level {
	return defaultFactory.Available(a)
}

func (f *Factory) log() logrus.FieldLogger {
	if f.logger != nil {
		return f.logger
	}
	return fastsimd.Logger()
}

func (f *Factory) hostFeatures() fastsimd.Features {
	if f.features != nil {
		return *f.features
	}
	return fastsimd.DetectFeatures()
}

// check returns the reason level l cannot serve algorithm id, or "".
func (f *Factory) check(id AlgorithmID, l fastsimd.Level, features fastsimd.Features) string {
	switch {
	case !l.Valid():
		return reasonInvalid
	case !fastsimd.IsCompiled(l):
		return reasonNotCompiled
	case f.allowed != nil && !slices.Contains(f.allowed, l):
		return reasonNotAllowed
	case registry[l][id] == nil:
		return reasonNotRegistered
	case !fastsimd.Supports(features, l):
		return reasonUnsupported
	}
	return ""
}

// Available lists the levels at which the factory can build a, lowest
// first. It returns nil if a is invalid.
func (f *Factory) Available(a Algorithm) []fastsimd.Level {
	if validate(a) != nil {
		return nil
	}
	features := f.hostFeatures()
	return lo.Filter(fastsimd.AllLevels, func(l fastsimd.Level, _ int) bool {
		return f.check(a.ID(), l, features) == ""
	})
}

// Create builds a generator for a at level. With fastsimd.LevelAuto the
// highest usable native level is chosen; emulated levels are only built on
// request. The choice only depends on the compiled levels, the factory
// options and the CPU features, so it is stable for the life of the process.
// An explicit level is used exactly or refused with a *LevelError.
func (f *Factory) Create(a Algorithm, level fastsimd.Level) (Generator, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	id := a.ID()
	features := f.hostFeatures()

	if level == fastsimd.LevelAuto {
		avail := lo.Filter(fastsimd.NativeLevels(), func(l fastsimd.Level, _ int) bool {
			return f.check(id, l, features) == ""
		})
		if len(avail) == 0 {
			f.refused(id, level, reasonNoCandidate)
			return nil, &LevelError{Level: level, Algorithm: id, Reason: reasonNoCandidate}
		}
		level = lo.Max(avail)
	} else if reason := f.check(id, level, features); reason != "" {
		f.refused(id, level, reason)
		return nil, &LevelError{Level: level, Algorithm: id, Reason: reason}
	}

	f.log().WithFields(logrus.Fields{
		"algorithm": id,
		"level":     level,
	}).Debug("fastnoise: created generator")
	return registry[level][id](a), nil
}

func (f *Factory) refused(id AlgorithmID, l fastsimd.Level, reason string) {
	f.log().WithFields(logrus.Fields{
		"algorithm": id,
		"level":     l,
		"reason":    reason,
	}).Debug("fastnoise: level refused")
}

func validate(a Algorithm) error {
	if a == nil {
		return fmt.Errorf("%w: nil algorithm", ErrUnknownAlgorithm)
	}
	switch a.(type) {
	case Constant, White, Checkerboard, SineWave, PositionOutput, DistanceToOrigin:
		return a.Validate()
	}
	return fmt.Errorf("%w: %T (%s)", ErrUnknownAlgorithm, a, a.ID())
}
