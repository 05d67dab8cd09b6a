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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-fastsimd/fastsimd"
)

// allFeatures enables every level the tests can run. Emulated backends run
// on any host, so without native vector levels every feature is on. Native
// levels need the real CPU, so then the host's features are used.
var allFeatures = testFeatures()

func testFeatures() fastsimd.Features {
	if len(fastsimd.NativeLevels()) > 1 {
		return fastsimd.DetectFeatures()
	}
	return fastsimd.Features{
		SSE2: true, SSE3: true, SSSE3: true, SSE41: true,
		AVX: true, AVX2: true, FMA: true,
		AVX512F: true, AVX512DQ: true, AVX512BW: true, AVX512VL: true,
		ASIMD: true,
	}
}

var testFactory = NewFactory(WithFeatures(allFeatures))

// forEachLevel runs fn once per level that can build a.
func forEachLevel(t *testing.T, a Algorithm, fn func(t *testing.T, g Generator)) {
	t.Helper()
	levels := testFactory.Available(a)
	require.NotEmpty(t, levels)
	for _, l := range levels {
		t.Run(l.String(), func(t *testing.T) {
			g, err := testFactory.Create(a, l)
			require.NoError(t, err)
			require.Equal(t, l, g.Level())
			fn(t, g)
		})
	}
}

func TestConstantEverywhere(t *testing.T) {
	forEachLevel(t, Constant{Value: 3.5}, func(t *testing.T, g Generator) {
		assert.Equal(t, float32(3.5), g.GenSingle2D(1, 2, 0))
		assert.Equal(t, float32(3.5), g.GenSingle3D(-1, 0.25, 9, 7))
		assert.Equal(t, float32(3.5), g.GenSingle4D(1e6, -1e6, 0, 3, -1))

		out := make([]float32, 6*6*6)
		mm := g.GenUniformGrid3D(out, 0, 0, 0, 6, 6, 6, 0.02, 1337)
		for i, v := range out {
			require.Equal(t, float32(3.5), v, "index %d", i)
		}
		assert.Equal(t, MinMax{Min: 3.5, Max: 3.5}, mm)
	})
}

func TestUniformGridMatchesSingle(t *testing.T) {
	const freq, seed = 0.5, 1337
	forEachLevel(t, White{}, func(t *testing.T, g Generator) {
		w := g.Level().Lanes()

		t.Run("2D", func(t *testing.T) {
			xs, ys := w+3, 3
			out := make([]float32, xs*ys)
			g.GenUniformGrid2D(out, -2, 5, xs, ys, freq, seed)
			for y := range ys {
				for x := range xs {
					want := g.GenSingle2D(float32(x-2)*freq, float32(y+5)*freq, seed)
					require.Equal(t, want, out[y*xs+x], "x=%d y=%d", x, y)
				}
			}
		})

		t.Run("3D", func(t *testing.T) {
			xs, ys, zs := w+3, 2, 3
			out := make([]float32, xs*ys*zs)
			g.GenUniformGrid3D(out, 10, -3, 0, xs, ys, zs, freq, seed)
			for z := range zs {
				for y := range ys {
					for x := range xs {
						want := g.GenSingle3D(float32(x+10)*freq, float32(y-3)*freq, float32(z)*freq, seed)
						require.Equal(t, want, out[(z*ys+y)*xs+x], "x=%d y=%d z=%d", x, y, z)
					}
				}
			}
		})

		t.Run("4D", func(t *testing.T) {
			// x narrower than a vector forces carries on every axis.
			xs, ys, zs, ws := 3, 2, 3, 2
			out := make([]float32, xs*ys*zs*ws)
			g.GenUniformGrid4D(out, 0, 1, 2, 3, xs, ys, zs, ws, freq, seed)
			i := 0
			for wi := range ws {
				for z := range zs {
					for y := range ys {
						for x := range xs {
							want := g.GenSingle4D(float32(x)*freq, float32(y+1)*freq, float32(z+2)*freq, float32(wi+3)*freq, seed)
							require.Equal(t, want, out[i], "x=%d y=%d z=%d w=%d", x, y, z, wi)
							i++
						}
					}
				}
			}
		})
	})
}

func TestUniformGridTail(t *testing.T) {
	forEachLevel(t, Constant{Value: 1}, func(t *testing.T, g Generator) {
		w := g.Level().Lanes()
		n := w + 3
		out := make([]float32, n+w)
		for i := range out {
			out[i] = -9
		}
		g.GenUniformGrid2D(out, 0, 0, n, 1, 1, 0)
		for i := range n {
			assert.Equal(t, float32(1), out[i], "index %d", i)
		}
		for i := n; i < len(out); i++ {
			assert.Equal(t, float32(-9), out[i], "index %d past the grid was written", i)
		}
	})
}

func TestUniformGridEmptyAndShort(t *testing.T) {
	g, err := testFactory.Create(White{}, fastsimd.LevelScalar)
	require.NoError(t, err)

	mm := g.GenUniformGrid2D(nil, 0, 0, 0, 5, 1, 0)
	assert.True(t, mm.Empty())

	assert.Panics(t, func() {
		g.GenUniformGrid3D(make([]float32, 7), 0, 0, 0, 2, 2, 2, 1, 0)
	})
	assert.Panics(t, func() {
		g.GenUniformGrid2D(make([]float32, 4), 0, 0, -1, 2, 1, 0)
	})
}

func TestPositionArray(t *testing.T) {
	const seed = 99
	forEachLevel(t, White{}, func(t *testing.T, g Generator) {
		n := 2*g.Level().Lanes() + 3
		xs, ys, zs, ws := make([]float32, n), make([]float32, n), make([]float32, n), make([]float32, n)
		for i := range n {
			xs[i] = float32(i) * 0.75
			ys[i] = float32(n-i) * -1.5
			zs[i] = float32(i*i) / 7
			ws[i] = float32(i % 3)
		}

		out := make([]float32, n+1)
		out[n] = -9
		g.GenPositionArray2D(out, xs, ys, 1, 2, seed)
		for i := range n {
			require.Equal(t, g.GenSingle2D(xs[i]+1, ys[i]+2, seed), out[i], "2D index %d", i)
		}

		g.GenPositionArray3D(out, xs, ys, zs, 0, 0, -1, seed)
		for i := range n {
			require.Equal(t, g.GenSingle3D(xs[i], ys[i], zs[i]-1, seed), out[i], "3D index %d", i)
		}

		mm := g.GenPositionArray4D(out, xs, ys, zs, ws, 0, 0, 0, 0.5, seed)
		for i := range n {
			require.Equal(t, g.GenSingle4D(xs[i], ys[i], zs[i], ws[i]+0.5, seed), out[i], "4D index %d", i)
		}
		assert.Equal(t, float32(-9), out[n], "position array wrote past its end")
		assert.Equal(t, MinMax{Min: vek32.Min(out[:n]), Max: vek32.Max(out[:n])}, mm)

		assert.Panics(t, func() { g.GenPositionArray2D(out, xs, ys[:n-1], 0, 0, seed) })
		assert.Panics(t, func() { g.GenPositionArray2D(out[:n-1], xs, ys, 0, 0, seed) })
	})
}

func TestMinMaxMatchesOutput(t *testing.T) {
	forEachLevel(t, White{}, func(t *testing.T, g Generator) {
		out := make([]float32, 13*7*3)
		mm := g.GenUniformGrid3D(out, -6, -3, 0, 13, 7, 3, 0.1, 7)
		assert.Equal(t, vek32.Min(out), mm.Min)
		assert.Equal(t, vek32.Max(out), mm.Max)
		assert.False(t, mm.Empty())
	})
}

func TestMinMaxMerge(t *testing.T) {
	e := EmptyMinMax()
	assert.True(t, e.Empty())
	a := MinMax{Min: -1, Max: 2}
	assert.Equal(t, a, e.Merge(a))
	assert.Equal(t, a, a.Merge(e))
	assert.Equal(t, MinMax{Min: -3, Max: 2}, a.Merge(MinMax{Min: -3, Max: 0}))
}

// gridAt fills a 2D grid with the generator for a at level l.
func gridAt(t *testing.T, a Algorithm, l fastsimd.Level) []float32 {
	t.Helper()
	g, err := testFactory.Create(a, l)
	require.NoError(t, err)
	out := make([]float32, 37*11)
	g.GenUniformGrid2D(out, -18, -5, 37, 11, 0.37, 2024)
	return out
}

func TestCrossLevelAgreement(t *testing.T) {
	exact := []Algorithm{
		Constant{Value: -0.25},
		White{},
		Checkerboard{Size: 1.5},
		PositionOutput{Multiplier: [4]float32{1, -2, 0.5, 3}, Offset: [4]float32{0.5, 1, -1, 2}},
		DistanceToOrigin{Distance: Manhattan},
		DistanceToOrigin{Distance: MaxAxis},
	}
	approx := []Algorithm{
		SineWave{Scale: 3},
		DistanceToOrigin{Distance: Euclidean},
		DistanceToOrigin{Distance: EuclideanSquared},
		DistanceToOrigin{Distance: Hybrid},
	}

	for _, a := range exact {
		want := gridAt(t, a, fastsimd.LevelScalar)
		for _, l := range testFactory.Available(a) {
			t.Run(fmt.Sprintf("%s/%s", a.ID(), l), func(t *testing.T) {
				if diff := cmp.Diff(want, gridAt(t, a, l)); diff != "" {
					t.Errorf("differs from scalar (-want +got):\n%s", diff)
				}
			})
		}
	}

	tol := cmpopts.EquateApprox(2*fastsimd.ApproxRelTolerance, 1e-5)
	for _, a := range approx {
		want := gridAt(t, a, fastsimd.LevelScalar)
		for _, l := range testFactory.Available(a) {
			t.Run(fmt.Sprintf("%s/%s", a.ID(), l), func(t *testing.T) {
				if diff := cmp.Diff(want, gridAt(t, a, l), tol); diff != "" {
					t.Errorf("differs from scalar beyond tolerance (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestCheckerboard(t *testing.T) {
	g, err := Create(Checkerboard{Size: 2}, fastsimd.LevelScalar)
	require.NoError(t, err)
	// Cells are centred on multiples of Size.
	assert.Equal(t, float32(1), g.GenSingle2D(0.2, 0.2, 0))
	assert.Equal(t, float32(-1), g.GenSingle2D(2.2, 0.2, 0))
	assert.Equal(t, float32(1), g.GenSingle2D(2.2, 1.8, 0))
	assert.Equal(t, float32(-1), g.GenSingle3D(0, 0, -2, 0))
}

func TestPositionOutput(t *testing.T) {
	a := PositionOutput{Multiplier: [4]float32{1, 10, 100, 1000}, Offset: [4]float32{1, 1, 1, 1}}
	g, err := Create(a, fastsimd.LevelScalar)
	require.NoError(t, err)
	assert.Equal(t, float32(2+20), g.GenSingle2D(1, 1, 0))
	assert.Equal(t, float32(2+20+300), g.GenSingle3D(1, 1, 2, 0))
	assert.Equal(t, float32(1+10+100+1000), g.GenSingle4D(0, 0, 0, 0, 0))
}

func TestWhiteDependsOnSeedAndPosition(t *testing.T) {
	g, err := Create(White{}, fastsimd.LevelScalar)
	require.NoError(t, err)
	v := g.GenSingle3D(1, 2, 3, 0)
	assert.Equal(t, v, g.GenSingle3D(1, 2, 3, 0))
	assert.NotEqual(t, v, g.GenSingle3D(1, 2, 3, 1))
	assert.NotEqual(t, v, g.GenSingle3D(1, 2, 4, 0))
	assert.InDelta(t, 0, v, 1)
}

func TestSineWave(t *testing.T) {
	g, err := Create(SineWave{Scale: 2}, fastsimd.LevelScalar)
	require.NoError(t, err)
	x, y := float32(1.3), float32(-0.4)
	want := math.Sin(float64(x)/2) * math.Sin(float64(y)/2)
	assert.InDelta(t, want, g.GenSingle2D(x, y, 0), 1e-5)
}

// BenchmarkUniformGrid3D runs one sub-benchmark per level so that
// `-bench UniformGrid3D/avx2` and friends compare directly against
// `/scalar`. Emulated levels carry an "emulated" suffix.
func BenchmarkUniformGrid3D(b *testing.B) {
	algorithms := []Algorithm{White{}, SineWave{Scale: 8}, DistanceToOrigin{Distance: Euclidean}}
	for _, l := range fastsimd.CompiledLevels() {
		name := l.String()
		if !fastsimd.IsNative(l) {
			name += "-emulated"
		}
		b.Run(name, func(b *testing.B) {
			for _, a := range algorithms {
				g, err := testFactory.Create(a, l)
				if err != nil {
					b.Skipf("%s: %v", l, err)
				}
				out := make([]float32, 32*32*32)
				b.Run(a.ID(), func(b *testing.B) {
					b.SetBytes(int64(len(out) * 4))
					for b.Loop() {
						g.GenUniformGrid3D(out, 0, 0, 0, 32, 32, 32, 0.01, 1337)
					}
				})
			}
		})
	}
}
