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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vecF builds a vector whose lane i is vals[i%len(vals)].
func vecF[F Float32v[F], I Int32v[I], M any, B Backend[F, I, M]](b B, vals ...float32) F {
	var buf [MaxLanes]float32
	for i := range buf {
		buf[i] = vals[i%len(vals)]
	}
	return b.LoadF(buf[:])
}

func vecI[F Float32v[F], I Int32v[I], M any, B Backend[F, I, M]](b B, vals ...int32) I {
	var buf [MaxLanes]int32
	for i := range buf {
		buf[i] = vals[i%len(vals)]
	}
	return b.LoadI(buf[:])
}

func lanesF[F Float32v[F], I Int32v[I], M any, B Backend[F, I, M]](b B, v F) []float32 {
	out := make([]float32, b.Size())
	b.StoreF(v, out)
	return out
}

func lanesI[F Float32v[F], I Int32v[I], M any, B Backend[F, I, M]](b B, v I) []int32 {
	out := make([]int32, b.Size())
	b.StoreI(v, out)
	return out
}

// cycle returns n values repeating vals.
func cycle[T any](n int, vals ...T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = vals[i%len(vals)]
	}
	return out
}

var nan32 = float32(math.NaN())

// skipUnlessRunnable skips native levels the host CPU cannot execute.
// Emulated levels run anywhere.
func skipUnlessRunnable(t *testing.T, l Level) {
	t.Helper()
	if l != LevelScalar && IsNative(l) && !Supports(readCPUFeatures(), l) {
		t.Skipf("host CPU cannot run native %s", l)
	}
}

// testBackend runs the operation contract against one backend.
func testBackend[F Float32v[F], I Int32v[I], M any, B Backend[F, I, M]](t *testing.T, b B) {
	t.Helper()
	skipUnlessRunnable(t, b.Level())
	n := b.Size()
	x86 := b.Level() != LevelNEON
	mkF := func(vals ...float32) F { return vecF[F, I, M](b, vals...) }
	mkI := func(vals ...int32) I { return vecI[F, I, M](b, vals...) }
	getF := func(v F) []float32 { return lanesF[F, I, M](b, v) }
	getI := func(v I) []int32 { return lanesI[F, I, M](b, v) }

	t.Run("Identity", func(t *testing.T) {
		assert.Equal(t, b.Level().Lanes(), n)
		assert.Equal(t, n, b.ZeroF().Size())
		assert.Equal(t, n, b.ZeroI().Size())
		assert.True(t, IsCompiled(b.Level()))
	})

	t.Run("Constructors", func(t *testing.T) {
		assert.Equal(t, cycle[float32](n, 0), getF(b.ZeroF()))
		assert.Equal(t, cycle[int32](n, 0), getI(b.ZeroI()))
		assert.Equal(t, cycle[float32](n, 3.5), getF(b.SetF(3.5)))
		assert.Equal(t, cycle[int32](n, -7), getI(b.SetI(-7)))
		for i, v := range getF(b.IncrementedF()) {
			assert.Equal(t, float32(i), v)
		}
		for i, v := range getI(b.IncrementedI()) {
			assert.Equal(t, int32(i), v)
			assert.Equal(t, int32(i), b.GetLaneI(b.IncrementedI(), i))
		}
	})

	t.Run("LoadStore", func(t *testing.T) {
		src := make([]float32, n+3)
		for i := range src {
			src[i] = float32(i) * 1.5
		}
		v := b.LoadF(src[2:])
		dst := make([]float32, n)
		b.StoreF(v, dst)
		assert.Equal(t, src[2:2+n], dst)
		for i := range n {
			assert.Equal(t, src[2+i], b.GetLaneF(v, i))
		}
		require.Panics(t, func() { b.LoadF(make([]float32, n-1)) })
	})

	t.Run("MaskedMemory", func(t *testing.T) {
		for active := 0; active <= n; active++ {
			m := b.FirstN(active)
			src := cycle[float32](active, 9)
			v := b.MaskLoadF(m, src)
			want := make([]float32, n)
			for i := range active {
				want[i] = 9
			}
			assert.Equal(t, want, getF(v), "active=%d", active)

			dst := cycle[float32](n, -1)
			b.MaskStoreF(m, b.SetF(2), dst)
			for i, got := range dst {
				if i < active {
					assert.Equal(t, float32(2), got)
				} else {
					assert.Equal(t, float32(-1), got)
				}
			}

			idst := cycle[int32](active, 0)
			b.MaskStoreI(m, b.SetI(5), idst)
			assert.Equal(t, cycle[int32](active, 5), idst)
		}
	})

	t.Run("FloatArithmetic", func(t *testing.T) {
		a := mkF(1.5, -2, 8, 0.25)
		c := mkF(0.5, 4, -2, 2)
		assert.Equal(t, cycle[float32](n, 2, 2, 6, 2.25), getF(a.Add(c)))
		assert.Equal(t, cycle[float32](n, 1, -6, 10, -1.75), getF(a.Sub(c)))
		assert.Equal(t, cycle[float32](n, 0.75, -8, -16, 0.5), getF(a.Mul(c)))
		assert.Equal(t, cycle[float32](n, 3, -0.5, -4, 0.125), getF(a.Div(c)))
		assert.Equal(t, cycle[float32](n, -1.5, 2, -8, -0.25), getF(a.Neg()))
		assert.Equal(t, cycle[float32](n, 1.25, -7.5, -15.5, 1), getF(b.MulAddF(a, c, mkF(0.5))))
		assert.Equal(t, cycle[float32](n, 1.5, 2, 8, 0.25), getF(b.AbsF(a)))
		assert.Equal(t, cycle[float32](n, 3, 0.5, 1.5), getF(b.SqrtF(mkF(9, 0.25, 2.25))))
	})

	t.Run("NegZero", func(t *testing.T) {
		z := getF(b.SetF(0).Neg())
		assert.True(t, math.Signbit(float64(z[0])))
		abs := getF(b.AbsF(b.SetF(0).Neg()))
		assert.False(t, math.Signbit(float64(abs[0])))
	})

	t.Run("IntArithmetic", func(t *testing.T) {
		a := mkI(7, -3, math.MaxInt32, 0x0F0F)
		c := mkI(2, 5, 1, 0x00FF)
		assert.Equal(t, cycle[int32](n, 9, 2, math.MinInt32, 0x100E), getI(a.Add(c)))
		assert.Equal(t, cycle[int32](n, 5, -8, math.MaxInt32-1, 0x0E10), getI(a.Sub(c)))
		assert.Equal(t, cycle[int32](n, 14, -15, math.MaxInt32, 0x0F0F*0x00FF), getI(a.Mul(c)))
		assert.Equal(t, cycle[int32](n, 2, 5, 1, 0x000F), getI(a.And(c)))
		assert.Equal(t, cycle[int32](n, 7, -3, math.MaxInt32, 0x0FFF), getI(a.Or(c)))
		assert.Equal(t, cycle[int32](n, 5, -8, math.MaxInt32-1, 0x0FF0), getI(a.Xor(c)))
		assert.Equal(t, cycle[int32](n, 5, -8, math.MaxInt32-1, 0x0F00), getI(a.AndNot(c)))
		assert.Equal(t, getI(a.AndNot(c)), getI(b.AndNotI(a, c)))
		assert.Equal(t, cycle[int32](n, -8, 2, math.MinInt32, ^int32(0x0F0F)), getI(a.Not()))
		assert.Equal(t, cycle[int32](n, -7, 3, -math.MaxInt32, -0x0F0F), getI(a.Neg()))
		assert.Equal(t, cycle[int32](n, 28, -12, -4, 0x0F0F<<2), getI(a.Shl(2)))
		assert.Equal(t, cycle[int32](n, 1, -1, math.MaxInt32>>2, 0x0F0F>>2), getI(a.Shr(2)))
		assert.Equal(t, cycle[int32](n, 7, 3, math.MinInt32, 0),
			getI(b.AbsI(mkI(-7, 3, math.MinInt32, 0))), "AbsI wraps at MinInt32")
		assert.Equal(t, cycle[int32](n, 2, -3, 1, 0x00FF), getI(b.MinI(a, c)))
		assert.Equal(t, cycle[int32](n, 7, 5, math.MaxInt32, 0x0F0F), getI(b.MaxI(a, c)))
	})

	t.Run("Bitwise", func(t *testing.T) {
		a := mkF(-1.5, 2)
		sign := b.CastF(b.SetI(math.MinInt32))
		assert.Equal(t, cycle[float32](n, 1.5, 2), getF(b.AndNotF(a, sign)))
		assert.Equal(t, cycle[float32](n, -1.5, -2), getF(b.OrF(a, sign)))
		assert.Equal(t, cycle[float32](n, 1.5, -2), getF(b.XorF(a, sign)))
		assert.Equal(t, cycle[float32](n, 0, 0), getF(b.AndF(b.AndF(a, sign), b.SetF(1))))
		notA := getI(b.CastI(b.NotF(a)))
		for i, v := range getI(b.CastI(a)) {
			assert.Equal(t, ^v, notA[i])
		}
	})

	t.Run("CastConvert", func(t *testing.T) {
		bits := getI(b.CastI(b.SetF(1)))
		assert.Equal(t, cycle[int32](n, 0x3F800000), bits)
		assert.Equal(t, cycle[float32](n, 1), getF(b.CastF(b.SetI(0x3F800000))))
		assert.Equal(t, cycle[float32](n, -3, 16777216), getF(b.ConvertF(mkI(-3, 1<<24))))

		got := getI(b.ConvertI(mkF(2.5, 3.5, -2.5, 0.49999997)))
		assert.Equal(t, cycle[int32](n, 2, 4, -2, 0), got, "ties to even")

		edge := getI(b.ConvertI(mkF(nan32, 3e9, -3e9)))
		if x86 {
			assert.Equal(t, cycle[int32](n, math.MinInt32, math.MinInt32, math.MinInt32), edge)
		} else {
			assert.Equal(t, cycle[int32](n, 0, math.MaxInt32, math.MinInt32), edge)
		}
	})

	t.Run("CompareNaN", func(t *testing.T) {
		a := mkF(nan32, 1, nan32)
		c := mkF(1, nan32, nan32)
		for name, m := range map[string]M{
			"Equal":        b.EqualF(a, c),
			"GreaterThan":  b.GreaterThanF(a, c),
			"LessThan":     b.LessThanF(a, c),
			"GreaterEqual": b.GreaterEqualF(a, c),
			"LessEqual":    b.LessEqualF(a, c),
		} {
			assert.False(t, b.AnyTrue(m), name)
		}
	})

	t.Run("Compare", func(t *testing.T) {
		a := mkF(1, 2, 3, 2)
		c := mkF(2, 2, 2, 2)
		full := lowBits(n)
		pattern := func(bits ...bool) uint32 {
			var m uint32
			for i := range n {
				if bits[i%len(bits)] {
					m |= 1 << i
				}
			}
			return m
		}
		assert.Equal(t, pattern(false, true, false, true), b.MaskBits(b.EqualF(a, c)))
		assert.Equal(t, pattern(false, false, true, false), b.MaskBits(b.GreaterThanF(a, c)))
		assert.Equal(t, pattern(true, false, false, false), b.MaskBits(b.LessThanF(a, c)))
		assert.Equal(t, pattern(false, true, true, true), b.MaskBits(b.GreaterEqualF(a, c)))
		assert.Equal(t, pattern(true, true, false, true), b.MaskBits(b.LessEqualF(a, c)))

		ai := mkI(-1, 0, 1, 0)
		ci := mkI(0)
		assert.Equal(t, pattern(false, true, false, true), b.MaskBits(b.EqualI(ai, ci)))
		assert.Equal(t, pattern(false, false, true, false), b.MaskBits(b.GreaterThanI(ai, ci)))
		assert.Equal(t, pattern(true, false, false, false), b.MaskBits(b.LessThanI(ai, ci)))
		assert.Equal(t, pattern(true, false, false, false), b.MaskBits(b.SignMask(ai)))

		assert.Equal(t, full, b.MaskBits(b.MaskNot(b.FirstN(0))))
	})

	t.Run("MaskAlgebra", func(t *testing.T) {
		for k := 0; k <= n+1; k++ {
			m := b.FirstN(k)
			assert.Equal(t, lowBits(min(k, n)), b.MaskBits(m), "FirstN(%d)", k)
			assert.Equal(t, k > 0, b.AnyTrue(m))
			assert.Equal(t, k >= n, b.AllTrue(m))
		}
		a := b.FirstN(n - n/2)
		c := b.MaskNot(b.FirstN(n / 2))
		ab, cb := b.MaskBits(a), b.MaskBits(c)
		assert.Equal(t, ab&cb, b.MaskBits(b.MaskAnd(a, c)))
		assert.Equal(t, ab|cb, b.MaskBits(b.MaskOr(a, c)))
		assert.Equal(t, ab^cb, b.MaskBits(b.MaskXor(a, c)))
		assert.Equal(t, ab&^cb, b.MaskBits(b.MaskAndNot(a, c)))
		assert.Equal(t, lowBits(n)&^ab, b.MaskBits(b.MaskNot(a)))
	})

	t.Run("Select", func(t *testing.T) {
		m := b.LessThanI(b.IncrementedI(), b.SetI(int32(n/2)))
		sel := getF(b.SelectF(m, b.SetF(1), b.SetF(2)))
		seli := getI(b.SelectI(m, b.SetI(1), b.SetI(2)))
		for i := range n {
			want := float32(2)
			if i < n/2 {
				want = 1
			}
			assert.Equal(t, want, sel[i])
			assert.Equal(t, int32(want), seli[i])
		}
		// NaN payloads pass through unchanged.
		payload := b.CastF(b.SetI(0x7FC00123))
		out := getI(b.CastI(b.SelectF(b.FirstN(n), payload, b.ZeroF())))
		assert.Equal(t, cycle[int32](n, 0x7FC00123), out)
	})

	t.Run("MinMaxNaN", func(t *testing.T) {
		a := mkF(nan32, 1, -3)
		c := mkF(2, nan32, 4)
		mins := getF(b.MinF(a, c))
		maxs := getF(b.MaxF(a, c))
		for i := range n {
			switch i % 3 {
			case 0, 1:
				if x86 {
					want := math.Float32bits(b.GetLaneF(c, i))
					assert.Equal(t, want, math.Float32bits(mins[i]), "second operand, lane %d", i)
					assert.Equal(t, want, math.Float32bits(maxs[i]), "second operand, lane %d", i)
				} else {
					assert.True(t, math.IsNaN(float64(mins[i])), "lane %d", i)
					assert.True(t, math.IsNaN(float64(maxs[i])), "lane %d", i)
				}
			case 2:
				assert.Equal(t, float32(-3), mins[i])
				assert.Equal(t, float32(4), maxs[i])
			}
		}
	})

	t.Run("Rounding", func(t *testing.T) {
		in := mkF(1.5, -1.5, 2.5, -0.25, 1e10, 3)
		assert.Equal(t, cycle[float32](n, 1, -2, 2, -1, 1e10, 3), getF(b.FloorF(in)))
		assert.Equal(t, cycle[float32](n, 2, -1, 3, 0, 1e10, 3), getF(b.CeilF(in)))
		assert.Equal(t, cycle[float32](n, 2, -2, 2, 0, 1e10, 3), getF(b.RoundF(in)))
		assert.True(t, math.IsNaN(float64(getF(b.FloorF(b.SetF(nan32)))[0])))
	})

	t.Run("Approximations", func(t *testing.T) {
		approx := cmpopts.EquateApprox(ApproxRelTolerance, 0)
		for _, x := range []float32{1, 3, 0.1, 7.25, 1e-3, 12345.678, 65536} {
			v := b.SetF(x)
			wantR := cycle[float32](n, 1/x)
			wantS := cycle[float32](n, float32(1/math.Sqrt(float64(x))))
			if diff := cmp.Diff(wantR, getF(b.ReciprocalF(v)), approx); diff != "" {
				t.Errorf("ReciprocalF(%v) mismatch (-want +got):\n%s", x, diff)
			}
			if diff := cmp.Diff(wantS, getF(b.InvSqrtF(v)), approx); diff != "" {
				t.Errorf("InvSqrtF(%v) mismatch (-want +got):\n%s", x, diff)
			}
		}
		assert.True(t, math.IsInf(float64(getF(b.InvSqrtF(b.ZeroF()))[0]), 1))
		assert.Equal(t, float32(0), getF(b.InvSqrtF(b.SetF(float32(math.Inf(1)))))[0])
		assert.True(t, math.IsInf(float64(getF(b.ReciprocalF(b.ZeroF()))[0]), 1))
	})

	t.Run("MaskedOps", func(t *testing.T) {
		m := b.FirstN(n / 2)
		a, c := b.SetF(6), b.SetF(2)
		ai, ci := b.SetI(6), b.SetI(2)
		check := func(name string, got []float32, on, off float32) {
			for i, v := range got {
				want := off
				if i < n/2 {
					want = on
				}
				assert.Equal(t, want, v, "%s lane %d", name, i)
			}
		}
		checkI := func(name string, got []int32, on, off int32) {
			for i, v := range got {
				want := off
				if i < n/2 {
					want = on
				}
				assert.Equal(t, want, v, "%s lane %d", name, i)
			}
		}
		check("MaskF", getF(b.MaskF(m, a)), 6, 0)
		check("NMaskF", getF(b.NMaskF(m, a)), 0, 6)
		check("MaskedAddF", getF(b.MaskedAddF(m, a, c)), 8, 6)
		check("MaskedSubF", getF(b.MaskedSubF(m, a, c)), 4, 6)
		check("MaskedMulF", getF(b.MaskedMulF(m, a, c)), 12, 6)
		check("NMaskedAddF", getF(b.NMaskedAddF(m, a, c)), 6, 8)
		check("NMaskedSubF", getF(b.NMaskedSubF(m, a, c)), 6, 4)
		check("NMaskedMulF", getF(b.NMaskedMulF(m, a, c)), 6, 12)
		checkI("MaskI", getI(b.MaskI(m, ai)), 6, 0)
		checkI("NMaskI", getI(b.NMaskI(m, ai)), 0, 6)
		checkI("MaskedAddI", getI(b.MaskedAddI(m, ai, ci)), 8, 6)
		checkI("MaskedSubI", getI(b.MaskedSubI(m, ai, ci)), 4, 6)
		checkI("MaskedMulI", getI(b.MaskedMulI(m, ai, ci)), 12, 6)
		checkI("NMaskedAddI", getI(b.NMaskedAddI(m, ai, ci)), 6, 8)
		checkI("NMaskedSubI", getI(b.NMaskedSubI(m, ai, ci)), 6, 4)
		checkI("NMaskedMulI", getI(b.NMaskedMulI(m, ai, ci)), 6, 12)
		checkI("MaskedIncrementI", getI(b.MaskedIncrementI(m, ai)), 7, 6)
	})
}
