package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-chain/dsp/chain"
	"github.com/cwbudde/algo-chain/internal/testutil"
)

func newHist(t *testing.T) *HistAntiJitter[float64] {
	t.Helper()
	cfg := HistConfig{Size: 20, Buckets: 11, Min: 0, Max: 10, Margin: 0.1}
	h, err := NewHistAntiJitter(newGraph[float64](), chain.None, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.MarginCount())
	return h
}

func sum(counts []int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

func TestHistConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  HistConfig
		ok   bool
	}{
		{"default", DefaultHistConfig(16, 8, -1, 1), true},
		{"zero margin", HistConfig{Size: 2, Buckets: 2, Min: 0, Max: 1}, true},
		{"short window", HistConfig{Size: 1, Buckets: 4, Min: 0, Max: 1}, false},
		{"one bucket", HistConfig{Size: 8, Buckets: 1, Min: 0, Max: 1}, false},
		{"empty domain", HistConfig{Size: 8, Buckets: 4, Min: 1, Max: 1}, false},
		{"inverted domain", HistConfig{Size: 8, Buckets: 4, Min: 2, Max: 1}, false},
		{"negative margin", HistConfig{Size: 8, Buckets: 4, Max: 1, Margin: -0.1}, false},
		{"full margin", HistConfig{Size: 8, Buckets: 4, Max: 1, Margin: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)

			_, err = NewHistAntiJitter(newGraph[float64](), chain.None, tt.cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
	assert.Equal(t, DefaultMargin, DefaultHistConfig(4, 4, 0, 1).Margin)
}

func TestHistBucketMapping(t *testing.T) {
	h := newHist(t)

	assert.Equal(t, 0, h.Bucket(-3))
	assert.Equal(t, 0, h.Bucket(0.99))
	assert.Equal(t, 5, h.Bucket(5))
	assert.Equal(t, 10, h.Bucket(10))
	assert.Equal(t, 10, h.Bucket(42))
	assert.Equal(t, 6.0, h.Value(6))
	assert.Equal(t, 0.0, h.Value(0))

	hist := h.Histogram()
	assert.Equal(t, 20, hist[0], "the window starts as zeros")
	assert.Equal(t, 20, sum(hist))
}

func TestHistAntiJitterTrimsOutliers(t *testing.T) {
	h := newHist(t)

	cluster := outputs[float64](h, testutil.DC(5.0, 18)...)
	assert.Equal(t, []float64{1, 1}, cluster[:2], "the zero-filled window still dominates")
	assert.Equal(t, testutil.DC(5.0, 16), cluster[2:])

	assert.Equal(t, 5.0, h.Push(0), "low outlier is clamped to the accepted range")
	lo, hi := h.Bounds()
	assert.Equal(t, 5, lo)
	assert.Equal(t, 5, hi)

	assert.Equal(t, 6.0, h.Push(10), "high outlier is clamped to the bucket above the range")
	assert.Equal(t, 20, sum(h.Histogram()))
	assert.Equal(t, 1, h.Histogram()[10])
}

func TestHistAntiJitterReset(t *testing.T) {
	h := newHist(t)
	h.Reset(5)

	assert.Equal(t, 20, h.Histogram()[5])
	testutil.RequireWindow[float64](t, h.Window(), testutil.DC(5.0, 20)...)

	assert.Equal(t, testutil.DC(5.0, 18), outputs[float64](h, testutil.DC(5.0, 18)...))
	assert.Equal(t, 5.0, h.Push(0))
	assert.Equal(t, 6.0, h.Push(10))
	assert.Equal(t, 5.0, h.Out())
}

func TestHistAntiJitterPassesSpreadSignal(t *testing.T) {
	h := newHist(t)
	ramp := testutil.Ramp(0, 0.5, 20)
	h.Reset(ramp[0])
	for _, v := range ramp {
		h.Push(v)
	}
	// a uniformly spread window trims nothing inside the margin
	for _, v := range []float64{3, 4.5, 6} {
		assert.Equal(t, v, h.Push(v))
	}
}

func TestHistAntiJitterFollowsWindowEvictions(t *testing.T) {
	h := newHist(t)
	for i := 0; i < 100; i++ {
		h.Push(float64(i % 11))
		require.Equal(t, 20, sum(h.Histogram()))
	}
	want := make([]int, 11)
	for _, v := range h.Window().Export() {
		want[h.Bucket(v)]++
	}
	assert.Equal(t, want, h.Histogram())
}

func TestHistAntiJitterUnderflowPanics(t *testing.T) {
	h := newHist(t)
	// the window no longer matches the histogram
	h.Window().Fill(10)

	assert.PanicsWithError(t, "filter: histogram underflow: bucket 10", func() {
		h.Push(5)
	})
}

func TestHistAntiJitterNaN(t *testing.T) {
	h := newHist(t)
	h.Reset(5)
	assert.Equal(t, 0, h.Bucket(math.NaN()))

	require.NotPanics(t, func() {
		assert.Equal(t, 5.0, h.Push(math.NaN()), "NaN falls in the trimmed low tail")
	})
	assert.Equal(t, 1, h.Histogram()[0])

	for i := 0; i < 20; i++ {
		require.Equal(t, 5.0, h.Push(5))
	}
	assert.Equal(t, 20, h.Histogram()[5], "the NaN left the window and the histogram")
}

func TestHistAntiJitterFloat32(t *testing.T) {
	g := newGraph[float32]()
	h, err := NewHistAntiJitter(g, chain.None, DefaultHistConfig(8, 5, -1, 1))
	require.NoError(t, err)
	assert.Equal(t, 8, h.Histogram()[h.Bucket(0)])
	assert.Equal(t, float32(0.5), h.Value(3))
	assert.Equal(t, "HistAntiJitter", h.Name())
}
