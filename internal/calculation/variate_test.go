package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxMuller_KnownDraws(t *testing.T) {
	src := &sequenceSource{values: []float64{0.5, 0.5}}
	nv := NewBoxMuller(src)

	// u1=0.5, u2=0.5 -> z = sqrt(-2 ln 0.5) * cos(pi)
	expectedZ := -math.Sqrt(-2.0 * math.Log(0.5))
	got := nv.Sample(0.05, 0.1)

	assert.InDelta(t, 0.05+0.1*expectedZ, got, 1e-12)
}

func TestBoxMuller_ResamplesZero(t *testing.T) {
	src := &sequenceSource{values: []float64{0, 0.5, 0, 0.5}}
	nv := NewBoxMuller(src)

	got := nv.Sample(0, 1)

	assert.False(t, math.IsNaN(got), "Should never return NaN")
	assert.False(t, math.IsInf(got, 0), "Should never return Inf")
	assert.Equal(t, 4, src.calls, "Should consume a replacement for each zero draw")
	assert.InDelta(t, -math.Sqrt(-2.0*math.Log(0.5)), got, 1e-12)
}

func TestBoxMuller_ZeroStdDevReturnsMean(t *testing.T) {
	nv := NewBoxMuller(NewSource(7))
	for i := 0; i < 100; i++ {
		assert.Equal(t, 0.04, nv.Sample(0.04, 0))
	}
}

func TestBoxMuller_Moments(t *testing.T) {
	nv := NewBoxMuller(NewSource(42))
	const n = 200000
	mean, stdDev := 0.08, 0.05

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := nv.Sample(mean, stdDev)
		sum += x
		sumSq += x * x
	}
	gotMean := sum / n
	gotStd := math.Sqrt(sumSq/n - gotMean*gotMean)

	assert.InDelta(t, mean, gotMean, 0.001, "Sample mean should approximate the requested mean")
	assert.InDelta(t, stdDev, gotStd, 0.001, "Sample std dev should approximate the requested std dev")
}

func TestNopLogger_SatisfiesLogger(t *testing.T) {
	var l Logger = NopLogger{}
	assert.NotPanics(t, func() {
		l.Debugf("x %d", 1)
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}
