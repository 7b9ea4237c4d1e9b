package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func us(n int) time.Duration { return time.Duration(n) * time.Microsecond }

func TestComputeLatencyStats(t *testing.T) {
	tests := []struct {
		name      string
		samples   []time.Duration
		wantMin   time.Duration
		wantMax   time.Duration
		wantMean  time.Duration
		wantMed   time.Duration
		wantCount int
	}{
		{name: "empty"},
		{name: "single", samples: []time.Duration{us(10)}, wantMin: us(10), wantMax: us(10), wantMean: us(10), wantMed: us(10), wantCount: 1},
		{name: "odd count unsorted", samples: []time.Duration{us(50), us(10), us(30), us(20), us(40)}, wantMin: us(10), wantMax: us(50), wantMean: us(30), wantMed: us(30), wantCount: 5},
		{name: "even count", samples: []time.Duration{us(10), us(20), us(30), us(40)}, wantMin: us(10), wantMax: us(40), wantMean: us(25), wantMed: us(25), wantCount: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeLatencyStats(tt.samples)
			assert.Equal(t, tt.wantMin, stats.Min)
			assert.Equal(t, tt.wantMax, stats.Max)
			assert.Equal(t, tt.wantMean, stats.Mean)
			assert.Equal(t, tt.wantMed, stats.Median)
			assert.Equal(t, tt.wantCount, stats.SampleCount)
			assert.Equal(t, tt.wantCount == 0, stats.IsZero())
			assert.NotNil(t, stats.Percentiles)
		})
	}
}

func TestComputeLatencyStats_DoesNotReorderInput(t *testing.T) {
	samples := []time.Duration{us(3), us(1), us(2)}
	ComputeLatencyStats(samples)
	assert.Equal(t, []time.Duration{us(3), us(1), us(2)}, samples)
}

func TestComputeLatencyStats_Percentiles(t *testing.T) {
	samples := make([]time.Duration, 100)
	for i := range samples {
		samples[i] = us(i + 1)
	}
	stats := ComputeLatencyStats(samples)

	assert.InDelta(t, float64(us(50)), float64(stats.P50()), float64(us(1)))
	assert.InDelta(t, float64(us(90)), float64(stats.P90()), float64(us(1)))
	assert.InDelta(t, float64(us(95)), float64(stats.P95()), float64(us(1)))
	assert.InDelta(t, float64(us(99)), float64(stats.P99()), float64(us(1)))
}

func TestComputeLatencyStats_Stddev(t *testing.T) {
	assert.Zero(t, ComputeLatencyStats([]time.Duration{us(7), us(7), us(7)}).Stddev)
	assert.Equal(t, us(10), ComputeLatencyStats([]time.Duration{us(10), us(20), us(30)}).Stddev)
}

func TestAggregateLatencyStats(t *testing.T) {
	agg := AggregateLatencyStats([]LatencyStats{
		ComputeLatencyStats([]time.Duration{us(10), us(20)}),
		ComputeLatencyStats([]time.Duration{us(30), us(40)}),
	})

	assert.Equal(t, us(10), agg.Min)
	assert.Equal(t, us(40), agg.Max)
	assert.Equal(t, us(25), agg.Mean)
	assert.Equal(t, 4, agg.SampleCount)

	assert.True(t, AggregateLatencyStats(nil).IsZero())
}
