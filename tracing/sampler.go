package tracing

import (
	"encoding/binary"
	"math"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/tracekit/config"
	"github.com/aalemi-dev/tracekit/logger"
)

// samplerPrecision is the granularity of the sampling decision: rates are
// effective in steps of 1/10000.
const samplerPrecision = 10000

type alwaysSampler struct{}

func (alwaysSampler) IsSampled(trace.TraceID) bool { return true }

type neverSampler struct{}

func (neverSampler) IsSampled(trace.TraceID) bool { return false }

// boundarySampler compares the low 64 bits of the trace identifier against a
// fixed boundary, so the decision is a pure function of the identifier and
// holds the configured rate over many traces.
type boundarySampler struct {
	boundary uint64
}

func (s boundarySampler) IsSampled(id trace.TraceID) bool {
	return binary.BigEndian.Uint64(id[8:16])%samplerPrecision < s.boundary
}

// NewSampler builds a sampler for the given rate. Rates at or below zero
// never sample, rates at or above one always sample, anything in between
// samples deterministically by trace identifier.
func NewSampler(rate float64) Sampler {
	switch {
	case rate <= 0 || math.IsNaN(rate):
		return neverSampler{}
	case rate >= 1:
		return alwaysSampler{}
	default:
		return boundarySampler{boundary: uint64(rate * samplerPrecision)}
	}
}

// resolveSamplerRate reads and validates the sampling rate.
//
// A rate is valid only when it parses as a float, is not NaN, and lies in
// (0, 1]. Any other value - including exactly zero, negatives, values above
// one, and unparseable text - is replaced with SamplerRateFallback and
// reported once as a warning. The warning carries the original configured
// value, not the fallback. A bad rate disables sampling instead of
// preventing the host application from starting.
func resolveSamplerRate(src config.Source, log logger.Logger) float64 {
	raw := samplerRateOption.Get(src)
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(rate) || rate <= 0 || rate > 1 {
		if log != nil {
			log.Warn("invalid sampler rate, must be in (0, 1]; sampling disabled", err,
				map[string]interface{}{
					"rate":     raw,
					"fallback": SamplerRateFallback,
				})
		}
		return SamplerRateFallback
	}
	return rate
}
