package stream

import (
	"github.com/lk2023060901/bdf-garden-go/pkg/metrics"
)

// meteredStream 是一个 Stream 装饰器，把读写字节数与失败次数上报到指标。
type meteredStream struct {
	inner Stream
}

var _ Stream = (*meteredStream)(nil)

// Metered 包装 inner，使经过它的字节流量进入 Prometheus 指标。
// 读写语义与 inner 完全一致。
func Metered(inner Stream) Stream {
	return &meteredStream{inner: inner}
}

func (s *meteredStream) ReadFull(p []byte) error {
	if err := s.inner.ReadFull(p); err != nil {
		metrics.StreamErrors.WithLabelValues(metrics.DirectionRead).Inc()
		return err
	}
	metrics.StreamBytes.WithLabelValues(metrics.DirectionRead).Add(float64(len(p)))
	return nil
}

func (s *meteredStream) WriteFull(p []byte) error {
	if err := s.inner.WriteFull(p); err != nil {
		metrics.StreamErrors.WithLabelValues(metrics.DirectionWrite).Inc()
		return err
	}
	metrics.StreamBytes.WithLabelValues(metrics.DirectionWrite).Add(float64(len(p)))
	return nil
}
