package bytepacket

import (
	"fmt"

	"github.com/bytepacket/bytepacket/bytebuffer"
	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
)

// SizeStats keeps a distribution of packet payload sizes
//
// sizes up to bytebuffer.Capacity are tracked with 3 significant figures,
// which is exact for every size a buffer can hold
type SizeStats struct {
	h *hdrhistogram.Histogram
}

// NewSizeStats creates an empty SizeStats
func NewSizeStats() *SizeStats {
	return &SizeStats{hdrhistogram.New(1, bytebuffer.Capacity, 3)}
}

// Record adds a payload size to the distribution
func (s *SizeStats) Record(size int) error {
	if size < 0 || size > bytebuffer.Capacity {
		return errors.Errorf("size %d outside of [0, %d]", size, bytebuffer.Capacity)
	}

	return s.h.RecordValue(int64(size))
}

// RecordPacket adds the size of p to the distribution
func (s *SizeStats) RecordPacket(p *Packet) error { return s.Record(p.Size) }

// Count returns the number of recorded sizes
func (s *SizeStats) Count() int64 { return s.h.TotalCount() }

// Min returns the smallest recorded size
func (s *SizeStats) Min() int64 { return s.h.Min() }

// Max returns the largest recorded size
func (s *SizeStats) Max() int64 { return s.h.Max() }

// Mean returns the mean of the recorded sizes
func (s *SizeStats) Mean() float64 { return s.h.Mean() }

// Percentile returns the size at the passed percentile (0-100)
func (s *SizeStats) Percentile(p float64) int64 { return s.h.ValueAtQuantile(p) }

func (s *SizeStats) String() string {
	return fmt.Sprintf("count=%d min=%d max=%d mean=%.2f p50=%d p99=%d",
		s.Count(), s.Min(), s.Max(), s.Mean(), s.Percentile(50), s.Percentile(99))
}
