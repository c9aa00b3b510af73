package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region clock-jitter

// ClockJitter samples the delta between consecutive monotonic clock reads.
// The jitter comes from clock granularity, interrupts, and preemption.
type ClockJitter struct{}

// NewClockJitter creates a clock-jitter collector.
func NewClockJitter() *ClockJitter {
	return &ClockJitter{}
}

// Name returns the source name.
func (c *ClockJitter) Name() string { return "clock_jitter" }

// Collect times n back-to-back clock reads.
func (c *ClockJitter) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(c.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, 0, n)
	prev := time.Now()
	for len(out) < n {
		now := time.Now()
		out = append(out, uint64(now.Sub(prev)))
		prev = now
	}
	return out, nil
}

// #endregion clock-jitter

// #region scheduler-yield

// SchedulerYield times runtime.Gosched round trips. Preemption and runqueue
// contention show up as latency variation.
type SchedulerYield struct{}

// NewSchedulerYield creates a scheduler-yield collector.
func NewSchedulerYield() *SchedulerYield {
	return &SchedulerYield{}
}

// Name returns the source name.
func (c *SchedulerYield) Name() string { return "scheduler_yield" }

// Collect times n yield round trips.
func (c *SchedulerYield) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(c.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, 0, n)
	for len(out) < n {
		t0 := time.Now()
		runtime.Gosched()
		out = append(out, uint64(time.Since(t0)))
	}
	return out, nil
}

// #endregion scheduler-yield

// #region channel-roundtrip

// ChannelRoundTrip times unbuffered channel ping-pong against a peer
// goroutine. The peer lives only for the duration of one Collect call.
type ChannelRoundTrip struct{}

// NewChannelRoundTrip creates a channel-roundtrip collector.
func NewChannelRoundTrip() *ChannelRoundTrip {
	return &ChannelRoundTrip{}
}

// Name returns the source name.
func (c *ChannelRoundTrip) Name() string { return "channel_roundtrip" }

// Collect times n ping-pong round trips.
func (c *ChannelRoundTrip) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(c.Name(), n); err != nil {
		return nil, err
	}
	ping := make(chan struct{})
	pong := make(chan struct{})
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-ping:
				pong <- struct{}{}
			case <-done:
				return
			}
		}
	}()

	out := make(stream.Stream, 0, n)
	for len(out) < n {
		t0 := time.Now()
		ping <- struct{}{}
		<-pong
		out = append(out, uint64(time.Since(t0)))
	}
	return out, nil
}

// #endregion channel-roundtrip

// #region memory-walk

// MemoryWalk times pseudo-random reads across a buffer large enough to miss
// cache. Index selection uses an LCG so the access pattern itself carries no
// timing information.
type MemoryWalk struct {
	buf  []uint64
	lcg  uint64
	sink uint64
}

// DefaultMemoryWalkBytes sizes the walk buffer well past typical L2.
const DefaultMemoryWalkBytes = 16 * 1024 * 1024

// NewMemoryWalk allocates a walk buffer of the given byte size.
func NewMemoryWalk(sizeBytes int) *MemoryWalk {
	if sizeBytes <= 0 {
		sizeBytes = DefaultMemoryWalkBytes
	}
	m := &MemoryWalk{
		buf: make([]uint64, sizeBytes/8),
		lcg: uint64(time.Now().UnixNano()) | 1,
	}
	for i := range m.buf {
		m.buf[i] = uint64(i)*3 + 7
	}
	return m
}

// Name returns the source name.
func (m *MemoryWalk) Name() string { return "memory_walk" }

// Collect times n pairs of random buffer reads.
func (m *MemoryWalk) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(m.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, 0, n)
	for len(out) < n {
		m.lcg = m.lcg*6364136223846793005 + 1
		idx1 := (m.lcg >> 16) % uint64(len(m.buf))
		m.lcg = m.lcg*6364136223846793005 + 1
		idx2 := (m.lcg >> 16) % uint64(len(m.buf))

		t0 := time.Now()
		m.sink += m.buf[idx1]
		m.sink += m.buf[idx2]
		out = append(out, uint64(time.Since(t0)))
	}
	return out, nil
}

// #endregion memory-walk

// #region disk-sync

// DiskSync times small write+sync cycles against a scratch file. Owns the
// file handle for its lifetime; Close removes the scratch file.
type DiskSync struct {
	file *os.File
	path string
	blk  []byte
}

// NewDiskSync creates a scratch file under dir (os.TempDir when empty).
func NewDiskSync(dir string) (*DiskSync, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	f, err := os.CreateTemp(dir, "disk_sync_*.bin")
	if err != nil {
		return nil, fmt.Errorf("disk_sync: create scratch file: %w", err)
	}
	return &DiskSync{file: f, path: f.Name(), blk: make([]byte, 512)}, nil
}

// Name returns the source name.
func (d *DiskSync) Name() string { return "disk_sync" }

// Collect times n write+sync cycles. I/O errors mid-collection end the
// stream early; the samples gathered so far are still returned.
func (d *DiskSync) Collect(n int) (stream.Stream, error) {
	if err := checkRequest(d.Name(), n); err != nil {
		return nil, err
	}
	out := make(stream.Stream, 0, n)
	for len(out) < n {
		if _, err := d.file.Seek(0, 0); err != nil {
			break
		}
		t0 := time.Now()
		if _, err := d.file.Write(d.blk); err != nil {
			break
		}
		if err := d.file.Sync(); err != nil {
			break
		}
		out = append(out, uint64(time.Since(t0)))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w: no write cycle completed", d.Name(), stream.ErrCollectionFailed)
	}
	return out, nil
}

// Close releases the scratch file.
func (d *DiskSync) Close() error {
	if err := d.file.Close(); err != nil {
		os.Remove(d.path)
		return fmt.Errorf("disk_sync: close: %w", err)
	}
	if err := os.Remove(d.path); err != nil {
		return fmt.Errorf("disk_sync: remove %s: %w", filepath.Base(d.path), err)
	}
	return nil
}

// #endregion disk-sync
