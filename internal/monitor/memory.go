package monitor

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/mem"
)

// ErrInsufficientMemory is returned when a dataset would not fit in memory.
var ErrInsufficientMemory = errors.New("insufficient memory")

// datasetOverhead approximates how many bytes of samples a byte of CSV
// turns into once parsed.
const datasetOverhead = 4

type MemoryMonitor struct {
	collect func() (*mem.VirtualMemoryStat, error)
}

func NewMemoryMonitor() *MemoryMonitor {
	return &MemoryMonitor{collect: mem.VirtualMemory}
}

// State returns the current virtual memory usage.
func (m *MemoryMonitor) State() (*MemoryState, error) {
	v, err := m.collect()
	if err != nil {
		return nil, err
	}

	return &MemoryState{
		UsedBytes:      v.Used,
		TotalBytes:     v.Total,
		AvailableBytes: v.Available,
		UsagePercent:   v.UsedPercent,
	}, nil
}

// CheckFits reports whether a dataset file of size bytes can be loaded
// entirely into memory.
func (m *MemoryMonitor) CheckFits(size uint64) error {
	state, err := m.State()
	if err != nil {
		return fmt.Errorf("failed to read memory state: %w", err)
	}

	need := size * datasetOverhead
	if need > state.AvailableBytes {
		return fmt.Errorf("%w: dataset needs about %s, %s available",
			ErrInsufficientMemory, humanize.IBytes(need), humanize.IBytes(state.AvailableBytes))
	}
	return nil
}
