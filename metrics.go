package soa

// Metrics returns a snapshot of store statistics.
func (c *core) Metrics() StoreMetrics {
	var used uintptr
	for _, l := range c.layouts {
		used += uintptr(c.size) * l.Size
	}
	return StoreMetrics{
		Len:           c.size,
		Cap:           c.capacity,
		Arrays:        len(c.cols),
		BytesReserved: c.total,
		BytesUsed:     used,
		Reallocations: c.reallocs,
		Backend:       c.alloc.backend(),
		Utilization:   c.Utilization(),
	}
}

// Utilization returns the ratio of records to capacity (0.0 to 1.0).
// Returns 0.0 if the store owns no block.
func (c *core) Utilization() float64 {
	if c.capacity == 0 {
		return 0
	}
	return float64(c.size) / float64(c.capacity)
}

// StoreMetrics contains statistical information about a store.
type StoreMetrics struct {
	Len           int     // Live records
	Cap           int     // Record capacity of the current block
	Arrays        int     // Number of parallel arrays
	BytesReserved uintptr // Planned size of the current block
	BytesUsed     uintptr // Bytes occupied by live elements, padding excluded
	Reallocations uint64  // Blocks allocated over the store's lifetime
	Backend       Backend // Where blocks are allocated
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
}
