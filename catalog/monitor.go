package catalog

// IndexMonitor provides hooks to observe an index build.
// Implement this interface to track progress and skipped records.
type IndexMonitor interface {
	Start(version string, total int)
	BatchDone(processed, total int)
	RecordSkipped(hash uint32, reason string)
	Finish(index *Index)
}

// noopMonitor is a no-op implementation of IndexMonitor
type noopMonitor struct{}

var _ IndexMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)           {}
func (n *noopMonitor) BatchDone(_, _ int)              {}
func (n *noopMonitor) RecordSkipped(_ uint32, _ string) {}
func (n *noopMonitor) Finish(_ *Index)                 {}
