package ports

// ProgressSink receives progress and diagnostics from a resolution run.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	// Update reports progress. Implementations may drop updates that arrive
	// faster than their throttle interval unless force is set.
	Update(msg string, current, total int, force bool)

	// Clear removes any progress indicator.
	Clear()

	// ReportMissing reports an asset file that could not be found.
	// It is called once per distinct path at the end of a run.
	ReportMissing(path string)
}
