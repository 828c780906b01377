package batch

// BatchBuilderOption is a functional option for configuring a Batch.
type BatchBuilderOption func(*batch)

// WithWorkers sets the worker pool size.
//
// Parameters:
//   - n: number of workers (values < 1 become 1)
//
// Returns:
//   - BatchBuilderOption: option function to apply
func WithWorkers(n int) BatchBuilderOption {
	return func(b *batch) {
		b.workers = max(n, 1)
	}
}

// WithChunkSize sets how many objects one task packs. Frames with at most this many
// visible objects are packed on the calling goroutine.
//
// Parameters:
//   - n: objects per task (values < 1 become 1)
//
// Returns:
//   - BatchBuilderOption: option function to apply
func WithChunkSize(n int) BatchBuilderOption {
	return func(b *batch) {
		b.chunkSize = max(n, 1)
	}
}

// WithCulling enables or disables frustum culling.
//
// Parameters:
//   - enabled: false packs every object
//
// Returns:
//   - BatchBuilderOption: option function to apply
func WithCulling(enabled bool) BatchBuilderOption {
	return func(b *batch) {
		b.culling = enabled
	}
}
