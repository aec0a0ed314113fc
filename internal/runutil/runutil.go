// internal/runutil/runutil.go
package runutil

// EffectiveWorkers returns the number of extraction workers for a process
// budget of threads. One slot is reserved for the writer, so threads-1
// workers run, never fewer than one.
func EffectiveWorkers(threads int) int {
	if threads-1 < 1 {
		return 1
	}
	return threads - 1
}

// Batches splits files into consecutive groups of at most size, preserving
// order. size <= 0 puts everything in a single batch.
func Batches(files []string, size int) [][]string {
	if len(files) == 0 {
		return nil
	}
	if size <= 0 || size >= len(files) {
		return [][]string{files}
	}
	out := make([][]string, 0, (len(files)+size-1)/size)
	for lo := 0; lo < len(files); lo += size {
		hi := lo + size
		if hi > len(files) {
			hi = len(files)
		}
		out = append(out, files[lo:hi:hi])
	}
	return out
}

// BatchSeed derives the sampling seed of batch idx from the run seed, so a
// batch samples the same way whichever worker picks it up.
func BatchSeed(seed int64, idx int) int64 { return seed + int64(idx) }
