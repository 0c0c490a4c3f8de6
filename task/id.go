package task

// NextID returns the next task ID: one more than the highest existing ID,
// or 1 for an empty collection. No counter is persisted; the maximum is
// recomputed on each call. A consequence, accepted as intended behavior,
// is that deleting the highest-ID task frees that ID for the next create.
func NextID(tasks []Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
