package playback

// SplitAtBoundary splits an ordered batch at the first hour boundary. The
// boundary is the first index whose time differs from the first event's
// time. Events with equal time are never split apart, and the order within
// both halves is exactly the order received.
//
// An empty remainder is the signal that the batch is fully drained and the
// sender can be asked for more data.
func SplitAtBoundary(batch []Event) (thisHour, remainder []Event) {
	if len(batch) == 0 {
		return nil, nil
	}

	first := batch[0].Time
	for i := 1; i < len(batch); i++ {
		if batch[i].Time != first {
			return batch[:i], batch[i:]
		}
	}

	return batch, nil
}
