package playback

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func batchAt(times ...int64) []Event {
	batch := make([]Event, 0, len(times))
	for _, t := range times {
		batch = append(batch, Event{EventType: "withdrawal", Time: t, Atm: "1"})
	}

	return batch
}

var _ = Describe("SplitAtBoundary", func() {
	It("should split at the first hour boundary", func() {
		t1 := int64(1000)
		t2 := int64(2000)
		t3 := int64(3000)
		batch := batchAt(t1, t1, t2, t2, t2, t3)

		thisHour, remainder := SplitAtBoundary(batch)

		Expect(thisHour).To(Equal(batch[:2]))
		Expect(remainder).To(Equal(batch[2:]))
	})

	It("should return the whole batch when no boundary exists", func() {
		batch := batchAt(1000, 1000, 1000)

		thisHour, remainder := SplitAtBoundary(batch)

		Expect(thisHour).To(Equal(batch))
		Expect(remainder).To(BeEmpty())
	})

	It("should keep the received order within both halves", func() {
		batch := []Event{
			{EventType: "withdrawal", Time: 1000, Atm: "a"},
			{EventType: "refill", Time: 1000, Atm: "b"},
			{EventType: "withdrawal", Time: 2000, Atm: "c"},
			{EventType: "withdrawal", Time: 2000, Atm: "d"},
		}

		thisHour, remainder := SplitAtBoundary(batch)

		Expect(thisHour[0].Atm).To(Equal(batch[0].Atm))
		Expect(thisHour[1].Atm).To(Equal(batch[1].Atm))
		Expect(remainder[0].Atm).To(Equal(batch[2].Atm))
		Expect(remainder[1].Atm).To(Equal(batch[3].Atm))
	})

	It("should handle an empty batch", func() {
		thisHour, remainder := SplitAtBoundary(nil)

		Expect(thisHour).To(BeEmpty())
		Expect(remainder).To(BeEmpty())
	})
})
