package playback

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	var policy *Policy

	BeforeEach(func() {
		policy = NewPolicy()
	})

	It("should dispatch once per second at speed 1", func() {
		Expect(policy.Interval()).To(Equal(1000 * time.Millisecond))
	})

	It("should quarter the interval after two accelerations", func() {
		policy.Accelerate()
		policy.Accelerate()

		Expect(policy.Interval()).To(Equal(250 * time.Millisecond))
	})

	It("should double the interval after one deceleration", func() {
		policy.Decelerate()

		Expect(policy.Interval()).To(Equal(2000 * time.Millisecond))
	})

	It("should floor the interval to whole milliseconds", func() {
		Expect(policy.SetSpeed(3)).To(BeTrue())

		Expect(policy.Interval()).To(Equal(333 * time.Millisecond))
	})

	It("should reject zero, negative, and non-finite speeds", func() {
		Expect(policy.SetSpeed(0)).To(BeFalse())
		Expect(policy.SetSpeed(-1)).To(BeFalse())
		Expect(policy.SetSpeed(math.NaN())).To(BeFalse())
		Expect(policy.SetSpeed(math.Inf(1))).To(BeFalse())

		Expect(policy.Speed()).To(Equal(1.0))
		Expect(policy.Interval()).To(Equal(1000 * time.Millisecond))
	})

	It("should freeze the interval while paused", func() {
		policy.Pause()

		Expect(policy.Interval()).To(Equal(Frozen))
	})

	It("should restore the exact prior interval on resume", func() {
		policy.Accelerate()
		before := policy.Interval()

		policy.Pause()
		policy.Resume()

		Expect(policy.Interval()).To(Equal(before))
		Expect(policy.Speed()).To(Equal(2.0))
	})
})
