package playback

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cashsim/atm"
)

type seqIDGenerator struct {
	next int
}

func (g *seqIDGenerator) Generate() string {
	g.next++
	return strconv.Itoa(g.next)
}

func balanceOf(v float64) *float64 {
	return &v
}

var _ = Describe("Projector", func() {
	var (
		projector *Projector
		entities  *atm.Set
	)

	BeforeEach(func() {
		projector = NewProjector(DefaultAlertTypes).
			WithIDGenerator(&seqIDGenerator{})
		entities = atm.NewSet([]*atm.Entity{
			{Name: "1", RefillAmount: 1000, CurrentAmount: 1000,
				OperationalState: atm.Operational},
			{Name: "2", RefillAmount: 1000, CurrentAmount: 1000,
				OperationalState: atm.Operational},
		})
	})

	It("should let the later balance event win, regardless of value", func() {
		_, _ = projector.Project(entities, []Event{
			{EventType: "withdrawal", Time: 1000, Atm: "1",
				Balance: balanceOf(900)},
			{EventType: "withdrawal", Time: 1000, Atm: "1",
				Balance: balanceOf(950)},
		})

		e, _ := entities.ByName("1")
		Expect(e.CurrentAmount).To(Equal(950.0))
	})

	It("should let the later state event win", func() {
		_, _ = projector.Project(entities, []Event{
			{EventType: "out-of-money", Time: 1000, Atm: "1",
				State: "OutOfMoney"},
			{EventType: "refill", Time: 1000, Atm: "1",
				State: atm.Operational},
		})

		e, _ := entities.ByName("1")
		Expect(e.OperationalState).To(Equal(atm.Operational))
	})

	It("should keep the identity of untouched entities", func() {
		before, _ := entities.ByName("2")

		updated, _ := projector.Project(entities, []Event{
			{EventType: "withdrawal", Time: 1000, Atm: "1",
				Balance: balanceOf(900)},
		})

		after, _ := entities.ByName("2")
		Expect(after).To(BeIdenticalTo(before))
		Expect(updated).To(HaveLen(1))
		Expect(updated[0].Name).To(Equal(atm.Name("1")))
	})

	It("should not mutate the prior entity copy", func() {
		before, _ := entities.ByName("1")

		_, _ = projector.Project(entities, []Event{
			{EventType: "withdrawal", Time: 1000, Atm: "1",
				Balance: balanceOf(900)},
		})

		Expect(before.CurrentAmount).To(Equal(1000.0))
	})

	It("should tag alerts with fresh IDs, in arrival order", func() {
		_, alerts := projector.Project(entities, []Event{
			{EventType: "out-of-money", Time: 1000, Atm: "1"},
			{EventType: "withdrawal", Time: 1000, Atm: "2",
				Balance: balanceOf(500)},
			{EventType: "not-enough-money", Time: 1000, Atm: "2"},
		})

		Expect(alerts).To(HaveLen(2))
		Expect(alerts[0].EventType).To(Equal("out-of-money"))
		Expect(alerts[0].ID).To(Equal("1"))
		Expect(alerts[1].EventType).To(Equal("not-enough-money"))
		Expect(alerts[1].ID).To(Equal("2"))
	})

	It("should never tag plain balance events", func() {
		_, alerts := projector.Project(entities, []Event{
			{EventType: "withdrawal", Time: 1000, Atm: "1",
				Balance: balanceOf(500)},
		})

		Expect(alerts).To(BeEmpty())

		e, _ := entities.ByName("1")
		Expect(e.CurrentAmount).To(Equal(500.0))
	})

	It("should silently drop events for unknown machines", func() {
		updated, alerts := projector.Project(entities, []Event{
			{EventType: "withdrawal", Time: 1000, Atm: "99",
				Balance: balanceOf(100)},
		})

		Expect(updated).To(BeEmpty())
		Expect(alerts).To(BeEmpty())
		Expect(entities.Len()).To(Equal(2))
	})

	It("should classify only the configured alert types", func() {
		projector = NewProjector([]string{"vandalized"}).
			WithIDGenerator(&seqIDGenerator{})

		_, alerts := projector.Project(entities, []Event{
			{EventType: "out-of-money", Time: 1000, Atm: "1"},
			{EventType: "vandalized", Time: 1000, Atm: "2"},
		})

		Expect(alerts).To(HaveLen(1))
		Expect(alerts[0].EventType).To(Equal("vandalized"))
	})
})
