package session

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cashsim/feed"
)

var _ = Describe("Builder", func() {
	It("should panic when the server address is not set", func() {
		Expect(func() {
			MakeBuilder().Build()
		}).To(Panic())
	})

	It("should panic when a monitor port is set without monitoring", func() {
		Expect(func() {
			MakeBuilder().
				WithServerAddr("localhost:8080").
				WithoutMonitoring().
				WithMonitorPort(3001).
				Build()
		}).To(Panic())
	})

	It("should panic when an output name is set without recording", func() {
		Expect(func() {
			MakeBuilder().
				WithServerAddr("localhost:8080").
				WithoutRecording().
				WithOutputFileName("out").
				Build()
		}).To(Panic())
	})

	It("should build a session with an ID", func() {
		s := MakeBuilder().
			WithServerAddr("localhost:8080").
			WithoutMonitoring().
			WithoutRecording().
			Build()

		Expect(s.ID()).NotTo(BeEmpty())
		Expect(s.monitor).To(BeNil())
		Expect(s.recorder).To(BeNil())
	})

	It("should carry the configured tokens and alert types", func() {
		tokens := feed.Tokens{Handshake: "hi", KeepAlive: "hb", Ack: "go"}

		s := MakeBuilder().
			WithServerAddr("localhost:8080").
			WithoutMonitoring().
			WithoutRecording().
			WithTokens(tokens).
			WithAlertTypes([]string{"vandalized"}).
			Build()

		Expect(s.tokens).To(Equal(tokens))
		Expect(s.alertTypes).To(Equal([]string{"vandalized"}))
	})

	It("should create a monitor when monitoring is on", func() {
		s := MakeBuilder().
			WithServerAddr("localhost:8080").
			WithoutRecording().
			Build()

		Expect(s.monitor).NotTo(BeNil())
	})
})
