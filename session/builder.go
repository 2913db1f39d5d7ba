// Package session assembles one playback session: configuration fetch,
// feed connection, scheduler, monitoring, and recording.
package session

import (
	"github.com/rs/xid"

	"github.com/sarchlab/cashsim/datarecording"
	"github.com/sarchlab/cashsim/feed"
	"github.com/sarchlab/cashsim/monitoring"
	"github.com/sarchlab/cashsim/playback"
)

// Builder can be used to build a playback session.
type Builder struct {
	serverAddr     string
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
	alertTypes     []string
	tokens         feed.Tokens
	startPaused    bool
}

// MakeBuilder creates a new builder with monitoring and recording on.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:   true,
		recordingOn: true,
		alertTypes:  playback.DefaultAlertTypes,
		tokens:      feed.DefaultTokens(),
	}
}

// WithServerAddr sets the simulation server address, e.g.
// "localhost:8080".
func (b Builder) WithServerAddr(addr string) Builder {
	b.serverAddr = addr
	return b
}

// WithoutMonitoring sets the session to not start a monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithoutRecording sets the session to not record applied events.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithAlertTypes replaces the event types classified as alerts.
func (b Builder) WithAlertTypes(types []string) Builder {
	b.alertTypes = types
	return b
}

// WithTokens replaces the feed control tokens.
func (b Builder) WithTokens(tokens feed.Tokens) Builder {
	b.tokens = tokens
	return b
}

// WithStartPaused makes the playback begin paused.
func (b Builder) WithStartPaused() Builder {
	b.startPaused = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.serverAddr == "" {
		panic("server address must be set")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the session.
func (b Builder) Build() *Session {
	b.parametersMustBeValid()

	s := &Session{
		serverAddr:  b.serverAddr,
		tokens:      b.tokens,
		alertTypes:  b.alertTypes,
		startPaused: b.startPaused,
	}

	s.id = xid.New().String()
	s.api = feed.NewAPI("http://" + b.serverAddr)

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "cashsim_playback_" + s.id
		}
		s.recorder = datarecording.New(outputPath)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
	}

	return s
}
