package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/cashsim/session"
)

var (
	playServerAddr  string
	playMonitorPort int
	playNoMonitor   bool
	playNoRecord    bool
	playOutput      string
	playPaused      bool
	playOpen        bool
	playSettings    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a simulation and pace the playback of its event feed.",
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := loadSettings(playSettings)
		if err != nil {
			return err
		}

		b := session.MakeBuilder().
			WithServerAddr(serverAddr()).
			WithTokens(s.Tokens).
			WithAlertTypes(s.AlertTypes)

		if playNoMonitor {
			b = b.WithoutMonitoring()
		} else if playMonitorPort > 0 {
			b = b.WithMonitorPort(playMonitorPort)
		}

		if playNoRecord {
			b = b.WithoutRecording()
		} else if playOutput != "" {
			b = b.WithOutputFileName(playOutput)
		}

		if playPaused {
			b = b.WithStartPaused()
		}

		sess := b.Build()

		if playOpen {
			go openMonitor(sess)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return sess.Run(ctx)
	},
}

// openMonitor waits for the monitoring server to come up and opens it in
// the browser.
func openMonitor(sess *session.Session) {
	for i := 0; i < 50; i++ {
		if sess.MonitorAddr != "" {
			_ = browser.OpenURL(sess.MonitorAddr)
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Fprintln(os.Stderr, "monitoring server did not come up, not opening browser")
}

func serverAddr() string {
	if playServerAddr != "" {
		return playServerAddr
	}

	if addr := os.Getenv("CASHSIM_SERVER"); addr != "" {
		return addr
	}

	return "localhost:8080"
}

func init() {
	playCmd.Flags().StringVar(&playServerAddr, "server", "",
		"simulation server address (default $CASHSIM_SERVER or localhost:8080)")
	playCmd.Flags().IntVar(&playMonitorPort, "monitor-port", 0,
		"port of the monitoring server (default random)")
	playCmd.Flags().BoolVar(&playNoMonitor, "no-monitor", false,
		"do not start the monitoring server")
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false,
		"do not record applied events to a database")
	playCmd.Flags().StringVar(&playOutput, "output", "",
		"output file name for the recording database")
	playCmd.Flags().BoolVar(&playPaused, "paused", false,
		"start the playback paused")
	playCmd.Flags().BoolVar(&playOpen, "open", false,
		"open the monitoring page in the browser")
	playCmd.Flags().StringVar(&playSettings, "settings", "",
		"YAML settings file with feed tokens and alert types")

	rootCmd.AddCommand(playCmd)
}
