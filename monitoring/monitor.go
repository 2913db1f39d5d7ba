// Package monitoring turns a playback session into a small web server,
// allowing external control of the pacing and inspection of the projected
// state.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	// Enable profiling
	_ "net/http/pprof"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/cashsim/atm"
	"github.com/sarchlab/cashsim/metrics"
	"github.com/sarchlab/cashsim/playback"
)

// A Monitor serves the control and inspection API of one playback
// session.
type Monitor struct {
	scheduler  *playback.Scheduler
	tiers      playback.TierSelector
	portNumber int

	componentsLock sync.Mutex
	components     map[string]any
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		components: make(map[string]any),
	}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterScheduler registers the scheduler driving the session.
func (m *Monitor) RegisterScheduler(s *playback.Scheduler) {
	m.scheduler = s
}

// RegisterTierSelector sets the selector used for the entity snapshots.
func (m *Monitor) RegisterTierSelector(t playback.TierSelector) {
	m.tiers = t
}

// RegisterComponent registers a named component for field inspection via
// the /api/component endpoint.
func (m *Monitor) RegisterComponent(name string, c any) {
	m.componentsLock.Lock()
	defer m.componentsLock.Unlock()

	m.components[name] = c
}

// StartServer starts the monitor as a web server with a custom port if
// wanted. It returns the address the server listens on.
func (m *Monitor) StartServer() string {
	r := mux.NewRouter()

	r.HandleFunc("/api/pause", m.pause)
	r.HandleFunc("/api/resume", m.resume)
	r.HandleFunc("/api/accelerate", m.accelerate)
	r.HandleFunc("/api/decelerate", m.decelerate)
	r.HandleFunc("/api/speed", m.speed)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/state", m.state)
	r.HandleFunc("/api/entities", m.entities)
	r.HandleFunc("/api/alerts", m.alerts)
	r.HandleFunc("/api/component/{name}", m.componentDetails)
	r.HandleFunc("/api/resource", m.resources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.Handle("/metrics", promhttp.HandlerFor(
		metrics.Registry, promhttp.HandlerOpts{}))

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	addr := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring playback with %s\n", addr)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()

	return addr
}

func (m *Monitor) pause(w http.ResponseWriter, _ *http.Request) {
	m.scheduler.Pause()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) resume(w http.ResponseWriter, _ *http.Request) {
	m.scheduler.Resume()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) accelerate(w http.ResponseWriter, _ *http.Request) {
	m.scheduler.Accelerate()
	m.writeSpeed(w)
}

func (m *Monitor) decelerate(w http.ResponseWriter, _ *http.Request) {
	m.scheduler.Decelerate()
	m.writeSpeed(w)
}

func (m *Monitor) speed(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get("value")
	if value == "" {
		m.writeSpeed(w)
		return
	}

	speed, err := strconv.ParseFloat(value, 64)
	if err != nil || !m.scheduler.SetSpeed(speed) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "invalid speed value %q", value)
		return
	}

	m.writeSpeed(w)
}

func (m *Monitor) writeSpeed(w http.ResponseWriter) {
	fmt.Fprintf(w, "{\"speed\":%g,\"interval_ms\":%d}",
		m.scheduler.Speed(), m.scheduler.Interval().Milliseconds())
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%d}", m.scheduler.Now())
}

type stateRsp struct {
	Now        int64   `json:"now"`
	Paused     bool    `json:"paused"`
	Speed      float64 `json:"speed"`
	IntervalMs int64   `json:"interval_ms"`
	AlertCount int     `json:"alert_count"`
}

func (m *Monitor) state(w http.ResponseWriter, _ *http.Request) {
	rsp := stateRsp{
		Now:        m.scheduler.Now(),
		Paused:     m.scheduler.Paused(),
		Speed:      m.scheduler.Speed(),
		IntervalMs: m.scheduler.Interval().Milliseconds(),
		AlertCount: len(m.scheduler.Alerts()),
	}

	writeJSON(w, rsp)
}

type entityRsp struct {
	Name             atm.Name     `json:"name"`
	Location         atm.Location `json:"location"`
	RefillAmount     float64      `json:"refillAmount"`
	CurrentAmount    float64      `json:"currentAmount"`
	OperationalState string       `json:"operationalState"`
	Tier             string       `json:"tier"`
	Alert            bool         `json:"alert"`
}

func (m *Monitor) entities(w http.ResponseWriter, _ *http.Request) {
	all := m.scheduler.Entities()

	rsp := make([]entityRsp, 0, len(all))
	for _, e := range all {
		tier, alert := m.tiers.SelectFor(e)
		rsp = append(rsp, entityRsp{
			Name:             e.Name,
			Location:         e.Location,
			RefillAmount:     e.RefillAmount,
			CurrentAmount:    e.CurrentAmount,
			OperationalState: e.OperationalState,
			Tier:             tier.String(),
			Alert:            alert,
		})
	}

	writeJSON(w, rsp)
}

func (m *Monitor) alerts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, m.scheduler.Alerts())
}

func (m *Monitor) componentDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	m.componentsLock.Lock()
	component, ok := m.components[name]
	m.componentsLock.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Component not found"))
		dieOnErr(err)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(component)
	serializer.SetMaxDepth(1)
	err := serializer.Serialize(w)

	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) resources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(data)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
