// Package monitoring serves a live document over HTTP so that it can be
// inspected while a lanemap command runs.
package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/sarchlab/lanemap/authoring"
	"github.com/sarchlab/lanemap/mapdata"
	"github.com/sarchlab/lanemap/monitoring/web"
	"github.com/shirou/gopsutil/process"
	"github.com/sirupsen/logrus"
	"github.com/syifan/goseth"
)

// Monitor turns an editor into a server that allows external inspection of
// the edited document.
type Monitor struct {
	lock            sync.Mutex
	editor          *authoring.Editor
	portNumber      int
	profileDuration time.Duration
	logger          logrus.FieldLogger
}

// NewMonitor creates a new Monitor over the editor.
func NewMonitor(editor *authoring.Editor) *Monitor {
	return &Monitor{
		editor:          editor,
		profileDuration: time.Second,
		logger:          logrus.StandardLogger(),
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

// WithProfileDuration sets how long the CPU is sampled for a profile.
func (m *Monitor) WithProfileDuration(d time.Duration) *Monitor {
	m.profileDuration = d
	return m
}

// WithLogger sets the logger that reports failed requests.
func (m *Monitor) WithLogger(logger logrus.FieldLogger) *Monitor {
	m.logger = logger
	return m
}

// Handler returns the routes of the monitor.
func (m *Monitor) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/document", m.describeDocument)
	r.HandleFunc("/api/categories", m.listCategories)
	r.HandleFunc("/api/entities/{category}", m.listEntities)
	r.HandleFunc("/api/entity/{category}/{id}", m.entityDetails)
	r.HandleFunc("/api/next_id/{category}", m.nextID)
	r.HandleFunc("/api/backfill", m.backfill).Methods(http.MethodPost)
	r.HandleFunc("/api/duplicates/{category}", m.listDuplicates)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)
	r.PathPrefix("/").Handler(http.FileServer(web.GetAssets()))

	return r
}

// StartServer starts the monitor as a web server and returns its URL.
func (m *Monitor) StartServer() (string, error) {
	listener, err := net.Listen("tcp", m.listenAddress())
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring document with %s\n", url)

	go func() {
		err := http.Serve(listener, m.Handler())
		if err != nil {
			m.logger.WithError(err).Error("monitor stopped")
		}
	}()

	return url, nil
}

func (m *Monitor) listenAddress() string {
	if m.portNumber >= 1000 {
		return ":" + strconv.Itoa(m.portNumber)
	}

	return ":0"
}

type documentRsp struct {
	Name       string   `json:"name"`
	Mode       string   `json:"mode"`
	Categories []string `json:"categories"`
	HasHolder  bool     `json:"has_holder"`
}

func (m *Monitor) describeDocument(w http.ResponseWriter, _ *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	doc := m.editor.Document()
	rsp := documentRsp{
		Name:       doc.Name(),
		Mode:       m.editor.Mode().String(),
		Categories: []string{},
		HasHolder:  doc.HolderNode() != nil,
	}

	for _, c := range m.editor.Categories() {
		rsp.Categories = append(rsp.Categories, string(c))
	}

	m.writeJSON(w, rsp)
}

type categoryRsp struct {
	Category string `json:"category"`
	Prefix   string `json:"prefix"`
	Count    int    `json:"count"`
}

func (m *Monitor) listCategories(w http.ResponseWriter, _ *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	registry := m.editor.Registry()
	rsp := []categoryRsp{}

	for _, c := range registry.Categories() {
		prefix, _ := registry.Prefix(c)
		rsp = append(rsp, categoryRsp{
			Category: string(c),
			Prefix:   prefix,
			Count:    len(m.editor.Document().Entities(c)),
		})
	}

	m.writeJSON(w, rsp)
}

type entityRsp struct {
	ID        string `json:"id"`
	Node      string `json:"node"`
	Spawnable bool   `json:"spawnable"`
	DenySpawn bool   `json:"deny_spawn"`
	NumPoints int    `json:"num_points"`
}

func (m *Monitor) listEntities(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	cat, ok := m.categoryOr404(w, r)
	if !ok {
		return
	}

	doc := m.editor.Document()
	rsp := []entityRsp{}

	for _, e := range doc.Entities(cat) {
		item := entityRsp{ID: e.ID()}

		if n := doc.NodeOf(e); n != nil {
			item.Node = n.Name()
		}

		if s, ok := e.(mapdata.Spawnable); ok {
			item.Spawnable = s.IsSpawnable()
		}

		if d, ok := e.(mapdata.SpawnDenier); ok {
			item.DenySpawn = d.DenySpawn()
		}

		if p, ok := e.(mapdata.PointHolder); ok {
			item.NumPoints = len(p.Points())
		}

		rsp = append(rsp, item)
	}

	m.writeJSON(w, rsp)
}

func (m *Monitor) entityDetails(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	cat, ok := m.categoryOr404(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]

	entities := mapdata.EntitiesWithID(m.editor.Document(), cat, id)
	if len(entities) == 0 {
		http.Error(w, "Entity not found", http.StatusNotFound)
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(entities[0])
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	if err != nil {
		m.logger.WithError(err).WithField("id", id).
			Error("failed to serialize entity")
	}
}

func (m *Monitor) nextID(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	cat, ok := m.categoryOr404(w, r)
	if !ok {
		return
	}

	id, err := m.editor.NextID(cat)
	if err != nil {
		m.fail(w, err)
		return
	}

	m.writeJSON(w, map[string]string{"next_id": id})
}

type assignmentRsp struct {
	Category string `json:"category"`
	OldID    string `json:"old_id"`
	NewID    string `json:"new_id"`
}

type backfillRsp struct {
	Scanned  int             `json:"scanned"`
	Assigned []assignmentRsp `json:"assigned"`
	Error    string          `json:"error,omitempty"`
}

func (m *Monitor) backfill(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	report, err := m.editor.OnDocumentLoaded(r.Context())

	rsp := backfillRsp{
		Scanned:  report.Scanned,
		Assigned: []assignmentRsp{},
	}

	for _, a := range report.Assignments {
		rsp.Assigned = append(rsp.Assigned, assignmentRsp{
			Category: string(a.Category),
			OldID:    a.OldID,
			NewID:    a.NewID,
		})
	}

	if err != nil {
		m.logger.WithError(err).Error("backfill failed")
		rsp.Error = err.Error()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
	}

	m.writeJSON(w, rsp)
}

type duplicateRsp struct {
	ID    string   `json:"id"`
	Nodes []string `json:"nodes"`
}

func (m *Monitor) listDuplicates(w http.ResponseWriter, r *http.Request) {
	m.lock.Lock()
	defer m.lock.Unlock()

	cat, ok := m.categoryOr404(w, r)
	if !ok {
		return
	}

	doc := m.editor.Document()
	rsp := []duplicateRsp{}

	for _, d := range m.editor.Duplicates(cat) {
		item := duplicateRsp{ID: d.ID, Nodes: []string{}}

		for _, e := range d.Entities {
			if n := doc.NodeOf(e); n != nil {
				item.Nodes = append(item.Nodes, n.Name())
			}
		}

		rsp = append(rsp, item)
	}

	m.writeJSON(w, rsp)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		m.fail(w, err)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		m.fail(w, err)
		return
	}

	memorySize, err := proc.MemoryInfo()
	if err != nil {
		m.fail(w, err)
		return
	}

	m.writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, r *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		m.fail(w, err)
		return
	}

	sleep(r.Context(), m.profileDuration)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		m.fail(w, err)
		return
	}

	m.writeJSON(w, prof)
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (m *Monitor) categoryOr404(
	w http.ResponseWriter,
	r *http.Request,
) (mapdata.Category, bool) {
	cat := mapdata.Category(mux.Vars(r)["category"])

	if _, ok := m.editor.Registry().Prefix(cat); !ok {
		http.Error(w, "Category not found", http.StatusNotFound)
		return "", false
	}

	return cat, true
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		m.logger.WithError(err).Error("failed to write response")
	}
}

func (m *Monitor) fail(w http.ResponseWriter, err error) {
	m.logger.WithError(err).Error("monitor request failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
