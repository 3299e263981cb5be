package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/ctxlog"
	"github.com/pdrpinto/mazepath/maze"
)

type point = [2]int

func toPoint(p mazepath.Position) point { return point{p.X, p.Y} }

func toPoints(ps []mazepath.Position) []point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]point, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPoint(p))
	}
	return out
}

type cellJSON struct {
	Pos         point  `json:"pos"`
	G           int    `json:"g"`
	H           int    `json:"h"`
	F           int    `json:"f"`
	From        *point `json:"from,omitempty"`
	InFrontier  bool   `json:"in_frontier"`
	Finalized   bool   `json:"finalized"`
	InFinalPath bool   `json:"in_final_path"`
}

type snapshot struct {
	Step     int        `json:"step"`
	W        int        `json:"w"`
	H        int        `json:"h"`
	Maze     string     `json:"maze"`
	Open     []point    `json:"open,omitempty"`
	Closed   []point    `json:"closed,omitempty"`
	Current  *point     `json:"current,omitempty"`
	Start    point      `json:"start"`
	Goal     point      `json:"goal"`
	Done     bool       `json:"done"`
	Found    bool       `json:"found"`
	Path     []point    `json:"path,omitempty"`
	Cells    []cellJSON `json:"cells,omitempty"`
	Expanded int        `json:"expanded,omitempty"`
}

func cells(trace *mazepath.Trace) []cellJSON {
	out := make([]cellJSON, 0, trace.Len())
	for _, p := range trace.Positions() {
		c, _ := trace.Cell(p)
		cell := cellJSON{
			Pos: toPoint(p), G: c.G, H: c.H, F: c.F,
			InFrontier: c.InFrontier, Finalized: c.Finalized, InFinalPath: c.InFinalPath,
		}
		if c.HasPredecessor {
			from := toPoint(c.Predecessor)
			cell.From = &from
		}
		out = append(out, cell)
	}
	return out
}

// server holds the one maze being stepped through. A new /init replaces the
// maze and the stepper together.
type server struct {
	mu      sync.Mutex
	rand    *rand.Rand
	grid    *maze.Grid
	start   mazepath.Position
	goal    mazepath.Position
	stepper *mazepath.Stepper
}

func newServer(seed int64) *server {
	return &server{rand: rand.New(rand.NewSource(seed))}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/init", s.handleInit)
	mux.HandleFunc("/next", s.handleNext)
	mux.HandleFunc("/solve", s.handleSolve)
	return mux
}

func queryInt(r *http.Request, name string, def, floor int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && v >= floor {
		return v
	}
	return def
}

func (s *server) handleInit(w http.ResponseWriter, r *http.Request) {
	wVal := queryInt(r, "w", 40, 2)
	hVal := queryInt(r, "h", 24, 2)
	density := 0.55
	if v, err := strconv.ParseFloat(r.URL.Query().Get("density"), 64); err == nil && v >= 0 && v <= 1 {
		density = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := maze.Random(wVal, hVal, s.rand, density)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	start, goal := mazepath.Position{}, mazepath.Position{}
	for start == goal {
		start = mazepath.Position{X: s.rand.Intn(wVal), Y: s.rand.Intn(hVal)}
		goal = mazepath.Position{X: s.rand.Intn(wVal), Y: s.rand.Intn(hVal)}
	}
	stepper, err := mazepath.NewStepper(grid, start, goal, mazepath.WithTrace())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.grid, s.start, s.goal, s.stepper = grid, start, goal, stepper
	ctxlog.FromContext(r.Context()).Info("maze initialized", "w", wVal, "h", hVal, "density", density, "start", start, "goal", goal)

	writeJSON(w, map[string]any{"ok": true, "w": wVal, "h": hVal})
}

func (s *server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stepper == nil {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	st := s.stepper.Step()
	snap := s.base()
	snap.Step = st.StepIndex
	snap.Done, snap.Found = st.Done, st.Found
	if st.Expanded {
		current := toPoint(st.Current)
		snap.Current = &current
	}
	snap.Open = toPoints(st.Frontier)
	snap.Closed = toPoints(st.Closed)
	snap.Path = toPoints(st.Path)
	snap.Cells = cells(s.stepper.Trace())
	writeJSON(w, snap)
}

func (s *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stepper == nil {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	result := s.stepper.Result()
	snap := s.base()
	snap.Step = result.ExpandedNodes
	snap.Done, snap.Found = true, result.Found
	snap.Path = toPoints(result.Path)
	snap.Cells = cells(result.Trace)
	snap.Open = toPoints(result.Trace.Frontier())
	snap.Closed = toPoints(result.Trace.Finalized())
	snap.Expanded = result.ExpandedNodes
	writeJSON(w, snap)
}

func (s *server) base() snapshot {
	return snapshot{
		W: s.grid.Width(), H: s.grid.Height(),
		Maze:  s.grid.String(),
		Start: toPoint(s.start), Goal: toPoint(s.goal),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	srv := &http.Server{
		Handler:     newServer(time.Now().UnixNano()).routes(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	// Try 8080 first, then fall back to a random free port
	ln, err := net.Listen("tcp", ":8080")
	if err != nil {
		ln, err = net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	fmt.Printf("step server: http://localhost:%s/init then /next or /solve\n", port)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
