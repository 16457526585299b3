package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"binpack-service/internal/chart"
	"binpack-service/internal/packing"
	"binpack-service/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires packing and storage dependencies into HTTP handlers.
type Handler struct {
	storage         storage.Storage
	defaultStrategy packing.Strategy

	clock func() time.Time

	mu                sync.RWMutex
	capacityUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, defaultStrategy packing.Strategy, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage:         store,
		defaultStrategy: defaultStrategy,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.capacityUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	_ = r
	infos := packing.Strategies()
	resp := algorithmsResponse{
		Default:    string(h.defaultStrategy),
		Algorithms: make([]algorithmView, 0, len(infos)),
	}
	for _, info := range infos {
		resp.Algorithms = append(resp.Algorithms, algorithmView{
			ID:          string(info.Strategy),
			Name:        info.Name,
			Description: info.Description,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCapacity(w http.ResponseWriter, r *http.Request) {
	_ = r
	capacity, err := h.storage.GetCapacity()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := capacityResponse{
		Capacity:  capacity,
		UpdatedAt: h.currentCapacityUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutCapacity(w http.ResponseWriter, r *http.Request) {
	var req capacityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := h.storage.SetCapacity(req.Capacity); err != nil {
		if errors.Is(err, storage.ErrInvalidCapacity) {
			writeError(w, http.StatusBadRequest, "Invalid capacity", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCapacityUpdated()

	capacity, err := h.storage.GetCapacity()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := capacityResponse{
		Capacity:  capacity,
		UpdatedAt: h.currentCapacityUpdatedAt(),
		Message:   "Default capacity updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePack(w http.ResponseWriter, r *http.Request) {
	bins, capacity, strategy, elapsed, ok := h.runPacking(w, r)
	if !ok {
		return
	}

	views := make([]binView, 0, len(bins))
	for _, bin := range bins {
		views = append(views, binView{
			Items:     bin.Items(),
			Load:      bin.Load(),
			Remaining: bin.Remaining(),
		})
	}

	summary := chart.Summarize(bins, capacity)
	resp := packResponse{
		Algorithm:         string(strategy),
		Capacity:          capacity,
		Bins:              views,
		BinCount:          summary.Bins,
		ItemCount:         summary.Items,
		TotalLoad:         summary.TotalLoad,
		MeanUtilization:   summary.MeanUtilization,
		StdDevUtilization: summary.StdDevUtilization,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePackChart(w http.ResponseWriter, r *http.Request) {
	bins, capacity, _, _, ok := h.runPacking(w, r)
	if !ok {
		return
	}

	svg := chart.RenderSVG(bins, capacity)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// runPacking decodes a pack request, resolves the capacity and strategy, and
// runs the packing. On failure it writes the error response and reports ok=false.
func (h *Handler) runPacking(w http.ResponseWriter, r *http.Request) (bins []*packing.Bin, capacity float64, strategy packing.Strategy, elapsed time.Duration, ok bool) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Weights) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "weights must contain at least one weight")
		return
	}

	strategy = h.defaultStrategy
	if req.Algorithm != "" {
		parsed, err := packing.ParseStrategy(req.Algorithm)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid algorithm", err.Error())
			return
		}
		strategy = parsed
	}

	if req.Capacity != nil {
		capacity = *req.Capacity
	} else {
		stored, err := h.storage.GetCapacity()
		if err != nil {
			writeInternalError(w, err)
			return
		}
		capacity = stored
	}

	packer, err := packing.New(strategy)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	start := time.Now()
	bins, packErr := packer.Pack(req.Weights, capacity)
	elapsed = time.Since(start)

	if packErr != nil {
		switch {
		case errors.Is(packErr, packing.ErrInvalidCapacity):
			writeError(w, http.StatusBadRequest, "Invalid capacity", packErr.Error())
		case errors.Is(packErr, packing.ErrInvalidWeight):
			suggestion := "Remove non-positive weights, or raise the capacity above the largest weight"
			writeError(w, http.StatusUnprocessableEntity, "Cannot pack weights", packErr.Error(), suggestion)
		default:
			writeInternalError(w, packErr)
		}
		return nil, 0, "", 0, false
	}

	return bins, capacity, strategy, elapsed, true
}

func (h *Handler) currentCapacityUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.capacityUpdatedAt
}

func (h *Handler) markCapacityUpdated() {
	h.mu.Lock()
	h.capacityUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type packRequest struct {
	Weights   []float64 `json:"weights"`
	Capacity  *float64  `json:"capacity,omitempty"`
	Algorithm string    `json:"algorithm,omitempty"`
}

type binView struct {
	Items     []float64 `json:"items"`
	Load      float64   `json:"load"`
	Remaining float64   `json:"remaining"`
}

type packResponse struct {
	Algorithm         string    `json:"algorithm"`
	Capacity          float64   `json:"capacity"`
	Bins              []binView `json:"bins"`
	BinCount          int       `json:"binCount"`
	ItemCount         int       `json:"itemCount"`
	TotalLoad         float64   `json:"totalLoad"`
	MeanUtilization   float64   `json:"meanUtilization"`
	StdDevUtilization float64   `json:"stdDevUtilization"`
	CalculationTimeMs int64     `json:"calculationTimeMs"`
}

type capacityRequest struct {
	Capacity float64 `json:"capacity"`
}

type capacityResponse struct {
	Capacity  float64   `json:"capacity"`
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message,omitempty"`
}

type algorithmView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type algorithmsResponse struct {
	Default    string          `json:"default"`
	Algorithms []algorithmView `json:"algorithms"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
