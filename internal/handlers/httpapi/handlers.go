package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicetray/internal/common/logger"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/render/layout"
	"github.com/KirkDiggler/dicetray/internal/services/messaging"
	"github.com/KirkDiggler/dicetray/internal/services/roller"
)

// DefaultFaceSize is the face image size when the request has none
const DefaultFaceSize = 128

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 16

// Config holds the dependencies of the HTTP handlers
type Config struct {
	RollerService    roller.Service
	MessagingService messaging.Service
	Logger           *zap.Logger

	// DefaultLocale is used when neither ?locale nor Accept-Language match
	DefaultLocale string

	// ContainerWidth and ContainerHeight are used when ?w and ?h are missing
	ContainerWidth  int
	ContainerHeight int
}

// Handler serves the dice API
type Handler struct {
	rollerService    roller.Service
	messagingService messaging.Service
	logger           *zap.Logger
	defaultLocale    string
	containerWidth   int
	containerHeight  int
}

// NewHandler creates the HTTP handlers
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RollerService == nil {
		return nil, errors.New("roller service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if !inContainerBounds(cfg.ContainerWidth) || !inContainerBounds(cfg.ContainerHeight) {
		return nil, roller.ErrInvalidContainer
	}

	locale := cfg.DefaultLocale
	if locale == "" {
		locale = messaging.LocaleEnglish
	}

	log := logger.OrNop(cfg.Logger)

	return &Handler{
		rollerService:    cfg.RollerService,
		messagingService: cfg.MessagingService,
		logger:           log,
		defaultLocale:    locale,
		containerWidth:   cfg.ContainerWidth,
		containerHeight:  cfg.ContainerHeight,
	}, nil
}

type configureTableRequest struct {
	Sets   int    `json:"sets"`
	Locale string `json:"locale"`
}

type updateSetRequest struct {
	Name      *string `json:"name"`
	DiceCount *int    `json:"dice_count"`
	DiceSides *int    `json:"dice_sides"`
	DiceColor *string `json:"dice_color"`
	MarkColor *string `json:"mark_color"`
}

type createRollRequest struct {
	Sides int `json:"sides"`
	Count int `json:"count"`
}

type tableResponse struct {
	Table  *models.Table     `json:"table"`
	Sets   []*models.DiceSet `json:"sets"`
	Layout *tableLayout      `json:"layout,omitempty"`
}

// tableLayout places each set on a screen of the requested size, three to a column
type tableLayout struct {
	Rows       int         `json:"rows"`
	Columns    int         `json:"columns"`
	CellWidth  float64     `json:"cell_width"`
	CellHeight float64     `json:"cell_height"`
	Slots      []tableSlot `json:"slots"`
}

type tableSlot struct {
	Position int `json:"position"`
	Row      int `json:"row"`
	Column   int `json:"column"`
}

type rollResponse struct {
	Set       *models.DiceSet `json:"set,omitempty"`
	RollSet   *models.RollSet `json:"roll_set"`
	Total     int             `json:"total"`
	ShowTotal bool            `json:"show_total"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Locale    string          `json:"locale"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// GetFace renders a single die face, e.g. /faces/6/5.png?size=64&bg=red&fg=white
func (h *Handler) GetFace(w http.ResponseWriter, r *http.Request) {
	sides, err := strconv.Atoi(chi.URLParam(r, "sides"))
	if err != nil {
		h.writeError(w, r, roller.ErrInvalidSides)
		return
	}

	valuePart, ext, _ := strings.Cut(chi.URLParam(r, "face"), ".")
	value, err := strconv.Atoi(valuePart)
	if err != nil {
		h.writeError(w, r, roller.ErrInvalidFaceValue)
		return
	}

	size := DefaultFaceSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			h.writeError(w, r, roller.ErrInvalidSize)
			return
		}
	}

	out, err := h.rollerService.RenderFace(r.Context(), &roller.RenderFaceInput{
		Value:     value,
		Sides:     sides,
		DiceColor: r.URL.Query().Get("bg"),
		MarkColor: r.URL.Query().Get("fg"),
		Size:      size,
		Format:    ext,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeImage(w, out.ContentType, out.Image)
}

// ConfigureTable replaces the sets of a table
func (h *Handler) ConfigureTable(w http.ResponseWriter, r *http.Request) {
	var req configureTableRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	out, err := h.rollerService.ConfigureTable(r.Context(), &roller.ConfigureTableInput{
		TableID:  chi.URLParam(r, "tableID"),
		SetCount: req.Sets,
		Locale:   tableLocale(req.Locale),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tableResponse{Table: out.Table, Sets: out.Sets})
}

// tableLocale stores a supported locale, empty keeps the table's current one
func tableLocale(requested string) string {
	if strings.TrimSpace(requested) == "" {
		return ""
	}
	return messaging.ResolveLocale(requested)
}

// DeleteTable removes a table with its sets and their rolls
func (h *Handler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	_, err := h.rollerService.DeleteTable(r.Context(), &roller.DeleteTableInput{
		TableID: chi.URLParam(r, "tableID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTable returns a table with its sets laid out on a ?w x ?h screen
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	width, height, err := h.container(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if width <= layout.ScreenMarginWidth || height <= layout.ScreenMarginHeight {
		h.writeError(w, r, roller.ErrInvalidContainer)
		return
	}

	out, err := h.rollerService.GetTable(r.Context(), &roller.GetTableInput{
		TableID: chi.URLParam(r, "tableID"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tableResponse{
		Table:  out.Table,
		Sets:   out.Sets,
		Layout: newTableLayout(out.Sets, width, height),
	})
}

func newTableLayout(sets []*models.DiceSet, screenWidth, screenHeight int) *tableLayout {
	g := layout.Table(len(sets), float64(screenWidth), float64(screenHeight))

	slots := make([]tableSlot, len(sets))
	for i, set := range sets {
		row, column := g.Position(i)
		slots[i] = tableSlot{Position: set.Position, Row: row, Column: column}
	}

	return &tableLayout{
		Rows:       g.Rows,
		Columns:    g.Columns,
		CellWidth:  g.CellWidth,
		CellHeight: g.CellHeight,
		Slots:      slots,
	}
}

// UpdateSet changes one set on a table
func (h *Handler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		h.writeError(w, r, roller.ErrSetNotFound)
		return
	}

	var req updateSetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	out, err := h.rollerService.UpdateSet(r.Context(), &roller.UpdateSetInput{
		TableID:   chi.URLParam(r, "tableID"),
		Position:  position,
		Name:      req.Name,
		DiceCount: req.DiceCount,
		DiceSides: req.DiceSides,
		DiceColor: req.DiceColor,
		MarkColor: req.MarkColor,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Set)
}

// RollSet rolls a set and returns the stored roll with its localized message
func (h *Handler) RollSet(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		h.writeError(w, r, roller.ErrSetNotFound)
		return
	}

	out, err := h.rollerService.RollSet(r.Context(), &roller.RollSetInput{
		TableID:  chi.URLParam(r, "tableID"),
		Position: position,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.rollResponse(r.Context(), h.locale(r), out.Set.Name, out.RollSet)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp.Set = out.Set

	writeJSON(w, http.StatusOK, resp)
}

// CreateRoll makes an ad-hoc roll that is not stored
func (h *Handler) CreateRoll(w http.ResponseWriter, r *http.Request) {
	var req createRollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeBadRequest(w, err)
		return
	}

	out, err := h.rollerService.RollDice(r.Context(), &roller.RollDiceInput{
		Sides: req.Sides,
		Count: req.Count,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.rollResponse(r.Context(), h.locale(r), "", out.RollSet)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetLatestImage renders the latest roll of a set
func (h *Handler) GetLatestImage(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		h.writeError(w, r, roller.ErrSetNotFound)
		return
	}

	width, height, err := h.container(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.rollerService.RenderLatest(r.Context(), &roller.RenderLatestInput{
		TableID:         chi.URLParam(r, "tableID"),
		Position:        position,
		ContainerWidth:  width,
		ContainerHeight: height,
		Format:          chi.URLParam(r, "ext"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeImage(w, out.ContentType, out.Image)
}

func (h *Handler) rollResponse(ctx context.Context, locale, setName string, rs *models.RollSet) (*rollResponse, error) {
	msg, err := h.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		Locale:    locale,
		SetName:   setName,
		Values:    rs.Values(),
		Total:     rs.Total(),
		ShowTotal: rs.HasTotal(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build roll message: %w", err)
	}

	return &rollResponse{
		RollSet:   rs,
		Total:     rs.Total(),
		ShowTotal: rs.HasTotal(),
		Title:     msg.Title,
		Message:   msg.Message,
		Locale:    msg.Locale,
	}, nil
}

// locale prefers ?locale over Accept-Language
func (h *Handler) locale(r *http.Request) string {
	if locale := r.URL.Query().Get("locale"); locale != "" {
		return locale
	}
	return messaging.ResolveAcceptLanguage(r.Header.Get("Accept-Language"), h.defaultLocale)
}

// container reads ?w and ?h, falling back to the configured size
func (h *Handler) container(r *http.Request) (int, int, error) {
	width, height := h.containerWidth, h.containerHeight

	if raw := r.URL.Query().Get("w"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || !inContainerBounds(v) {
			return 0, 0, roller.ErrInvalidContainer
		}
		width = v
	}

	if raw := r.URL.Query().Get("h"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || !inContainerBounds(v) {
			return 0, 0, roller.ErrInvalidContainer
		}
		height = v
	}

	return width, height, nil
}

func inContainerBounds(v int) bool {
	return v >= 1 && v <= roller.MaxContainerSize
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, roller.ErrTableNotFound),
		errors.Is(err, roller.ErrSetNotFound),
		errors.Is(err, roller.ErrNoRollYet):
		return http.StatusNotFound
	case errors.Is(err, roller.ErrMissingTableID),
		errors.Is(err, roller.ErrInvalidSetCount),
		errors.Is(err, roller.ErrInvalidDiceCount),
		errors.Is(err, roller.ErrInvalidSides),
		errors.Is(err, roller.ErrInvalidColor),
		errors.Is(err, roller.ErrInvalidContainer),
		errors.Is(err, roller.ErrInvalidFormat),
		errors.Is(err, roller.ErrInvalidFaceValue),
		errors.Is(err, roller.ErrInvalidSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}

	resp := errorResponse{Error: err.Error()}
	msg, msgErr := h.messagingService.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{
		Locale: h.locale(r),
		Err:    err,
	})
	if msgErr == nil {
		resp.Message = msg.Message
	}
	if status == http.StatusInternalServerError {
		resp.Error = http.StatusText(status)
	}

	writeJSON(w, status, resp)
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeImage(w http.ResponseWriter, contentType string, image []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}
