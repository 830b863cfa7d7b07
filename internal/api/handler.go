package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
)

const maxDocumentSize = 4 << 20

type Handler struct {
	renderers  *renderer.Service
	serializer *serializer.Serializer
	log        *slog.Logger
}

func NewHandler(renderers *renderer.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		renderers:  renderers,
		serializer: serializer.New(renderers),
		log:        log,
	}
}

// Routes registers the document endpoints on r.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/renderers", h.ListRenderers).Methods("GET")
	r.HandleFunc("/renderers/{key}", h.GetRenderer).Methods("GET")
	r.HandleFunc("/documents/remap", h.Remap).Methods("POST")
	r.HandleFunc("/documents/validate", h.Validate).Methods("POST")
	r.HandleFunc("/documents/convert", h.Convert).Methods("POST")
}

type rendererResponse struct {
	Renderer      string               `json:"renderer"`
	Width         float64              `json:"width"`
	Height        float64              `json:"height"`
	Appearance    model.Appearance     `json:"appearance"`
	Configurables []model.Configurable `json:"configurables"`
}

type validateResponse struct {
	Valid   bool     `json:"valid"`
	Visuals int      `json:"visuals"`
	Groups  int      `json:"groups"`
	RootIDs []string `json:"rootIds"`
}

func (h *Handler) ListRenderers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"renderers": h.renderers.Renderers()})
}

// GetRenderer describes the default shape a renderer creates.
func (h *Handler) GetRenderer(w http.ResponseWriter, r *http.Request) {
	plugin, err := h.renderers.RegisteredRenderer(mux.Vars(r)["key"])
	if err != nil {
		h.handleError(w, err)
		return
	}

	shape := plugin.CreateDefaultShape("preview")
	writeJSON(w, http.StatusOK, rendererResponse{
		Renderer:      plugin.Identifier(),
		Width:         shape.Transform().Size.X,
		Height:        shape.Transform().Size.Y,
		Appearance:    shape.Appearance(),
		Configurables: shape.Configurables(),
	})
}

// Remap returns the document with every id replaced, in the format it was
// sent in.
func (h *Handler) Remap(w http.ResponseWriter, r *http.Request) {
	doc, format, err := h.readDocument(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	remapped, err := serializer.GenerateNewIDs(doc)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeDocument(w, remapped, format)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	doc, _, err := h.readDocument(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	set, err := h.serializer.DeserializeSet(doc)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		Valid:   true,
		Visuals: len(set.AllVisuals()),
		Groups:  len(set.AllGroups()),
		RootIDs: set.RootIDs(),
	})
}

// Convert re-encodes a valid document in the format named by the to query
// parameter.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	to, err := serializer.ParseFormat(r.URL.Query().Get("to"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	doc, _, err := h.readDocument(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	set, err := h.serializer.DeserializeSet(doc)
	if err != nil {
		h.handleError(w, err)
		return
	}
	out, err := h.serializer.SerializeSet(set)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeDocument(w, out, to)
}

// requestFormat reads the document format from the from query parameter,
// falling back to the Content-Type header.
func requestFormat(r *http.Request) (serializer.Format, error) {
	if from := r.URL.Query().Get("from"); from != "" {
		return serializer.ParseFormat(from)
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == serializer.FormatMsgpack.ContentType() {
		return serializer.FormatMsgpack, nil
	}
	return serializer.FormatJSON, nil
}

func (h *Handler) readDocument(r *http.Request) (*serializer.Document, serializer.Format, error) {
	format, err := requestFormat(r)
	if err != nil {
		return nil, "", err
	}
	doc, err := serializer.Decode(http.MaxBytesReader(nil, r.Body, maxDocumentSize), format)
	if err != nil {
		return nil, "", err
	}
	return doc, format, nil
}

func (h *Handler) writeDocument(w http.ResponseWriter, doc *serializer.Document, format serializer.Format) {
	var buf bytes.Buffer
	if err := serializer.Encode(&buf, doc, format); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, renderer.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, serializer.ErrMalformedDocument), errors.Is(err, serializer.ErrUnknownFormat):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, serializer.ErrUnsupportedVisual):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		h.log.Error("document request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
