package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
	"github.com/inamate/wireframe/backend-go/internal/typeid"
)

const loginForm = `{
	"visuals": [
		{"id": "shape_a", "renderer": "Checkbox", "transform": {"x": 52, "y": 18, "w": 104, "h": 36, "rotation": 0}, "appearance": {"STATE": "Checked"}},
		{"id": "shape_b", "renderer": "Checkbox", "transform": {"x": 52, "y": 58, "w": 104, "h": 36, "rotation": 0}},
		{"id": "shape_c", "renderer": "Button", "transform": {"x": 50, "y": 100, "w": 100, "h": 30, "rotation": 0}}
	],
	"groups": [
		{"id": "group_a", "childIds": ["shape_a", "shape_b"]}
	]
}`

func newRouter() *mux.Router {
	r := mux.NewRouter()
	NewHandler(renderer.NewDefaultService(), nil).Routes(r.PathPrefix("/api").Subrouter())
	return r
}

func do(t *testing.T, r http.Handler, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestListRenderers(t *testing.T) {
	rec := do(t, newRouter(), "GET", "/api/renderers", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Button", "Checkbox", "Rectangle"}, body["renderers"])
}

func TestGetRenderer(t *testing.T) {
	r := newRouter()

	rec := do(t, r, "GET", "/api/renderers/Checkbox", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body rendererResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, renderer.CheckboxRenderer, body.Renderer)
	assert.Equal(t, 104.0, body.Width)
	assert.Equal(t, 36.0, body.Height)
	assert.NotEmpty(t, body.Configurables)

	rec = do(t, r, "GET", "/api/renderers/Slider", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, errorBody(t, rec), "Slider")
}

func TestRemap(t *testing.T) {
	rec := do(t, newRouter(), "POST", "/api/documents/remap", "application/json", []byte(loginForm))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	doc, err := serializer.Decode(rec.Body, serializer.FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Visuals, 3)
	require.Len(t, doc.Groups, 1)

	for _, id := range doc.IDs() {
		assert.NotContains(t, []string{"shape_a", "shape_b", "shape_c", "group_a"}, id)
		assert.True(t, strings.HasPrefix(id, typeid.PrefixItem+"_"), id)
	}
	assert.Equal(t, []string{doc.Visuals[0].ID, doc.Visuals[1].ID}, doc.Groups[0].ChildIDs)
	assert.Equal(t, "Checked", doc.Visuals[0].Appearance["STATE"])
}

func TestValidate(t *testing.T) {
	rec := do(t, newRouter(), "POST", "/api/documents/validate", "application/json", []byte(loginForm))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body validateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Equal(t, 3, body.Visuals)
	assert.Equal(t, 1, body.Groups)
	assert.ElementsMatch(t, []string{"group_a", "shape_c"}, body.RootIDs)
}

func TestConvert(t *testing.T) {
	r := newRouter()

	rec := do(t, r, "POST", "/api/documents/convert?to=msgpack", "application/json", []byte(loginForm))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/msgpack", rec.Header().Get("Content-Type"))
	packed := rec.Body.Bytes()

	doc, err := serializer.Decode(bytes.NewReader(packed), serializer.FormatMsgpack)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"shape_a", "shape_b", "shape_c", "group_a"}, doc.IDs())

	rec = do(t, r, "POST", "/api/documents/convert?to=json", "application/msgpack", packed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	back, err := serializer.Decode(rec.Body, serializer.FormatJSON)
	require.NoError(t, err)
	assert.ElementsMatch(t, doc.IDs(), back.IDs())

	rec = do(t, r, "POST", "/api/documents/convert?from=msgpack", "", packed)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocumentErrors(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"syntax error", "/api/documents/validate", `{"visuals": [`, http.StatusBadRequest},
		{"missing renderer", "/api/documents/validate", `{"visuals": [{"id": "a"}]}`, http.StatusBadRequest},
		{"duplicate id", "/api/documents/remap", `{"visuals": [{"id": "a", "renderer": "Button"}, {"id": "a", "renderer": "Button"}]}`, http.StatusBadRequest},
		{"dangling child", "/api/documents/validate", `{"visuals": [{"id": "a", "renderer": "Button"}], "groups": [{"id": "g", "childIds": ["b"]}]}`, http.StatusBadRequest},
		{"unknown renderer", "/api/documents/validate", `{"visuals": [{"id": "a", "renderer": "Slider"}]}`, http.StatusNotFound},
		{"unknown target format", "/api/documents/convert?to=yaml", loginForm, http.StatusBadRequest},
		{"unknown source format", "/api/documents/convert?from=yaml", loginForm, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, r, "POST", tc.target, "application/json", []byte(tc.body))
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, errorBody(t, rec))
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newRouter(), "GET", "/api/documents/remap", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
