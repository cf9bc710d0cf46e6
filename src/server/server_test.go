package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = "2024-01-01T00:00:00.000Z"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, trustHeader bool) (*gin.Engine, *Services) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := db.Connect(db.Options{SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn))

	svc, err := NewServices(conn, "test-secret", time.Hour)
	require.NoError(t, err)
	return NewRouter(svc, RouterOptions{AllowAllOrigins: true, TrustRoleHeader: trustHeader}), svc
}

func do(router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func login(t *testing.T, router http.Handler, role string) map[string]string {
	t.Helper()
	w := do(router, http.MethodPost, "/api/login", map[string]string{"username": role, "password": role}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return map[string]string{"Authorization": "Bearer " + token}
}

func catalogPayload(id string) map[string]any {
	return map[string]any{"id": id, "name": "Test", "description": "", "creationDate": ts, "lastModified": ts}
}

func artifactPayload(id, catalogID, barcode string) map[string]any {
	return map[string]any{
		"id":            id,
		"catalogId":     catalogID,
		"name":          "Axe",
		"barcode":       barcode,
		"details":       "d",
		"locationFound": "Site",
		"dateFound":     "2024-01-01",
		"images2D":      []string{},
		"creationDate":  ts,
		"lastModified":  ts,
	}
}

func TestArtifactLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "admin")

	w := do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(router, http.MethodPost, "/api/artifacts", artifactPayload("a1", "c1", "B1"), admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(router, http.MethodGet, "/api/artifacts/a1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	byID := decode(t, w)
	assert.Equal(t, "a1", byID["id"])
	assert.Equal(t, []any{}, byID["images2D"])
	assert.Equal(t, []any{}, byID["comments"])

	w = do(router, http.MethodGet, "/api/artifacts/B1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, byID, decode(t, w))

	w = do(router, http.MethodGet, "/api/artifacts/by-barcode/b1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", decode(t, w)["id"])

	w = do(router, http.MethodDelete, "/api/artifacts/a1", nil, admin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodGet, "/api/artifacts/a1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodDelete, "/api/artifacts/a1", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArtifactImagesRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "archaeologist")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)

	images := []any{"data:image/png;base64,AAA", "data:image/png;base64,BBB", "data:image/png;base64,CCC"}
	payload := artifactPayload("a1", "c1", "B1")
	payload["images2D"] = images
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", payload, admin).Code)

	w := do(router, http.MethodGet, "/api/artifacts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, images, list[0]["images2D"])
}

func TestCreateArtifactConflicts(t *testing.T) {
	router, svc := newTestRouter(t, false)
	admin := login(t, router, "admin")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", artifactPayload("a1", "c1", "B1"), admin).Code)

	tests := []struct {
		name    string
		payload map[string]any
		message string
	}{
		{"missing catalog", artifactPayload("a2", "nope", "B2"), `Catalog with id "nope" does not exist`},
		{"duplicate barcode", artifactPayload("a3", "c1", "B1"), `Artifact with barcode "B1" already exists`},
		{"duplicate id", artifactPayload("a1", "c1", "B9"), `Artifact with id "a1" already exists`},
		{"missing catalog and duplicate barcode", artifactPayload("a2", "nope", "B1"), `Catalog with id "nope" does not exist`},
		{"missing catalog and duplicate id", artifactPayload("a1", "nope", "B9"), `Catalog with id "nope" does not exist`},
		{"missing catalog, duplicate barcode and id", artifactPayload("a1", "nope", "B1"), `Catalog with id "nope" does not exist`},
		{"duplicate barcode and id", artifactPayload("a1", "c1", "B1"), `Artifact with barcode "B1" already exists`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/api/artifacts", tt.payload, admin)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, decode(t, w)["error"])
		})
	}

	count, err := svc.Artifacts.CountArtifacts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateArtifactValidation(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "admin")

	payload := artifactPayload("a1", "c1", "")
	delete(payload, "details")
	w := do(router, http.MethodPost, "/api/artifacts", payload, admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "invalid request body", body["error"])
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok, w.Body.String())
	assert.Equal(t, "required", fields["barcode"])
	assert.Equal(t, "required", fields["details"])

	w = do(router, http.MethodPost, "/api/artifacts", "{not json", admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArtifactMutationsRequireEditorRole(t *testing.T) {
	router, svc := newTestRouter(t, false)
	admin := login(t, router, "admin")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", artifactPayload("a1", "c1", "B1"), admin).Code)

	credentials := map[string]map[string]string{
		"missing":            nil,
		"unknown header":     {"x-user-role": "wizard"},
		"header not trusted": {"x-user-role": "admin"},
		"garbage token":      {"Authorization": "Bearer not-a-token"},
		"researcher token":   login(t, router, "researcher"),
		"user token":         login(t, router, "user"),
		"researcher header":  {"x-user-role": "researcher"},
		"non bearer scheme":  {"Authorization": "Basic YWRtaW46YWRtaW4="},
	}
	requests := []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/api/artifacts", artifactPayload("a2", "c1", "B2")},
		{http.MethodPut, "/api/artifacts/a1", artifactPayload("a1", "c1", "B1-renamed")},
		{http.MethodDelete, "/api/artifacts/a1", nil},
		// invalid bodies are still rejected by role first
		{http.MethodPost, "/api/artifacts", "{}"},
	}

	for name, headers := range credentials {
		for _, r := range requests {
			t.Run(name+" "+r.method, func(t *testing.T) {
				w := do(router, r.method, r.path, r.body, headers)
				assert.Equal(t, http.StatusForbidden, w.Code)
				assert.Equal(t, "Forbidden: insufficient role permissions", decode(t, w)["error"])
			})
		}
	}

	artifacts, err := svc.Artifacts.GetAllArtifacts(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "B1", artifacts[0].Barcode)
}

func TestTrustedRoleHeader(t *testing.T) {
	router, svc := newTestRouter(t, true)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)

	w := do(router, http.MethodPost, "/api/artifacts", artifactPayload("a1", "c1", "B1"), map[string]string{"x-user-role": "Admin"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	requests := []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/api/artifacts", artifactPayload("a2", "c1", "B2")},
		{http.MethodPut, "/api/artifacts/a1", artifactPayload("a1", "c1", "B1-renamed")},
		{http.MethodDelete, "/api/artifacts/a1", nil},
	}
	for _, role := range []string{"", "researcher", "user", "wizard"} {
		for _, r := range requests {
			t.Run(role+" "+r.method, func(t *testing.T) {
				headers := map[string]string{}
				if role != "" {
					headers["x-user-role"] = role
				}
				w := do(router, r.method, r.path, r.body, headers)
				assert.Equal(t, http.StatusForbidden, w.Code)
				assert.Equal(t, "Forbidden: insufficient role permissions", decode(t, w)["error"])
			})
		}
	}

	artifacts, err := svc.Artifacts.GetAllArtifacts(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "B1", artifacts[0].Barcode)

	archaeologist := map[string]string{"x-user-role": "archaeologist"}
	w = do(router, http.MethodPut, "/api/artifacts/a1", artifactPayload("a1", "c1", "B1-renamed"), archaeologist)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(router, http.MethodDelete, "/api/artifacts/a1", nil, map[string]string{"x-user-role": "admin"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(router, http.MethodGet, "/api/artifacts/a1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateArtifact(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "admin")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", artifactPayload("a1", "c1", "B1"), admin).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", artifactPayload("a2", "c1", "B2"), admin).Code)

	update := artifactPayload("a1", "c1", "B1")
	update["name"] = "Hand axe"
	update["width"] = "7 cm"
	w := do(router, http.MethodPut, "/api/artifacts/a1", update, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Hand axe", body["name"])
	assert.Equal(t, "7 cm", body["width"])

	w = do(router, http.MethodPut, "/api/artifacts/a1", artifactPayload("a1", "c1", "B2"), admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Artifact with barcode "B2" already exists`, decode(t, w)["error"])

	w = do(router, http.MethodPut, "/api/artifacts/a1", artifactPayload("a1", "nope", "B2"), admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Catalog with id "nope" does not exist`, decode(t, w)["error"])

	w = do(router, http.MethodPut, "/api/artifacts/missing", artifactPayload("missing", "c1", "B7"), admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "admin")

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)
	w := do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	update := map[string]any{"name": "Renamed", "description": "x", "lastModified": "2024-02-01T00:00:00.000Z"}
	for i := 0; i < 2; i++ {
		w = do(router, http.MethodPut, "/api/catalogs/c1", update, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode(t, w)
		assert.Equal(t, "Renamed", body["name"])
		assert.Equal(t, "x", body["description"])
		assert.Equal(t, ts, body["creationDate"])
	}
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPut, "/api/catalogs/zz", update, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/catalogs/zz", nil, nil).Code)

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", artifactPayload("a1", "c1", "B1"), admin).Code)

	w = do(router, http.MethodGet, "/api/catalogs/c1/artifacts", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = do(router, http.MethodGet, "/api/catalogs/c1/export", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "catalog-c1.xlsx")
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/catalogs/zz/export", nil, nil).Code)

	w = do(router, http.MethodDelete, "/api/catalogs/c1", nil, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	require.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/artifacts/a1", nil, admin).Code)
	assert.Equal(t, http.StatusNoContent, do(router, http.MethodDelete, "/api/catalogs/c1", nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/api/catalogs/c1", nil, nil).Code)
}

func TestStatsAndSystemEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "admin")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/catalogs", catalogPayload("c1"), nil).Code)

	recent := artifactPayload("a1", "c1", "B1")
	recent["creationDate"] = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", recent, admin).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/artifacts", artifactPayload("a2", "c1", "B2"), admin).Code)

	w := do(router, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"totalCatalogs": 1.0, "totalArtifacts": 2.0, "recentAdditions": 1.0}, decode(t, w))

	w = do(router, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"status": "ok", "database": "sqlite"}, decode(t, w))

	w = do(router, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "running", decode(t, w)["status"])
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := do(router, http.MethodPost, "/api/login", map[string]string{"username": "Researcher", "password": "researcher"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Researcher", body["name"])
	assert.Equal(t, "researcher", body["role"])

	w = do(router, http.MethodPost, "/api/login", map[string]string{"username": "admin", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/login", map[string]string{"username": "admin"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBodyLimit(t *testing.T) {
	router, _ := newTestRouter(t, false)
	admin := login(t, router, "admin")

	payload := artifactPayload("a1", "c1", "B1")
	payload["images2D"] = []string{strings.Repeat("A", 6<<20)}
	w := do(router, http.MethodPost, "/api/artifacts", payload, admin)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
