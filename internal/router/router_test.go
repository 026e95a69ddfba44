package router

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-records-api/internal/repository"
	"github.com/noah-isme/campus-records-api/internal/service"
	"github.com/noah-isme/campus-records-api/pkg/config"
	"github.com/noah-isme/campus-records-api/pkg/database"
	"github.com/noah-isme/campus-records-api/pkg/storage"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestEngineFor(t, config.EnvProduction)
}

func newTestEngineFor(t *testing.T, env string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	ctx := context.Background()

	db, err := database.NewSQLite(ctx, filepath.Join(dir, "data", "database.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.EnsureSchema(ctx, db))

	uploads, err := storage.NewLocalStorage(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	return New(Dependencies{
		Config: &config.Config{
			Env:     env,
			Uploads: config.UploadConfig{MaxMemory: 1 << 20},
		},
		DB:      db,
		Uploads: uploads,
		Metrics: service.NewMetricsService(),
	})
}

func do(r *gin.Engine, method, path, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path, payload string) *httptest.ResponseRecorder {
	return do(r, method, path, "application/json", bytes.NewBufferString(payload))
}

func multipartRecord(t *testing.T, values map[string]string, fileField, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}
	part, err := writer.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func getRecord(t *testing.T, r *gin.Engine, path string) map[string]interface{} {
	t.Helper()
	w := do(r, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	return record
}

func TestStudentLifecycle(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/api/students",
		`{"id":"S1","name":"A","birth_date":"2000-01-01","mobile":"123","email":"a@x.com","department":"CS","cgpa":"8.5"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Student added successfully"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/students/S1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"S1","name":"A","profile":null,"birth_date":"2000-01-01","mobile":"123","email":"a@x.com","department":"CS","cgpa":8.5}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodDelete, "/api/students/S1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Student deleted successfully"}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/students/S1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Student not found","code":"NOT_FOUND"}`, w.Body.String())
}

func TestListGrowsWithInserts(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodGet, "/api/faculties", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, number := range []string{"F1", "F2", "F3"} {
		w = doJSON(r, http.MethodPost, "/api/faculties", `{"faculty_number":"`+number+`","faculty_name":"X"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/faculties", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}

func TestDuplicateCreateIsStoreFailure(t *testing.T) {
	r := newTestEngine(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/faculties", `{"faculty_number":"F1"}`).Code)
	w := doJSON(r, http.MethodPost, "/api/faculties", `{"faculty_number":"F1"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error inserting data","code":"INTERNAL_ERROR"}`, w.Body.String())
}

func TestMissingKeysAreNotFound(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPut, "/api/faculties/F404", `{"faculty_name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Faculty not found","code":"NOT_FOUND"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/faculties/F404", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPut, "/api/students/S404", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/students/S404", "", nil).Code)
}

func TestUpdateKeepsKeyAndOverwritesFields(t *testing.T) {
	r := newTestEngine(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/faculties",
		`{"faculty_number":"F1","faculty_name":"Dr. A","department":"Math"}`).Code)

	w := doJSON(r, http.MethodPut, "/api/faculties/F1", `{"faculty_number":"F9","faculty_name":"Dr. B"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/faculties/F1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var faculty map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &faculty))
	assert.Equal(t, "F1", faculty["faculty_number"])
	assert.Equal(t, "Dr. B", faculty["faculty_name"])
	assert.Nil(t, faculty["department"])

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/faculties/F9", "", nil).Code)
}

func TestProfileUploadRoundTrip(t *testing.T) {
	r := newTestEngine(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("id", "S2"))
	require.NoError(t, writer.WriteField("name", "B"))
	require.NoError(t, writer.WriteField("cgpa", "7.25"))
	part, err := writer.CreateFormFile("profile", "avatar.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("avatar-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := do(r, http.MethodPost, "/api/students", writer.FormDataContentType(), body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/students/S2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var student struct {
		Profile *string  `json:"profile"`
		CGPA    *float64 `json:"cgpa"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	require.NotNil(t, student.Profile)
	assert.True(t, strings.HasSuffix(*student.Profile, "-avatar.txt"))
	assert.Equal(t, 7.25, *student.CGPA)

	w = do(r, http.MethodGet, "/uploads/"+*student.Profile, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "avatar-bytes", w.Body.String())

	// An update without a file stores whatever profile value was echoed back.
	w = doJSON(r, http.MethodPut, "/api/students/S2", `{"name":"B","profile":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/api/students/S2", "", nil)
	assert.Contains(t, w.Body.String(), `"profile":""`)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/uploads/missing.png", "", nil).Code)
}

func TestFacultyProfileUploadOnCreateAndUpdate(t *testing.T) {
	r := newTestEngine(t)

	body, contentType := multipartRecord(t, map[string]string{"faculty_number": "F1", "faculty_name": "Dr. A"},
		"faculty_profile", "first.png", "first-bytes")
	w := do(r, http.MethodPost, "/api/faculties", contentType, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	faculty := getRecord(t, r, "/api/faculties/F1")
	first, ok := faculty["faculty_profile"].(string)
	require.True(t, ok, "faculty_profile should be set")
	assert.True(t, strings.HasSuffix(first, "-first.png"), first)
	assert.Equal(t, "Dr. A", faculty["faculty_name"])

	body, contentType = multipartRecord(t, map[string]string{"faculty_name": "Dr. B", "faculty_profile": first},
		"faculty_profile", "second.png", "second-bytes")
	w = do(r, http.MethodPut, "/api/faculties/F1", contentType, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	faculty = getRecord(t, r, "/api/faculties/F1")
	second, ok := faculty["faculty_profile"].(string)
	require.True(t, ok, "faculty_profile should be set")
	assert.True(t, strings.HasSuffix(second, "-second.png"), second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "F1", faculty["faculty_number"])
	assert.Equal(t, "Dr. B", faculty["faculty_name"])

	w = do(r, http.MethodGet, "/uploads/"+second, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "second-bytes", w.Body.String())
}

func TestStudentUpdateWithProfileFile(t *testing.T) {
	r := newTestEngine(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/students", `{"id":"S1","name":"A","cgpa":6}`).Code)
	assert.Nil(t, getRecord(t, r, "/api/students/S1")["profile"])

	body, contentType := multipartRecord(t, map[string]string{"name": "A2", "cgpa": "9.5"}, "profile", "face.jpg", "jpg-bytes")
	w := do(r, http.MethodPut, "/api/students/S1", contentType, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	student := getRecord(t, r, "/api/students/S1")
	profile, ok := student["profile"].(string)
	require.True(t, ok, "profile should be set")
	assert.True(t, strings.HasSuffix(profile, "-face.jpg"), profile)
	assert.Equal(t, "A2", student["name"])
	assert.Equal(t, 9.5, student["cgpa"])
}

func TestJSONScalarsRoundTripAsText(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/api/faculties", `{"faculty_number":"F1","joining_year":2015,"mobile":9876543210}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	faculty := getRecord(t, r, "/api/faculties/F1")
	assert.Equal(t, "2015", faculty["joining_year"])
	assert.Equal(t, "9876543210", faculty["mobile"])

	w = doJSON(r, http.MethodPost, "/api/students", `{"id":"S1","cgpa":""}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	student := getRecord(t, r, "/api/students/S1")
	assert.Contains(t, student, "cgpa")
	assert.Nil(t, student["cgpa"])
}

func TestInvalidPayloads(t *testing.T) {
	r := newTestEngine(t)

	w := doJSON(r, http.MethodPost, "/api/students", `{"name":"no id"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid payload","code":"VALIDATION_ERROR"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/students", `{"id":"S3","cgpa":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/api/students", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestOperationalRoutes(t *testing.T) {
	r := newTestEngine(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ready", "", nil).Code)

	do(r, http.MethodGet, "/api/students", "", nil)
	w := do(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), `query="student.list"`)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/docs/index.html", "", nil).Code)
}

func TestDocsServedOutsideProduction(t *testing.T) {
	r := newTestEngineFor(t, config.EnvDevelopment)

	w := do(r, http.MethodGet, "/docs/index.html", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
