package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-records-api/internal/middleware"
	"github.com/noah-isme/campus-records-api/internal/models"
	"github.com/noah-isme/campus-records-api/internal/service"
	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
)

type facultyServiceMock struct {
	listResp     []models.Faculty
	getResp      *models.Faculty
	err          error
	lastNumber   string
	lastCreate   service.CreateFacultyRequest
	lastUpdate   service.UpdateFacultyRequest
	lastUploaded *string
	createCalled bool
}

func (m *facultyServiceMock) List(ctx context.Context) ([]models.Faculty, error) {
	return m.listResp, m.err
}

func (m *facultyServiceMock) Get(ctx context.Context, number string) (*models.Faculty, error) {
	m.lastNumber = number
	return m.getResp, m.err
}

func (m *facultyServiceMock) Create(ctx context.Context, req service.CreateFacultyRequest, uploaded *string) error {
	m.createCalled = true
	m.lastCreate = req
	m.lastUploaded = uploaded
	return m.err
}

func (m *facultyServiceMock) Update(ctx context.Context, number string, req service.UpdateFacultyRequest, uploaded *string) error {
	m.lastNumber = number
	m.lastUpdate = req
	m.lastUploaded = uploaded
	return m.err
}

func (m *facultyServiceMock) Delete(ctx context.Context, number string) error {
	m.lastNumber = number
	return m.err
}

func strPtr(v string) *string { return &v }

func TestFacultyHandlerListEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewFacultyHandler(&facultyServiceMock{listResp: []models.Faculty{}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/faculties", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFacultyHandlerListFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewFacultyHandler(&facultyServiceMock{err: appErrors.Internal(errors.New("boom"), "Error fetching data")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/faculties", nil)

	handler.List(c)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error fetching data","code":"INTERNAL_ERROR"}`, w.Body.String())
}

func TestFacultyHandlerGetRendersNulls(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &facultyServiceMock{getResp: &models.Faculty{FacultyNumber: "F1", FacultyName: strPtr("Dr. A")}}
	handler := NewFacultyHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/faculties/F1", nil)
	c.Params = gin.Params{{Key: "facultyNumber", Value: "F1"}}

	handler.Get(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "F1", mockSvc.lastNumber)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Dr. A", body["faculty_name"])
	assert.Contains(t, body, "faculty_profile")
	assert.Nil(t, body["faculty_profile"])
}

func TestFacultyHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewFacultyHandler(&facultyServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "Faculty not found")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/faculties/F404", nil)
	c.Params = gin.Params{{Key: "facultyNumber", Value: "F404"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Faculty not found","code":"NOT_FOUND"}`, w.Body.String())
}

func TestFacultyHandlerCreateMultipart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &facultyServiceMock{}
	handler := NewFacultyHandler(mockSvc)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("faculty_number", "F1"))
	require.NoError(t, writer.WriteField("faculty_name", "Dr. A"))
	require.NoError(t, writer.WriteField("joining_year", "2015"))
	part, err := writer.CreateFormFile("faculty_profile", "a.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/faculties", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	c.Set(middleware.ContextUploadKey, "1700000000000-a.png")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Faculty added successfully"}`, w.Body.String())
	assert.Equal(t, "F1", mockSvc.lastCreate.FacultyNumber)
	assert.Equal(t, "2015", *mockSvc.lastCreate.JoiningYear.Text())
	assert.Nil(t, mockSvc.lastCreate.Department)
	assert.Nil(t, mockSvc.lastCreate.FacultyProfile)
	require.NotNil(t, mockSvc.lastUploaded)
	assert.Equal(t, "1700000000000-a.png", *mockSvc.lastUploaded)
}

func TestFacultyHandlerCreateJSONNumbersAsText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &facultyServiceMock{}
	handler := NewFacultyHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/faculties",
		bytes.NewBufferString(`{"faculty_number":"F1","joining_year":2015,"mobile":9876543210}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "2015", *mockSvc.lastCreate.JoiningYear.Text())
	assert.Equal(t, "9876543210", *mockSvc.lastCreate.Mobile.Text())
}

func TestFacultyHandlerCreateInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &facultyServiceMock{}
	handler := NewFacultyHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/faculties", bytes.NewBufferString(`{"faculty_number":`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid payload","code":"VALIDATION_ERROR"}`, w.Body.String())
	assert.False(t, mockSvc.createCalled)
}

func TestFacultyHandlerUpdateUsesPathKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &facultyServiceMock{}
	handler := NewFacultyHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/faculties/F1",
		bytes.NewBufferString(`{"faculty_number":"F2","faculty_name":"Dr. B","faculty_profile":""}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "facultyNumber", Value: "F1"}}

	handler.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Faculty updated successfully"}`, w.Body.String())
	assert.Equal(t, "F1", mockSvc.lastNumber)
	assert.Equal(t, "Dr. B", *mockSvc.lastUpdate.FacultyName.Text())
	require.NotNil(t, mockSvc.lastUpdate.FacultyProfile)
	assert.Equal(t, "", *mockSvc.lastUpdate.FacultyProfile.Text())
	assert.Nil(t, mockSvc.lastUploaded)
}

func TestFacultyHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &facultyServiceMock{}
	handler := NewFacultyHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/faculties/F1", nil)
	c.Params = gin.Params{{Key: "facultyNumber", Value: "F1"}}

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Faculty deleted successfully"}`, w.Body.String())
	assert.Equal(t, "F1", mockSvc.lastNumber)
}
