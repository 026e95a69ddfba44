package handler

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
	"github.com/noah-isme/campus-records-api/pkg/response"
	"github.com/noah-isme/campus-records-api/pkg/storage"
)

var errFileNotFound = appErrors.NotFound("File not found")

// UploadHandler serves stored profile files back by name.
type UploadHandler struct {
	store storage.Store
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Serve godoc
// @Summary Download an uploaded profile file
// @Tags Uploads
// @Produce octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} response.Body
// @Router /uploads/{filename} [get]
func (h *UploadHandler) Serve(c *gin.Context) {
	name := c.Param("filename")
	if !storage.ValidName(name) {
		response.Error(c, errFileNotFound)
		return
	}
	object, err := h.store.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			response.Error(c, errFileNotFound)
			return
		}
		response.Error(c, appErrors.Internal(err, "Error reading file"))
		return
	}
	defer object.Content.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = object.ContentType
	}
	if contentType != "" {
		c.Header("Content-Type", contentType)
	}
	http.ServeContent(c.Writer, c.Request, name, object.ModTime, object.Content)
}
