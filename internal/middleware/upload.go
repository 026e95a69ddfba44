package middleware

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-records-api/internal/service"
	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
	"github.com/noah-isme/campus-records-api/pkg/response"
	"github.com/noah-isme/campus-records-api/pkg/storage"
)

// ContextUploadKey holds the stored name of the file accepted by Upload.
const ContextUploadKey = "uploaded_file"

const msgUploadFailed = "Error uploading file"

// Upload stores the multipart file sent under field and exposes its generated
// name through UploadedFile. Requests that are not multipart, or that carry
// no such file, pass through untouched. A storage failure aborts with 500.
func Upload(field string, store storage.Store, maxMemory int64, metrics *service.MetricsService, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if c.ContentType() != binding.MIMEMultipartPOSTForm {
			c.Next()
			return
		}
		// A malformed body is left for the handler's binding to reject.
		if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
			c.Next()
			return
		}
		header, err := c.FormFile(field)
		// The file part shares its key with a text attribute, so it must not
		// reach form binding whether or not it was stored.
		delete(c.Request.MultipartForm.File, field)
		if err != nil {
			if !errors.Is(err, http.ErrMissingFile) {
				logger.Warn("read upload field", zap.String("field", field), zap.Error(err))
			}
			c.Next()
			return
		}

		name := storage.GenerateName(time.Now(), header.Filename)
		if err := put(c, store, name, header); err != nil {
			metrics.RecordUpload(field, 0, err)
			logger.Error("store upload", zap.String("field", field), zap.String("name", name), zap.Error(err))
			response.Error(c, appErrors.Internal(err, msgUploadFailed))
			c.Abort()
			return
		}
		metrics.RecordUpload(field, header.Size, nil)

		c.Set(ContextUploadKey, name)
		c.Next()
	}
}

func put(c *gin.Context, store storage.Store, name string, header *multipart.FileHeader) error {
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	return store.Put(c.Request.Context(), name, file, header.Size, header.Header.Get("Content-Type"))
}

// UploadedFile returns the stored name of the request's upload, or nil when none was sent.
func UploadedFile(c *gin.Context) *string {
	value, exists := c.Get(ContextUploadKey)
	if !exists {
		return nil
	}
	name, ok := value.(string)
	if !ok || name == "" {
		return nil
	}
	return &name
}
