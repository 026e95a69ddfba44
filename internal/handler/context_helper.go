package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
	"github.com/noah-isme/campus-records-api/pkg/response"
)

// bindPayload decodes the body according to its content type and writes a 400 when it cannot.
// Multipart bodies bind from their text parts only; file parts are the upload middleware's.
func bindPayload(c *gin.Context, dst interface{}) bool {
	var err error
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		err = bindMultipartValues(c, dst)
	} else {
		err = c.ShouldBind(dst)
	}
	if err != nil {
		response.Error(c, appErrors.Invalid(err, ""))
		return false
	}
	return true
}

func bindMultipartValues(c *gin.Context, dst interface{}) error {
	form, err := c.MultipartForm()
	if err != nil {
		return err
	}
	return binding.MapFormWithTag(dst, form.Value, "form")
}
