package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/response"
)

// bind reads query parameters on GET and a JSON body otherwise. An absent
// body is treated as an empty request; the usecases decide what is missing.
func bind(c *gin.Context, obj any) bool {
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(obj)
	} else {
		err = c.ShouldBindJSON(obj)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Voice{
			Code:   response.CodeInvalidRequest,
			Speech: "Sorry, I couldn't make sense of that request.",
		})
		return false
	}
	return true
}
