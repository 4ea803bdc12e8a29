package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// failure renders a domain failure: HTTP 200 with success=false. The process
// keeps serving; retry decisions belong to the caller.
func failure(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
}

// badRequest renders a malformed or incomplete request as a 500 envelope,
// matching the API's catch-all behavior for parse failures.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": bindErrorText(err)})
}

func bindErrorText(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("invalid field %q (%s)", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
