package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/validation"
)

const (
	codeBookNotFound     = "BOOK_NOT_FOUND"
	codeBookCreateFailed = "BOOK_CREATE_FAILED"
	codeBookListFailed   = "BOOK_LIST_FAILED"
	codeBookFetchFailed  = "BOOK_FETCH_FAILED"
	codeBookUpdateFailed = "BOOK_UPDATE_FAILED"
	codeBookDeleteFailed = "BOOK_DELETE_FAILED"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Status:  validation.StatusFail,
		Code:    code,
		Message: message,
	})
}

// writeInternalError records err on the context for the access log before
// replying; the client only sees message.
func writeInternalError(c *gin.Context, status int, err error, code, message string) {
	_ = c.Error(err)
	writeError(c, status, code, message)
}
