package http

import (
	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list matches query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRegisterTokenReq binds and validates the push token body.
func (h *handler) processRegisterTokenReq(c *gin.Context) (registerTokenReq, error) {
	var req registerTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
