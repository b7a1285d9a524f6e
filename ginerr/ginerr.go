// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ginerr renders httperr errors recorded on a gin context.
//
// Handlers reject a request with Reject (or c.Error followed by c.Abort).
// Middleware, installed early in the chain, recovers the last recorded error
// once the chain returns:
//
//	r := gin.New()
//	r.Use(ginerr.Middleware(zap.S()))
//	r.GET("/items/:id", func(c *gin.Context) {
//		id, err := httperr.From(strconv.Atoi(c.Param("id"))).ClientErr()
//		if err != nil {
//			ginerr.Reject(c, err)
//			return
//		}
//		...
//	})
//
// Errors that are not httperr.HTTPErrors stay in c.Errors for outer middleware.
package ginerr

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stacklok/toolhive-httperr/httperr"
)

// Middleware returns a gin middleware rendering the last error recorded by the chain.
// Nothing is done if the response was already written. A nil log uses the global zap logger.
func Middleware(log httperr.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.S()
	}
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		resp, err := httperr.Recover(log, c.Errors.Last().Err)
		if err != nil {
			return
		}
		resp.Write(c.Writer)
	}
}

// Reject records err on the context and stops the handler chain.
// A nil err is ignored.
func Reject(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
