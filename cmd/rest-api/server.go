/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib"
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func (e HttpError) Unwrap() error {
	return e.error
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/analyse", s.Analyse)
	r.POST("/analyse/raw", s.AnalyseRaw)
	r.POST("/upload", s.Upload)
	r.GET("/forbidden-words", s.ForbiddenWords)
	r.GET("/classes", s.Classes)
	r.GET("/healthz", s.Health)
}

func (s server) Analyse(c *gin.Context) {
	var req lib.AnalyseRequest
	if err := c.ShouldBind(&req); err != nil {
		handleError(c, NewHttpError(400, fmt.Errorf("invalid request: %w", err)))
		return
	}
	c.Set("class", req.ShowClass)

	res, err := s.controller.Analyse(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, res)
}

func (s server) AnalyseRaw(c *gin.Context) {
	contentType, ok := allowedContentTypeEnumMap[c.ContentType()]
	if !ok {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/html or text/plain")))
		return
	}

	showClass := c.Query("show_class")
	c.Set("class", showClass)

	res, err := s.controller.AnalyseRaw(c.Request.Context(), c.Request.Body, contentType, showClass, c.Query("forbidden_words"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, res)
}

func (s server) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		res, _ := s.controller.Upload(nil)
		c.JSON(200, res)
		return
	} else if err != nil {
		handleError(c, NewHttpError(400, fmt.Errorf("invalid upload: %w", err)))
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer file.Close()

	res, err := s.controller.Upload(file)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, res)
}

func (s server) ForbiddenWords(c *gin.Context) {
	c.JSON(200, s.controller.ForbiddenWords())
}

func (s server) Classes(c *gin.Context) {
	c.JSON(200, s.controller.Classes())
}

func (s server) Health(c *gin.Context) {
	health, ok := s.controller.Health()
	if !ok {
		c.JSON(503, health)
		return
	}
	c.JSON(200, health)
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}

	var httpErr HttpError
	if errors.As(err, &httpErr) {
		abort(c, httpErr.code, httpErr.error)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	abort(c, 500, err)
}

func abort(c *gin.Context, code int, err error) {
	_ = c.Error(err)
	c.JSON(code, map[string]interface{}{
		"status":  code,
		"message": err.Error(),
	})
	c.Abort()
}
