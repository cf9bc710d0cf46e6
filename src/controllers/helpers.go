package controllers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var registerTagNames sync.Once

// UseJSONFieldNames makes validation errors report JSON field names.
func UseJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body, answering 400 (or 413) itself on failure.
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	err := ctx.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
		return false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "fields": fields})
		return false
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
	return false
}

// respondError maps service errors to HTTP responses. notFound is the message
// used for ErrNotFound.
func respondError(ctx *gin.Context, err error, notFound string) {
	var conflict *services.ConflictError
	var inUse *services.CatalogInUseError
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.As(err, &conflict):
		body := gin.H{"error": conflict.Message}
		if conflict.Detail != "" {
			body["details"] = conflict.Detail
		}
		ctx.JSON(http.StatusBadRequest, body)
	case errors.As(err, &inUse):
		ctx.JSON(http.StatusConflict, gin.H{"error": inUse.Error()})
	default:
		_ = ctx.Error(err)
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
