package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/apierror"
)

// ErrorHandler translates errors attached to the context into the JSON
// envelope the frontend expects. Handlers call c.Error(err) and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var verr *apierror.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, verr)
			return
		}

		switch apierror.KindOf(err) {
		case apierror.KindNotFound:
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case apierror.KindInvalidArgument:
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
		case apierror.KindConflict:
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			log.Error().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.Request.URL.Path).
				Msg("error no controlado")
			c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		}
	}
}

// Recovery converts panics into 500 responses instead of killing the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("request_id", c.GetString(RequestIDKey)).
					Str("path", c.Request.URL.Path).
					Msg("panic recuperado")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger emits one structured line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("request")
	}
}
