package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// txnContextKey is where handlers can pick up the active transaction to
// add custom attributes.
const txnContextKey = "newrelic.txn"

// NewRelicMiddleware instruments each request as a transaction named after
// the matched route, so registration traffic and payment actions show up as
// separate transaction groups.
func NewRelicMiddleware(app *newrelic.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app == nil {
			c.Next()
			return
		}

		txn := app.StartTransaction(c.Request.Method + " " + c.FullPath())
		defer txn.End()

		txn.SetWebRequestHTTP(c.Request)
		c.Set(txnContextKey, txn)

		writer := txn.SetWebResponse(c.Writer)
		c.Writer = &nrResponseWriter{
			ResponseWriter: c.Writer,
			writer:         writer,
		}

		c.Next()

		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				txn.NoticeError(err.Err)
			}
		}
	}
}

// nrResponseWriter forwards status codes to the agent's writer alongside
// the real one.
type nrResponseWriter struct {
	gin.ResponseWriter
	writer interface {
		WriteHeader(int)
	}
}

func (w *nrResponseWriter) WriteHeader(code int) {
	w.writer.WriteHeader(code)
	w.ResponseWriter.WriteHeader(code)
}
