package middleware

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

const logTimeFormat = "2006-01-02 15:04:05"

// Logger writes one access log line per request to out, tagged with the
// request id and any errors handlers attached with c.Error.
func Logger(out io.Writer) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatAccessLog,
		Output:    out,
	})
}

func formatAccessLog(p gin.LogFormatterParams) string {
	return accessLogLine(p, p.Keys[requestIDKey])
}

func accessLogLine(p gin.LogFormatterParams, requestID any) string {
	line := fmt.Sprintf("[%s] %s - %s %s - %d - %s - req=%v",
		p.TimeStamp.Format(logTimeFormat),
		p.ClientIP,
		p.Method,
		p.Path,
		p.StatusCode,
		p.Latency,
		requestID,
	)

	if msg := strings.TrimSpace(p.ErrorMessage); msg != "" {
		line += " - error=" + msg
	}
	return line + "\n"
}
