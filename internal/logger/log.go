package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sizeLimit = 240 * 1024 // CloudWatch log size limit
	// request log type
	requestType = "request"
	truncated   = "TRUNCATED..."
)

// tracker options carry the Jira password in plain text
var passwordPattern = regexp.MustCompile(`("password"\s*:\s*)"(?:[^"\\]|\\.)*"`)

// logRecord for Request Log
type logRecord struct {
	RequestID       string `json:"request_id"` // AwsRequestID when running in Lambda
	Timestamp       int64  `json:"timestamp"`
	Duration        int64  `json:"duration_ms"`
	HTTPStatusCode  int    `json:"status"`
	ErrorStackTrace string `json:"stack,omitempty"`
	HTTPMethod      string `json:"method"`
	RequestPath     string `json:"path"`
	RequestQuery    string `json:"query,omitempty"`
	RequestBody     string `json:"request_body,omitempty"`
	ResponseBody    string `json:"response_body,omitempty"`
	Type            string `json:"type"` // keyword for logstash to identify the log as request log
}

func (record *logRecord) String() string {
	buf := bytes.NewBufferString("")
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(record); err != nil {
		GetLogger().Error("failed to encode log record", zap.Error(err))
		return "{}"
	}
	return buf.String()
}

// GinLogMiddleware writes one request log line per request, even when a handler panics.
func GinLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var record *logRecord
		// overwrite the gin.Context.Writer to log response body
		respWriter := &respLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = respWriter

		defer func() {
			GetLogger().Info("request", zap.String("record", logTruncate(record)))
		}()

		defer func() {
			if r := recover(); r != nil {
				record.HTTPStatusCode = http.StatusInternalServerError
				record.ErrorStackTrace = string(debug.Stack())
				// throw the panic to the later middlewares
				panic(r)
			}
		}()

		record = initLogRecord(c)

		if lc, ok := lambdacontext.FromContext(c.Request.Context()); ok {
			record.RequestID = lc.AwsRequestID
		}

		c.Next()

		record.HTTPStatusCode = c.Writer.Status()
		record.Duration = time.Now().UnixMilli() - record.Timestamp
		record.ResponseBody = redact(respWriter.body.String())
	}
}

func logTruncate(record *logRecord) string {
	logStr := record.String()
	if len(logStr) < sizeLimit {
		return logStr
	}
	respSize := len(record.ResponseBody)
	reqSize := len(record.RequestBody)

	record.ResponseBody = truncated
	if len(logStr)-respSize > sizeLimit {
		record.RequestBody = truncated
	}
	if len(logStr)-respSize-reqSize > sizeLimit {
		record.ErrorStackTrace = truncated
	}
	return record.String()
}

type respLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w respLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w respLogWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func redact(body string) string {
	return passwordPattern.ReplaceAllString(body, `$1"[REDACTED]"`)
}

func initLogRecord(c *gin.Context) *logRecord {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			GetLogger().Warn("failed to read request body", zap.Error(err))
		}
		// reattach request body for later use
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	return &logRecord{
		Timestamp:    time.Now().UnixMilli(),
		HTTPMethod:   c.Request.Method,
		RequestPath:  c.Request.URL.Path,
		RequestQuery: c.Request.URL.Query().Encode(),
		RequestBody:  redact(string(body)),
		Type:         requestType,
	}
}
