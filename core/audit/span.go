// Copyright 2024 - 2025, Jack Fan and the blog contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"encoding/base64"
	"fmt"
	"runtime/trace"
	"strconv"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Span represents an HTTP request in flight.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration
	metric   *servertiming.Metric

	Destination TrafficDestination
	RequestID   string
	Method      string
	URL         string
	StatusCode  int
	Error       error
	// Size is the response body length in bytes.
	Size int
	// CacheHit is set when the response was served from the page cache.
	CacheHit bool
}

// TrafficDestination describes the logical destination of an HTTP request.
type TrafficDestination string

// Constants for traffic destinations.
const (
	ToUser TrafficDestination = "user"
)

// ServerTimingName is the metric name used in the Server-Timing header:
// destination, method and base64url(URL) joined by '$'.
func (span Span) ServerTimingName() string {
	// base64 without trailing '=' to match the header syntax
	return string(span.Destination) + "$" + span.Method + "$" + base64.RawURLEncoding.EncodeToString([]byte(span.URL))
}

// Begin starts timing the span and registers a Server-Timing metric if ctx carries a timing header.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "http."+string(span.Destination))
	if servertimingContext := servertiming.FromContext(ctx); servertimingContext != nil {
		span.metric = servertimingContext.NewMetric(span.ServerTimingName())
		span.metric.Extra = make(map[string]string)
		span.metric.Extra["start"] = strconv.FormatFloat(float64(span.start.UnixNano())/float64(time.Millisecond), 'f', -1, 64)
	}

	return ctx
}

// End stops timing the span. Calling it more than once has no further effect.
func (span *Span) End() {
	// only log once
	if span.task != nil {
		span.duration = time.Since(span.start)
		span.task.End()

		if span.metric != nil {
			span.metric.Duration = span.duration
		}

		span.task = nil
	}
}

// Duration returns how long the span ran, or zero before End.
func (span Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span as a debug line, or a warning if it carries an error.
func (span Span) Log() {
	var event *zerolog.Event
	if span.Error != nil {
		event = log.Warn()
	} else {
		event = log.Debug()
	}

	event.Str("sys", "http")
	event.Str("method", span.Method)
	event.Str("url", span.URL)
	event.Int("status_code", span.StatusCode)
	event.Str("len", humanizeSize(span.Size))
	event.Dur("dur", span.duration)
	event.Str("destination", string(span.Destination))
	event.Str("request_id", span.RequestID)

	if span.CacheHit {
		event.Bool("cache_hit", true)
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Send()
}

const (
	bytesInKB = 1024
	bytesInMB = bytesInKB * bytesInKB
	bytesInGB = bytesInMB * bytesInKB
)

func humanizeSize(x int) string {
	if x < bytesInKB {
		return strconv.Itoa(x)
	}

	if x < bytesInMB {
		return fmt.Sprintf("%.2fK", float64(x)/bytesInKB)
	}

	if x < bytesInGB {
		return fmt.Sprintf("%.2fM", float64(x)/bytesInMB)
	}

	return fmt.Sprintf("%.2fG", float64(x)/bytesInGB)
}
