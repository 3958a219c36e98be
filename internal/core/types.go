// Package core carries row events between the data source and the hosts.
package core

import (
	"time"
)

// EventType identifies the type of event.
type EventType string

const (
	EventRowsAppended    EventType = "rows_appended"
	EventViewportChanged EventType = "viewport_changed"
	EventRowActivated    EventType = "row_activated"
	EventFeedError       EventType = "feed_error"
)

// Event represents something that happened to the list or its view.
type Event struct {
	Type      EventType
	Data      interface{}
	Timestamp time.Time
}

// RowsAppendedData describes rows added at the end of the list.
type RowsAppendedData struct {
	Count   int    // total rows after the append
	Version uint64 // store version after the append
}

// ViewportData describes the rows a host is showing.
type ViewportData struct {
	First  int
	Last   int
	Offset float64
}

// RowActivatedData identifies an activated row.
type RowActivatedData struct {
	Index   int
	ID      string
	Message string
}

// ErrorData contains data for error events.
type ErrorData struct {
	Error string
}
