package domain

import "time"

type Document struct {
	ID           string
	CustomerID   string
	OriginalName string // name as uploaded, used for the download filename
	FileName     string // "{unixMillis}_{sanitized}" on disk
	MimeType     string
	Size         int64
	Path         string
	UploadedBy   string
	CreatedAt    time.Time
}
