package domain

import "time"

type Note struct {
	ID         string
	CustomerID string
	AuthorID   string
	AuthorName string
	Content    string // sanitised HTML
	CreatedAt  time.Time
}
