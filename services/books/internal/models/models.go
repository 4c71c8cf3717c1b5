package models

import "github.com/google/uuid"

type Book struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description *string   `json:"description"`
	Rating      float64   `json:"rating"`
}
