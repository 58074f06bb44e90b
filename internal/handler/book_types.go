package handler

import (
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/validation"
)

const statusSuccess = "success"

// BookRequest is the payload of both create and update. Finished is never
// accepted from clients. Numbers may arrive as 100, 100.0 or "100".
type BookRequest struct {
	Name      string         `json:"name" binding:"required" example:"Buku A"`
	Year      validation.Int `json:"year" swaggertype:"integer" example:"2010"`
	Author    string         `json:"author" example:"John Doe"`
	Summary   string         `json:"summary" example:"Lorem ipsum dolor sit amet"`
	Publisher string         `json:"publisher" example:"Dicoding Indonesia"`
	PageCount validation.Int `json:"pageCount" binding:"min=0" swaggertype:"integer" example:"100"`
	ReadPage  validation.Int `json:"readPage" binding:"min=0,ltefield=PageCount" swaggertype:"integer" example:"25"`
	Reading   bool           `json:"reading" example:"false"`
}

type Book struct {
	ID         string          `json:"id" example:"Qbax5Oy7L8WKf74l"`
	Name       string          `json:"name"`
	Year       int             `json:"year"`
	Author     string          `json:"author"`
	Summary    string          `json:"summary"`
	Publisher  string          `json:"publisher"`
	PageCount  int             `json:"pageCount"`
	ReadPage   int             `json:"readPage"`
	Finished   bool            `json:"finished"`
	Reading    bool            `json:"reading"`
	InsertedAt model.Timestamp `json:"insertedAt" swaggertype:"string" example:"2021-03-04T09:11:44.598Z"`
	UpdatedAt  model.Timestamp `json:"updatedAt" swaggertype:"string" example:"2021-03-04T09:11:44.598Z"`
}

type BookSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

type CreatedBook struct {
	BookID string `json:"bookId"`
}

type CreateBookResponse struct {
	Status  string      `json:"status" example:"success"`
	Message string      `json:"message" example:"Buku berhasil ditambahkan"`
	Data    CreatedBook `json:"data"`
}

type BookData struct {
	Book Book `json:"book"`
}

type BookResponse struct {
	Status string   `json:"status" example:"success"`
	Data   BookData `json:"data"`
}

type BookList struct {
	Books []BookSummary `json:"books"`
}

type ListBooksResponse struct {
	Status string   `json:"status" example:"success"`
	Data   BookList `json:"data"`
}
