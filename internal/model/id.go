package model

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const BookIDLength = 16

func NewBookID() (string, error) {
	id, err := gonanoid.New(BookIDLength)
	if err != nil {
		return "", fmt.Errorf("generate book id: %w", err)
	}
	return id, nil
}
