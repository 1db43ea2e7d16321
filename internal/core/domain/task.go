package domain

import (
	"errors"
	"time"
)

// ErrTaskNotFound covers both a missing task and a task owned by another
// user; callers must not be able to tell the two apart.
var ErrTaskNotFound = errors.New("task not found")

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
