package repository

import "errors"

// ErrDuplicateUsername is returned when an insert collides with the unique
// index on users.username.
var ErrDuplicateUsername = errors.New("username already exists")
