package logic

import "errors"

// ErrNotFound reports that a requested entity does not exist. Handlers map
// it to a 404 so the database sentinel never crosses the HTTP boundary.
var ErrNotFound = errors.New("not found")
