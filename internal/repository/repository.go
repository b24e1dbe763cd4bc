package repository

import "database/sql"

// ErrNoRows aliases the database sentinel so services can match on it without
// importing database/sql directly.
var ErrNoRows = sql.ErrNoRows
