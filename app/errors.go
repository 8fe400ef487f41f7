package app

import "github.com/exerun/exerun/internal/apperr"

var errSessionCmd = &apperr.Error{
	Message: "the post-workout command failed",
}
