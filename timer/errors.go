package timer

import "github.com/exerun/exerun/internal/apperr"

var (
	errReadStatus = &apperr.Error{
		Message: "unable to read workout status",
	}

	errWriteStatus = &apperr.Error{
		Message: "unable to write workout status",
	}

	errNoRunToFinish = &apperr.Error{
		Message: "the run was never started",
	}
)
