package export

import "errors"

var ErrNothingToExport = errors.New("no time logs to export")
