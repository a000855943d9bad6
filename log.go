package style

import (
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[style] ", log.Lshortfile)
