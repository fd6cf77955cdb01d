package txstore

import (
	"github.com/danlabs/danwallet/infrastructure/logger"
)

var log = logger.RegisterSubSystem("TXST")
