package libdanwallet

import (
	"github.com/danlabs/danwallet/infrastructure/logger"
)

var log = logger.RegisterSubSystem("WLIB")
