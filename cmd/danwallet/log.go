package main

import (
	"github.com/danlabs/danwallet/infrastructure/logger"
)

var log = logger.RegisterSubSystem("DWLT")
