package main

import (
	"os"
)

// @title           Peerswap API
// @version         1.0
// @description     REST interface to the peerswap plugin of a Core Lightning node.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3001
// @BasePath  /v1

// @securityDefinitions.apikey MacaroonAuth
// @in header
// @name macaroon
// @description Hex encoded access macaroon, or base64 with the encodingtype header set to base64.
func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
