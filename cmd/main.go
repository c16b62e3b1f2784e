// cmd/main.go
package main

import (
	"go-iptv-portal/app"
)

// @title           IPTV Portal API
// @version         1.0
// @description     Gated streaming-channel portal: single-use access tokens, session cookies, channel catalog.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
