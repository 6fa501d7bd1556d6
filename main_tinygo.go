//go:build tinygo

package main

import (
	"dhtconsole/app"
	"dhtconsole/hal"
)

func main() {
	app.Run(hal.New())
}
