package main

import (
	"github.com/codeshare-dev/backend/cmd/app"
)

func main() {
	app.Run()
}
