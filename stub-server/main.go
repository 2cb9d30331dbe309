package main

import (
	"dishorder/config"
	"dishorder/internal/devserver"
)

func main() {
	server := devserver.New()
	devserver.Start(config.StubAddr(), server.Router())
}
