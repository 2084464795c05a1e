package main

import "github.com/adanyl0v/go-todo-console/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustRunConsole()
}
