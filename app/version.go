package app

// Version of the adfgvx tool.
// This variable can be overridden at build time using:
//
//	go build -ldflags "-X github.com/liftbridge-io/adfgvx/app.Version=v1.0.0"
var Version = "dev"
