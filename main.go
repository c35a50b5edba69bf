package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/liftbridge-io/adfgvx/app"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cliApp := cli.NewApp()
	cliApp.Name = "adfgvx"
	cliApp.Usage = "Encrypt and decrypt messages with the ADFGVX field cipher"
	cliApp.Version = app.Version
	cliApp.Flags = getFlags()
	cliApp.Commands = []cli.Command{
		{
			Name:   "encrypt",
			Usage:  "encrypt the message file with the key file",
			Flags:  []cli.Flag{keyFileFlag, messageFileFlag, encryptedOutFlag},
			Action: encryptAction,
		},
		{
			Name:   "decrypt",
			Usage:  "decrypt the cipher file with the key file",
			Flags:  []cli.Flag{keyFileFlag, encryptedInFlag, decryptedOutFlag},
			Action: decryptAction,
		},
		{
			Name:   "verify",
			Usage:  "decrypt the cipher file and compare it with the message file",
			Flags:  []cli.Flag{keyFileFlag, encryptedInFlag, messageFileFlag, decryptedOutFlag},
			Action: verifyAction,
		},
		{
			Name:   "bench",
			Usage:  "measure round-trip throughput and latency",
			Flags:  getBenchFlags(),
			Action: benchAction,
		},
	}
	return cliApp
}

var (
	keyFileFlag = cli.StringFlag{
		Name:  "key-file, k",
		Usage: "read the key from `FILE`",
	}
	messageFileFlag = cli.StringFlag{
		Name:  "message-file, m",
		Usage: "read the plaintext message from `FILE`",
	}
	encryptedOutFlag = cli.StringFlag{
		Name:  "out, o",
		Usage: "write the cipher text to `FILE`",
	}
	encryptedInFlag = cli.StringFlag{
		Name:  "in, i",
		Usage: "read the cipher text from `FILE`",
	}
	decryptedOutFlag = cli.StringFlag{
		Name:  "out, o",
		Usage: "write the decrypted plaintext to `FILE`",
	}
)

func getFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load configuration from `FILE`",
		},
		cli.StringFlag{
			Name:  "level, l",
			Usage: "logging level [debug|info|warn|error]",
		},
		cli.BoolFlag{
			Name:  "silent",
			Usage: "disable logging",
		},
	}
}

func getBenchFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "key",
			Usage: "key to benchmark with",
		},
		cli.IntFlag{
			Name:  "messages, n",
			Usage: "number of messages to round trip",
		},
		cli.IntFlag{
			Name:  "length",
			Usage: "characters per message",
		},
		cli.DurationFlag{
			Name:  "limit",
			Usage: "warn when a round trip takes longer than this",
		},
		cli.StringFlag{
			Name:  "format, f",
			Usage: "output format [text|json]",
		},
	}
}

// loadConfig builds the Config from the global config file and applies any
// flags set on the command line.
func loadConfig(c *cli.Context) (*app.Config, error) {
	config, err := app.NewConfig(c.GlobalString("config"))
	if err != nil {
		return nil, err
	}
	if level := c.GlobalString("level"); level != "" {
		l, err := app.GetLogLevel(level)
		if err != nil {
			return nil, err
		}
		config.LogLevel = l
	}
	if c.GlobalBool("silent") {
		config.LogSilent = true
	}
	if v := c.String("key-file"); v != "" {
		config.Files.Key = v
	}
	if v := c.String("message-file"); v != "" {
		config.Files.Message = v
	}
	switch c.Command.Name {
	case "encrypt":
		if v := c.String("out"); v != "" {
			config.Files.Encrypted = v
		}
	case "decrypt", "verify":
		if v := c.String("in"); v != "" {
			config.Files.Encrypted = v
		}
		if v := c.String("out"); v != "" {
			config.Files.Decrypted = v
		}
	case "bench":
		applyBenchFlags(c, config)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyBenchFlags(c *cli.Context, config *app.Config) {
	if c.IsSet("key") {
		config.Bench.Key = c.String("key")
	}
	if c.IsSet("messages") {
		config.Bench.Messages = c.Int("messages")
	}
	if c.IsSet("length") {
		config.Bench.MessageLength = c.Int("length")
	}
	if c.IsSet("limit") {
		config.Bench.TimeLimit = c.Duration("limit")
	}
	if c.IsSet("format") {
		config.Bench.Format = c.String("format")
	}
}

func encryptAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	return app.New(config).Encrypt()
}

func decryptAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	_, err = app.New(config).Decrypt()
	return err
}

func verifyAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	return app.New(config).Verify()
}

func benchAction(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	_, err = app.New(config).Bench(ctx, c.App.Writer)
	return err
}
