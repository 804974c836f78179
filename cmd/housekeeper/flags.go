package main

import (
	awsx "github.com/x4b1/housekeeper/aws"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// Environment variables read by the flags.
const (
	configEnv      = "HOUSEKEEPER_CONFIG"
	regionEnv      = "AWS_REGION"
	profileEnv     = "AWS_PROFILE"
	endpointEnv    = "AWS_ENDPOINT_URL"
	queueURLEnv    = "SQS_QUEUE_URL"
	topicARNEnv    = "SNS_TOPIC_ARN"
	destinationEnv = "LOGGING_DESTINATION_BUCKET"
	parameterEnv   = "LOGGING_DESTINATION_PARAMETER"
)

// configFile is a YAML file holding default flag values of the commands, either
// namespaced by command or global:
//
//	access-logging:
//	  destination: logs-bucket
//	queue-url: https://sqs.eu-west-1.amazonaws.com/123456789012/demo
//
// Command line flags and environment variables take precedence.
type configFile struct {
	path string
}

// sources returns the environment sources of a flag followed by the config
// file sources for ns.name and name.
func (c *configFile) sources(ns, name string, env ...string) cli.ValueSourceChain {
	chain := cli.EnvVars(env...)
	file := altsrc.NewStringPtrSourcer(&c.path)
	chain.Chain = append(chain.Chain,
		yaml.YAML(ns+"."+name, file),
		yaml.YAML(name, file),
	)

	return chain
}

func (c *configFile) flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "YAML file with default flag values",
		Sources:     cli.EnvVars(configEnv),
		Destination: &c.path,
		TakesFile:   true,
	}
}

func globalFlags(conf *configFile) []cli.Flag {
	return []cli.Flag{
		conf.flag(),
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region, defaults to the shared config one",
			Sources: cli.EnvVars(regionEnv),
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Sources: cli.EnvVars(profileEnv),
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Usage:   "base endpoint for every AWS service, ex: a localstack url",
			Sources: cli.EnvVars(endpointEnv),
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error, defaults to $HOUSEKEEPER_LOG or info",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "json or console",
			Value: "json",
		},
	}
}

// idAttributeFlag is the message attribute carrying the message id, shared by
// the producer and the consumer.
func idAttributeFlag(conf *configFile, ns string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "id-attribute",
		Usage:   "message attribute carrying the message id",
		Value:   awsx.MessageIDKey,
		Sources: conf.sources(ns, "id-attribute"),
	}
}
