package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestEnrichFlags(t *testing.T) {
	flags := enrichFlags()

	t.Run("db is required", func(t *testing.T) {
		var dbFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "db" {
				dbFlag = f
				break
			}
		}
		require.NotNil(t, dbFlag)
		assert.True(t, dbFlag.Required)
	})

	t.Run("date is required", func(t *testing.T) {
		var dateFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "date" {
				dateFlag = f
				break
			}
		}
		require.NotNil(t, dateFlag)
		assert.True(t, dateFlag.Required)
	})

	t.Run("buckets default to the standard layout", func(t *testing.T) {
		defaults := map[string]string{}
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok {
				defaults[f.Name] = f.Value
			}
		}
		assert.Equal(t, "econolens-staging-area", defaults["source-bucket"])
		assert.Equal(t, "econolens-data-enriched", defaults["dest-bucket"])
	})

	t.Run("pool-size defaults to sequential", func(t *testing.T) {
		var poolFlag *cli.IntFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "pool-size" {
				poolFlag = f
				break
			}
		}
		require.NotNil(t, poolFlag)
		assert.Equal(t, 1, poolFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "-l", level}))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
