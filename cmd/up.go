package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mittwald/modelprobe/internal/config"
	"github.com/mittwald/modelprobe/pkg/pidfile"
	"github.com/mittwald/modelprobe/pkg/status"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	modelDirectory string
	bindHost       string
	bindPort       int
	pidFile        string
)

func init() {
	rootCmd.AddCommand(up)
	up.PersistentFlags().StringVarP(&modelDirectory, "model-dir", "m", config.DefaultModelDirectory, "set the directory whose contents are reported")
	up.PersistentFlags().StringVarP(&bindHost, "host", "H", config.DefaultBindHost, "set the address to listen on (or unix:///path/to.sock)")
	up.PersistentFlags().IntVarP(&bindPort, "port", "p", config.DefaultBindPort, "set the port to listen for status requests")
	up.PersistentFlags().StringVarP(&pidFile, "pidfile", "", "", "write modelprobes process id to this file")
}

var up = &cobra.Command{
	Use:   "up",
	Short: "Start the status server",
	Long:  "This sub-command loads the configuration and serves the model directory status until it is terminated",
	Run: func(cmd *cobra.Command, args []string) {
		ignitionConfig, err := loadIgnitionConfig(cmd)
		if err != nil {
			log.Fatalf("failed while trying to load configuration: '%+v'", err)
		}

		statusHandler, err := status.NewStatusHandler(ignitionConfig.Server)
		if err != nil {
			log.Fatalf("failed to set up status handler: '%+v'", err)
		}

		pidFileHandle := pidfile.New(pidFile)

		if err := pidFileHandle.Acquire(); err != nil {
			log.Fatalf("failed to write pid file to %q: %s", pidFile, err)
		}

		signals := make(chan os.Signal, 1)
		signal.Notify(signals,
			syscall.SIGTERM,
			syscall.SIGINT,
		)

		log.WithField("modelDirectory", ignitionConfig.Server.ModelDirectory).Info("reporting model directory status")

		err = status.RunStatusServer(statusHandler, signals, ignitionConfig.Server)

		if err := pidFileHandle.Release(); err != nil {
			log.Errorf("error while cleaning up the pid file: %s", err)
		}

		if err != nil {
			log.WithError(err).Fatal("status server stopped with error")
		}

		log.Info("status server stopped without error")
	},
}

// loadIgnitionConfig applies defaults, config files, the environment and
// explicitly set flags, in that order.
func loadIgnitionConfig(cmd *cobra.Command) (*config.Ignition, error) {
	ignitionConfig := config.NewIgnition()

	if err := ignitionConfig.GenerateFromConfigDir(configDir); err != nil {
		return nil, err
	}

	if err := ignitionConfig.ApplyEnvironment(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("model-dir") {
		ignitionConfig.Server.ModelDirectory = modelDirectory
	}
	if flags.Changed("host") {
		ignitionConfig.Server.BindHost = bindHost
	}
	if flags.Changed("port") {
		ignitionConfig.Server.BindPort = bindPort
	}

	if err := ignitionConfig.Server.Validate(); err != nil {
		return nil, err
	}

	return ignitionConfig, nil
}
