package cmd

import (
	"net"
	"net/http"
	"net/http/pprof"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configDir string
var logLevel string
var enableProfile bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "/etc/modelprobe.d", "set directory to where your .hcl-configs are located")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "set the log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&enableProfile, "profile", false, "enable pprof http server")
}

var rootCmd = &cobra.Command{
	Use:     "modelprobe",
	Short:   "modelprobe - model directory status probe",
	Long:    "modelprobe answers HTTP requests with the current contents of the model directory mounted into a container",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)

		if enableProfile {
			go func() {
				mux := http.NewServeMux()
				mux.HandleFunc("/debug/pprof/", pprof.Index)
				mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
				mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
				mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
				mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

				listener, err := net.Listen("tcp", "127.0.0.1:0")
				if err != nil {
					log.Errorf("pprof server failed to listen: %v", err)
					return
				}
				log.Infof("Starting pprof server on http://%s/debug/pprof/", listener.Addr().String())
				if err := http.Serve(listener, mux); err != nil {
					log.Errorf("pprof server error: %v", err)
				}
			}()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		up.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
