package config

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl"
	"github.com/kelseyhightower/envconfig"
	"github.com/mittwald/modelprobe/internal/helper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const unixSocketPrefix = "unix://"

// GenerateFromConfigDir merges every *.hcl file below configDir into the
// ignition config. A missing directory leaves the defaults untouched.
func (ignitionConfig *Ignition) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")
	if configDir == "" {
		return nil
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		log.Infof("config directory %s does not exist, using defaults", configDir)
		return nil
	}

	matches, err := findFilesInPath(configDir)
	if err != nil {
		return errors.Wrapf(err, "failed to search config directory %q", configDir)
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "could not read configuration file %s", m)
		}

		fileConfig := Ignition{}
		if err := hcl.Unmarshal(contents, &fileConfig); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %s", m)
		}

		ignitionConfig.Server.merge(fileConfig.Server)
	}

	return nil
}

// ApplyEnvironment overlays MODELPROBE_* environment variables.
func (ignitionConfig *Ignition) ApplyEnvironment() error {
	if err := envconfig.Process(EnvPrefix, ignitionConfig.Server); err != nil {
		return errors.Wrap(err, "failed to process environment")
	}
	return nil
}

// merge copies every value set in other onto s. Later files win; values
// that are unset or resolve to an empty ENV: reference keep the current one.
func (s *Server) merge(other *Server) {
	if other == nil {
		return
	}

	s.ModelDirectory = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(other.ModelDirectory), s.ModelDirectory, "modelDirectory", "server")
	s.BindHost = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(other.BindHost), s.BindHost, "bindHost", "server")
	s.FoundTemplate = helper.SetDefaultStringIfEmpty(other.FoundTemplate, s.FoundTemplate, "foundTemplate", "server")
	s.AbsentTemplate = helper.SetDefaultStringIfEmpty(other.AbsentTemplate, s.AbsentTemplate, "absentTemplate", "server")

	if other.BindPort != 0 {
		s.BindPort = other.BindPort
	}
}

func (s *Server) Validate() error {
	if s.ModelDirectory == "" {
		return errors.New("modelDirectory must not be empty")
	}
	if s.IsUnixSocket() {
		return nil
	}
	if s.BindPort < 0 || s.BindPort > 65535 {
		return errors.Errorf("bindPort %d is out of range", s.BindPort)
	}
	return nil
}

func (s *Server) IsUnixSocket() bool {
	return strings.HasPrefix(s.BindHost, unixSocketPrefix)
}

// ListenAddress is either host:port or, for unix sockets, the socket path.
func (s *Server) ListenAddress() string {
	if s.IsUnixSocket() {
		return strings.TrimPrefix(s.BindHost, unixSocketPrefix)
	}
	return net.JoinHostPort(s.BindHost, strconv.Itoa(s.BindPort))
}
