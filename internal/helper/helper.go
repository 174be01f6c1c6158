package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(value, defaultValue, field, section string) string {
	if len(value) == 0 {
		log.WithFields(log.Fields{"kind": section, "field": field}).Debugf("no value specified or env variable not found, assuming default %q", defaultValue)
		return defaultValue
	}
	return value
}
