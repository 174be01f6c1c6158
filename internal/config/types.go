package config

const (
	DefaultModelDirectory = "/mnt/models"
	DefaultBindHost       = "0.0.0.0"
	DefaultBindPort       = 5000
	DefaultFoundTemplate  = `Model files found: {{ join ", " .Entries }}`
	DefaultAbsentTemplate = "Model path does not exist."

	EnvPrefix = "MODELPROBE"
)

type Server struct {
	ModelDirectory string `hcl:"modelDirectory" split_words:"true"`
	BindHost       string `hcl:"bindHost" split_words:"true"`
	BindPort       int    `hcl:"bindPort" split_words:"true"`

	// templates are rendered with sprig's function map
	FoundTemplate  string `hcl:"foundTemplate" split_words:"true"`
	AbsentTemplate string `hcl:"absentTemplate" split_words:"true"`
}

type Ignition struct {
	Server *Server `hcl:"server"`
}

func NewIgnition() *Ignition {
	return &Ignition{
		Server: &Server{
			ModelDirectory: DefaultModelDirectory,
			BindHost:       DefaultBindHost,
			BindPort:       DefaultBindPort,
			FoundTemplate:  DefaultFoundTemplate,
			AbsentTemplate: DefaultAbsentTemplate,
		},
	}
}
