package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pegasus/internal/flagx"
	"github.com/dmitrijs2005/pegasus/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Keys
// missing from the file keep their current values. Read or decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		RequestTimeout:     timex.Duration{Duration: cfg.RequestTimeout},
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.RequestTimeout = jc.RequestTimeout.Duration
}
