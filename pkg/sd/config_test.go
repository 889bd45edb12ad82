package sd

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestLoadEndpointConfig(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadEndpointConfig(strings.NewReader(configFile))

	is.NoErr(err)
	is.Equal(cfg.BaseURL, "https://gateway.example.com/sdws/")
	is.Equal(cfg.Endpoints, []string{
		"xml/schema/sd.dk/xml.wsdl/20111201/GetDepartment20111201.wsdl",
		"GetProfessionWSDL",
	})
}

func TestLoadEndpointConfigDefaultsEmptyFields(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadEndpointConfig(strings.NewReader("baseURL: https://gateway.example.com/sdws/\n"))

	is.NoErr(err)
	is.Equal(cfg.BaseURL, "https://gateway.example.com/sdws/")
	is.Equal(cfg.Endpoints, DefaultEndpoints) // omitted endpoint list falls back to the full set

	cfg, err = LoadEndpointConfig(strings.NewReader(""))

	is.NoErr(err)
	is.Equal(cfg.BaseURL, DefaultBaseURL)
}

var configFile string = `
baseURL: https://gateway.example.com/sdws/
endpoints:
  - xml/schema/sd.dk/xml.wsdl/20111201/GetDepartment20111201.wsdl
  - GetProfessionWSDL
`
