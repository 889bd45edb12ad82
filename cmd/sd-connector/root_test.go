package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestDepartmentCommand(t *testing.T) {
	is := is.New(t)

	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if r.Method == http.MethodPost {
			w.Write([]byte(departmentResponse))
			return
		}

		fmt.Fprintf(w, departmentDescriptor, ts.URL+"/soap")
	}))
	defer ts.Close()

	endpointsFile := filepath.Join(t.TempDir(), "endpoints.yaml")
	err := os.WriteFile(endpointsFile,
		[]byte("baseURL: "+ts.URL+"/\nendpoints:\n  - GetDepartment20111201.wsdl\n"), 0600)
	is.NoErr(err)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"department",
		"--username", "user",
		"--password", "secret",
		"--endpoints-file", endpointsFile,
		"--institution", "12345",
	})

	err = rootCmd.ExecuteContext(context.Background())

	is.NoErr(err)
	is.True(strings.Contains(out.String(), "Kirurgisk afdeling")) // record printed on stdout
}

func TestParseDate(t *testing.T) {
	is := is.New(t)

	d, err := parseDate("2024-03-14")
	is.NoErr(err)
	is.Equal(d, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC))

	d, err = parseDate("")
	is.NoErr(err)
	is.True(d.IsZero()) // empty flag keeps the zero value so defaults apply

	_, err = parseDate("14/03/2024")
	is.True(err != nil)
}

func TestParseDateTime(t *testing.T) {
	is := is.New(t)

	d, err := parseDateTime("2024-03-14 07:30:00")
	is.NoErr(err)
	is.Equal(d, time.Date(2024, time.March, 14, 7, 30, 0, 0, time.UTC))

	_, err = parseDateTime("2024-03-14T07:30:00")
	is.True(err != nil)
}

const departmentDescriptor = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
                  targetNamespace="urn:oio:sd:snitflader:2011.12.01">
  <wsdl:portType name="GetDepartment20111201PortType">
    <wsdl:operation name="GetDepartment20111201Operation"/>
  </wsdl:portType>
  <wsdl:binding name="GetDepartment20111201Binding">
    <wsdl:operation name="GetDepartment20111201Operation">
      <soap:operation soapAction="urn:GetDepartment20111201"/>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:service name="GetDepartment20111201Service">
    <wsdl:port name="GetDepartment20111201Port">
      <soap:address location="%s"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>`

const departmentResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetDepartment20111201 xmlns="urn:oio:sd:snitflader:2011.12.01">
      <Department>
        <DepartmentIdentifier>ABCD</DepartmentIdentifier>
        <DepartmentName>Kirurgisk afdeling</DepartmentName>
      </Department>
    </GetDepartment20111201>
  </soap:Body>
</soap:Envelope>`
