package wsdl

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseSingleOperationDescriptor(t *testing.T) {
	is := is.New(t)

	d, err := Parse([]byte(departmentWSDL))

	is.NoErr(err)
	is.Equal(d.TargetNamespace, "urn:oio:sd:snitflader:2011.12.01")
	is.Equal(d.Endpoint, "https://service.sd.dk/sdws/services/GetDepartment20111201")
	is.Equal(len(d.Operations), 1)
	is.Equal(d.Operations[0].Name, "GetDepartment20111201Operation")
	is.Equal(d.Operations[0].SOAPAction, "urn:GetDepartment20111201")
}

func TestParseKeepsEveryAdvertisedOperation(t *testing.T) {
	is := is.New(t)

	d, err := Parse([]byte(twoOperationWSDL))

	is.NoErr(err)
	is.Equal(len(d.Operations), 2) // the bind step rejects this, parsing must not
}

func TestParseRejectsDescriptorWithoutServiceAddress(t *testing.T) {
	is := is.New(t)

	_, err := Parse([]byte(noAddressWSDL))

	is.True(err != nil)
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	is := is.New(t)

	_, err := Parse([]byte("this is not xml"))

	is.True(err != nil)
}

const departmentWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
                  xmlns:tns="urn:oio:sd:snitflader:2011.12.01"
                  targetNamespace="urn:oio:sd:snitflader:2011.12.01">
  <wsdl:portType name="GetDepartment20111201PortType">
    <wsdl:operation name="GetDepartment20111201Operation">
      <wsdl:input message="tns:GetDepartment20111201Request"/>
      <wsdl:output message="tns:GetDepartment20111201Response"/>
    </wsdl:operation>
  </wsdl:portType>
  <wsdl:binding name="GetDepartment20111201Binding" type="tns:GetDepartment20111201PortType">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <wsdl:operation name="GetDepartment20111201Operation">
      <soap:operation soapAction="urn:GetDepartment20111201"/>
    </wsdl:operation>
  </wsdl:binding>
  <wsdl:service name="GetDepartment20111201Service">
    <wsdl:port name="GetDepartment20111201Port" binding="tns:GetDepartment20111201Binding">
      <soap:address location="https://service.sd.dk/sdws/services/GetDepartment20111201"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>`

const twoOperationWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
                  targetNamespace="urn:example">
  <wsdl:portType name="TwoOpsPortType">
    <wsdl:operation name="FirstOperation"/>
    <wsdl:operation name="SecondOperation"/>
  </wsdl:portType>
  <wsdl:service name="TwoOpsService">
    <wsdl:port name="TwoOpsPort">
      <soap:address location="https://example.com/services/TwoOps"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>`

const noAddressWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
                  targetNamespace="urn:example">
  <wsdl:portType name="PortType">
    <wsdl:operation name="SomeOperation"/>
  </wsdl:portType>
</wsdl:definitions>`
