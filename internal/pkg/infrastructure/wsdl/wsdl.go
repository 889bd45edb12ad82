// Package wsdl parses the service descriptors advertised by the remote
// SOAP service. Only the parts needed to bind an operation are extracted:
// the advertised operations, their SOAP actions, the target namespace of
// the request schema and the endpoint address of the service port.
package wsdl

import (
	"encoding/xml"
	"fmt"
)

// Operation is one operation advertised by a descriptor.
type Operation struct {
	Name       string
	SOAPAction string
}

// Descriptor is the parsed form of one service descriptor. The remote
// contract says each descriptor exposes exactly one operation, but that
// invariant is checked at bind time, not here, so that the violation can be
// reported as a construction error with the descriptor's locator attached.
type Descriptor struct {
	TargetNamespace string
	Endpoint        string
	Operations      []Operation
}

type definitions struct {
	XMLName         xml.Name   `xml:"http://schemas.xmlsoap.org/wsdl/ definitions"`
	TargetNamespace string     `xml:"targetNamespace,attr"`
	PortTypes       []portType `xml:"http://schemas.xmlsoap.org/wsdl/ portType"`
	Bindings        []binding  `xml:"http://schemas.xmlsoap.org/wsdl/ binding"`
	Services        []service  `xml:"http://schemas.xmlsoap.org/wsdl/ service"`
}

type portType struct {
	Name       string          `xml:"name,attr"`
	Operations []namedElement  `xml:"http://schemas.xmlsoap.org/wsdl/ operation"`
}

type namedElement struct {
	Name string `xml:"name,attr"`
}

type binding struct {
	Name       string             `xml:"name,attr"`
	Operations []bindingOperation `xml:"http://schemas.xmlsoap.org/wsdl/ operation"`
}

type bindingOperation struct {
	Name string        `xml:"name,attr"`
	SOAP soapOperation `xml:"http://schemas.xmlsoap.org/wsdl/soap/ operation"`
}

type soapOperation struct {
	SOAPAction string `xml:"soapAction,attr"`
}

type service struct {
	Name  string `xml:"name,attr"`
	Ports []port `xml:"http://schemas.xmlsoap.org/wsdl/ port"`
}

type port struct {
	Name    string      `xml:"name,attr"`
	Address soapAddress `xml:"http://schemas.xmlsoap.org/wsdl/soap/ address"`
}

type soapAddress struct {
	Location string `xml:"location,attr"`
}

// Parse extracts a Descriptor from a WSDL 1.1 document.
func Parse(doc []byte) (*Descriptor, error) {
	defs := &definitions{}

	err := xml.Unmarshal(doc, defs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	actions := map[string]string{}
	for _, b := range defs.Bindings {
		for _, op := range b.Operations {
			actions[op.Name] = op.SOAP.SOAPAction
		}
	}

	d := &Descriptor{
		TargetNamespace: defs.TargetNamespace,
	}

	for _, pt := range defs.PortTypes {
		for _, op := range pt.Operations {
			d.Operations = append(d.Operations, Operation{
				Name:       op.Name,
				SOAPAction: actions[op.Name],
			})
		}
	}

	for _, svc := range defs.Services {
		for _, p := range svc.Ports {
			if p.Address.Location != "" {
				d.Endpoint = p.Address.Location
				break
			}
		}
	}

	if d.Endpoint == "" {
		return nil, fmt.Errorf("descriptor advertises no service address")
	}

	return d, nil
}
