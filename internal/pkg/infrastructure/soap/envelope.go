// Package soap holds the transport plumbing for the remote SD service:
// request envelope encoding, response unwrapping, fault decoding and the
// authenticated session (with its per-credential cache) that every bound
// operation call goes through.
package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	sderrors "github.com/magenta-aps/sd-connector/pkg/sd/errors"
	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

const envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"

// BoundOperation is a callable handle produced by binding a service
// descriptor. Immutable once the registry has been constructed.
type BoundOperation struct {
	Name      string // canonical operation name, also the request element name
	Action    string // SOAPAction advertised by the descriptor binding
	Endpoint  string
	Namespace string // target namespace of the request schema
}

// Response is one structured record (or sequence of records) returned by a
// bound operation. The body is the inner XML of the response element, kept
// opaque so that callers with their own schema types can Decode into them.
type Response struct {
	Operation string
	Body      []byte
}

func (r *Response) Decode(v any) error {
	return xml.Unmarshal(r.Body, v)
}

// EncodeRequest renders the field set as a SOAP 1.1 request envelope. Field
// order is preserved, the remote schemas are sequence-typed and reject
// reordered elements.
func EncodeRequest(op BoundOperation, fields params.Fields) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, `<soap:Envelope xmlns:soap=%q><soap:Body>`, envelopeNS)
	fmt.Fprintf(&buf, `<%s xmlns=%q>`, op.Name, op.Namespace)

	for _, name := range fields.Names() {
		value, _ := fields.Get(name)
		fmt.Fprintf(&buf, "<%s>", name)
		if err := xml.EscapeText(&buf, []byte(value)); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "</%s>", name)
	}

	fmt.Fprintf(&buf, "</%s>", op.Name)
	buf.WriteString(`</soap:Body></soap:Envelope>`)

	return buf.Bytes(), nil
}

type envelope struct {
	XMLName xml.Name     `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    envelopeBody `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type envelopeBody struct {
	Inner []byte `xml:",innerxml"`
}

type fault struct {
	Code   string `xml:"faultcode"`
	Reason string `xml:"faultstring"`
}

// DecodeResponse unwraps a response envelope. A fault body becomes an error
// wrapping ErrFault, anything else is returned as an opaque Response.
func DecodeResponse(doc []byte) (*Response, error) {
	env := &envelope{}

	err := xml.Unmarshal(doc, env)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response envelope: %s (%w)", err.Error(), sderrors.ErrBadResponse)
	}

	decoder := xml.NewDecoder(bytes.NewReader(env.Body.Inner))

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("response envelope has an empty body (%w)", sderrors.ErrBadResponse)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse response body: %s (%w)", err.Error(), sderrors.ErrBadResponse)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Local == "Fault" {
			f := &fault{}
			if err := decoder.DecodeElement(f, &start); err != nil {
				return nil, fmt.Errorf("failed to parse fault: %s (%w)", err.Error(), sderrors.ErrBadResponse)
			}
			return nil, sderrors.NewFaultError(f.Code, f.Reason)
		}

		return &Response{
			Operation: start.Name.Local,
			Body:      bytes.TrimSpace(env.Body.Inner),
		}, nil
	}
}
