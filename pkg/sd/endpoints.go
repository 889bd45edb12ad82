package sd

// DefaultBaseURL is the hosted location of the service descriptors.
const DefaultBaseURL = "https://service.sd.dk/sdws/"

// DefaultEndpoints lists the descriptor documents fetched and bound when a
// client is created. Each descriptor exposes exactly one operation.
// Superseded versions of an operation are bound alongside the current one,
// but only the latest dated version is reachable through the client's
// methods.
var DefaultEndpoints = []string{
	"GetDepartment20080201WSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetDepartment20111201.wsdl",
	"xml/schema/sd.dk/xml.wsdl/20190701/GetDepartmentParent20190701.wsdl",
	"GetInstitution20080201WSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetInstitution20111201.wsdl",
	"GetOrganizationWSDL",
	"GetOrganization20080201WSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetOrganization20111201.wsdl",
	"GetEmployment20070401WSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetEmployment20111201.wsdl",
	"GetEmploymentChanged20070401WSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetEmploymentChanged20111201.wsdl",
	"GetEmploymentChangedAtDate20070401WSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetEmploymentChangedAtDate20111201.wsdl",
	"GetPersonWSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetPerson20111201.wsdl",
	"GetPersonChangedAtDateWSDL",
	"xml/schema/sd.dk/xml.wsdl/20111201/GetPersonChangedAtDate20111201.wsdl",
	"GetProfessionWSDL",
	"GetProfession20080201WSDL",
}
