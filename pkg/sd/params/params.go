// Package params builds the request field set for each of the remote
// registry operations. Builders are pure: given the same inputs and the
// same ambient today they produce the same fields, and they perform no I/O.
//
// Every operation has a typed parameter struct with a New*Params
// constructor carrying the service defaults. Indicator flags control which
// optional sub-records the remote service includes in its response.
package params

import (
	"time"

	"github.com/google/uuid"
)

type GetDepartmentParams struct {
	Institution     Identifier
	Department      Identifier
	DepartmentLevel string
	StartDate       time.Time
	EndDate         time.Time

	ContactInformationIndicator   bool
	DepartmentNameIndicator       bool
	EmploymentDepartmentIndicator bool
	PostalAddressIndicator        bool
	ProductionUnitIndicator       bool
	UUIDIndicator                 bool
}

func NewGetDepartmentParams() GetDepartmentParams {
	return GetDepartmentParams{
		DepartmentNameIndicator: true,
		UUIDIndicator:           true,
	}
}

func (p GetDepartmentParams) Fields(today Today) Fields {
	f := NewFields()
	f.SetBool("ContactInformationIndicator", p.ContactInformationIndicator)
	f.SetBool("DepartmentNameIndicator", p.DepartmentNameIndicator)
	f.SetBool("EmploymentDepartmentIndicator", p.EmploymentDepartmentIndicator)
	f.SetBool("PostalAddressIndicator", p.PostalAddressIndicator)
	f.SetBool("ProductionUnitIndicator", p.ProductionUnitIndicator)
	f.SetBool("UUIDIndicator", p.UUIDIndicator)
	setIdentifier(&f, "Institution", p.Institution)
	setIdentifier(&f, "Department", p.Department)
	if p.DepartmentLevel != "" {
		f.Set("DepartmentLevelIdentifier", p.DepartmentLevel)
	}
	setDates(&f, p.StartDate, p.EndDate, today)
	return f
}

type GetDepartmentParentParams struct {
	Department    uuid.UUID
	EffectiveDate time.Time
}

func NewGetDepartmentParentParams(department uuid.UUID) GetDepartmentParentParams {
	return GetDepartmentParentParams{Department: department}
}

func (p GetDepartmentParentParams) Fields(today Today) Fields {
	effective := p.EffectiveDate
	if effective.IsZero() {
		effective = today()
	}

	f := NewFields()
	f.SetDate("EffectiveDate", effective)
	f.Set("DepartmentUUIDIdentifier", p.Department.String())
	return f
}

type GetInstitutionParams struct {
	Region      Identifier
	Institution Identifier

	AdministrationIndicator     bool
	ContactInformationIndicator bool
	PostalAddressIndicator      bool
	ProductionUnitIndicator     bool
	UUIDIndicator               bool
}

func NewGetInstitutionParams() GetInstitutionParams {
	return GetInstitutionParams{UUIDIndicator: true}
}

func (p GetInstitutionParams) Fields(_ Today) Fields {
	f := NewFields()
	f.SetBool("AdministrationIndicator", p.AdministrationIndicator)
	f.SetBool("ContactInformationIndicator", p.ContactInformationIndicator)
	f.SetBool("PostalAddressIndicator", p.PostalAddressIndicator)
	f.SetBool("ProductionUnitIndicator", p.ProductionUnitIndicator)
	f.SetBool("UUIDIndicator", p.UUIDIndicator)
	setIdentifier(&f, "Region", p.Region)
	setIdentifier(&f, "Institution", p.Institution)
	return f
}

type GetOrganizationParams struct {
	Institution Identifier
	StartDate   time.Time
	EndDate     time.Time

	UUIDIndicator bool
}

func NewGetOrganizationParams() GetOrganizationParams {
	return GetOrganizationParams{UUIDIndicator: true}
}

func (p GetOrganizationParams) Fields(today Today) Fields {
	f := NewFields()
	f.SetBool("UUIDIndicator", p.UUIDIndicator)
	setIdentifier(&f, "Institution", p.Institution)
	setDates(&f, p.StartDate, p.EndDate, today)
	return f
}

type GetEmploymentParams struct {
	Institution                       string
	PersonCivilRegistrationIdentifier string
	Employment                        string
	Department                        string
	DepartmentLevel                   string
	EffectiveDate                     time.Time

	StatusActiveIndicator     bool
	StatusPassiveIndicator    bool
	DepartmentIndicator       bool
	EmploymentStatusIndicator bool
	ProfessionIndicator       bool
	SalaryAgreementIndicator  bool
	SalaryCodeGroupIndicator  bool
	WorkingTimeIndicator      bool
	UUIDIndicator             bool
}

func NewGetEmploymentParams(institution string) GetEmploymentParams {
	return GetEmploymentParams{
		Institution:               institution,
		StatusActiveIndicator:     true,
		DepartmentIndicator:       true,
		EmploymentStatusIndicator: true,
		ProfessionIndicator:       true,
		UUIDIndicator:             true,
	}
}

func (p GetEmploymentParams) Fields(today Today) Fields {
	effective := p.EffectiveDate
	if effective.IsZero() {
		effective = today()
	}

	f := NewFields()
	f.Set("InstitutionIdentifier", p.Institution)
	setOptional(&f, "PersonCivilRegistrationIdentifier", p.PersonCivilRegistrationIdentifier)
	setOptional(&f, "EmploymentIdentifier", p.Employment)
	setOptional(&f, "DepartmentIdentifier", p.Department)
	f.SetDate("EffectiveDate", effective)
	f.SetBool("StatusActiveIndicator", p.StatusActiveIndicator)
	f.SetBool("StatusPassiveIndicator", p.StatusPassiveIndicator)
	f.SetBool("DepartmentIndicator", p.DepartmentIndicator)
	f.SetBool("EmploymentStatusIndicator", p.EmploymentStatusIndicator)
	f.SetBool("ProfessionIndicator", p.ProfessionIndicator)
	f.SetBool("SalaryAgreementIndicator", p.SalaryAgreementIndicator)
	f.SetBool("SalaryCodeGroupIndicator", p.SalaryCodeGroupIndicator)
	f.SetBool("WorkingTimeIndicator", p.WorkingTimeIndicator)
	f.SetBool("UUIDIndicator", p.UUIDIndicator)
	setOptional(&f, "DepartmentLevelIdentifier", p.DepartmentLevel)
	return f
}

type GetEmploymentChangedParams struct {
	Institution                       string
	PersonCivilRegistrationIdentifier string
	Employment                        string
	Department                        string
	DepartmentLevel                   string
	StartDate                         time.Time
	EndDate                           time.Time

	DepartmentIndicator       bool
	EmploymentStatusIndicator bool
	ProfessionIndicator       bool
	SalaryAgreementIndicator  bool
	SalaryCodeGroupIndicator  bool
	WorkingTimeIndicator      bool
	UUIDIndicator             bool
}

func NewGetEmploymentChangedParams(institution string) GetEmploymentChangedParams {
	return GetEmploymentChangedParams{
		Institution:               institution,
		DepartmentIndicator:       true,
		EmploymentStatusIndicator: true,
		ProfessionIndicator:       true,
		UUIDIndicator:             true,
	}
}

func (p GetEmploymentChangedParams) Fields(today Today) Fields {
	f := NewFields()
	f.Set("InstitutionIdentifier", p.Institution)
	setOptional(&f, "PersonCivilRegistrationIdentifier", p.PersonCivilRegistrationIdentifier)
	setOptional(&f, "EmploymentIdentifier", p.Employment)
	setOptional(&f, "DepartmentIdentifier", p.Department)
	f.SetBool("DepartmentIndicator", p.DepartmentIndicator)
	f.SetBool("EmploymentStatusIndicator", p.EmploymentStatusIndicator)
	f.SetBool("ProfessionIndicator", p.ProfessionIndicator)
	f.SetBool("SalaryAgreementIndicator", p.SalaryAgreementIndicator)
	f.SetBool("SalaryCodeGroupIndicator", p.SalaryCodeGroupIndicator)
	f.SetBool("WorkingTimeIndicator", p.WorkingTimeIndicator)
	f.SetBool("UUIDIndicator", p.UUIDIndicator)
	setOptional(&f, "DepartmentLevelIdentifier", p.DepartmentLevel)
	setDates(&f, p.StartDate, p.EndDate, today)
	return f
}

type GetEmploymentChangedAtDateParams struct {
	Institution                       string
	PersonCivilRegistrationIdentifier string
	Employment                        string
	Department                        string
	DepartmentLevel                   string
	StartDateTime                     time.Time
	EndDateTime                       time.Time

	DepartmentIndicator        bool
	EmploymentStatusIndicator  bool
	ProfessionIndicator        bool
	SalaryAgreementIndicator   bool
	SalaryCodeGroupIndicator   bool
	WorkingTimeIndicator       bool
	UUIDIndicator              bool
	FutureInformationIndicator bool
}

func NewGetEmploymentChangedAtDateParams(institution string) GetEmploymentChangedAtDateParams {
	return GetEmploymentChangedAtDateParams{
		Institution:               institution,
		DepartmentIndicator:       true,
		EmploymentStatusIndicator: true,
		ProfessionIndicator:       true,
		UUIDIndicator:             true,
	}
}

func (p GetEmploymentChangedAtDateParams) Fields(today Today) Fields {
	f := NewFields()
	f.Set("InstitutionIdentifier", p.Institution)
	setOptional(&f, "PersonCivilRegistrationIdentifier", p.PersonCivilRegistrationIdentifier)
	setOptional(&f, "EmploymentIdentifier", p.Employment)
	setOptional(&f, "DepartmentIdentifier", p.Department)
	f.SetBool("DepartmentIndicator", p.DepartmentIndicator)
	f.SetBool("EmploymentStatusIndicator", p.EmploymentStatusIndicator)
	f.SetBool("ProfessionIndicator", p.ProfessionIndicator)
	f.SetBool("SalaryAgreementIndicator", p.SalaryAgreementIndicator)
	f.SetBool("SalaryCodeGroupIndicator", p.SalaryCodeGroupIndicator)
	f.SetBool("WorkingTimeIndicator", p.WorkingTimeIndicator)
	f.SetBool("UUIDIndicator", p.UUIDIndicator)
	f.SetBool("FutureInformationIndicator", p.FutureInformationIndicator)
	setOptional(&f, "DepartmentLevelIdentifier", p.DepartmentLevel)
	setDateTimes(&f, p.StartDateTime, p.EndDateTime, today)
	return f
}

type GetPersonParams struct {
	Institution                       string
	PersonCivilRegistrationIdentifier string
	Employment                        string
	Department                        string
	DepartmentLevel                   string
	EffectiveDate                     time.Time

	StatusActiveIndicator       bool
	StatusPassiveIndicator      bool
	ContactInformationIndicator bool
	PostalAddressIndicator      bool
}

func NewGetPersonParams(institution string) GetPersonParams {
	return GetPersonParams{
		Institution:           institution,
		StatusActiveIndicator: true,
	}
}

func (p GetPersonParams) Fields(today Today) Fields {
	effective := p.EffectiveDate
	if effective.IsZero() {
		effective = today()
	}

	f := NewFields()
	f.Set("InstitutionIdentifier", p.Institution)
	setOptional(&f, "PersonCivilRegistrationIdentifier", p.PersonCivilRegistrationIdentifier)
	setOptional(&f, "EmploymentIdentifier", p.Employment)
	setOptional(&f, "DepartmentIdentifier", p.Department)
	f.SetDate("EffectiveDate", effective)
	f.SetBool("StatusActiveIndicator", p.StatusActiveIndicator)
	f.SetBool("StatusPassiveIndicator", p.StatusPassiveIndicator)
	f.SetBool("ContactInformationIndicator", p.ContactInformationIndicator)
	f.SetBool("PostalAddressIndicator", p.PostalAddressIndicator)
	setOptional(&f, "DepartmentLevelIdentifier", p.DepartmentLevel)
	return f
}

type GetPersonChangedAtDateParams struct {
	Institution                       string
	PersonCivilRegistrationIdentifier string
	Employment                        string
	Department                        string
	DepartmentLevel                   string
	StartDateTime                     time.Time
	EndDateTime                       time.Time

	ContactInformationIndicator bool
	PostalAddressIndicator      bool
}

func NewGetPersonChangedAtDateParams(institution string) GetPersonChangedAtDateParams {
	return GetPersonChangedAtDateParams{Institution: institution}
}

func (p GetPersonChangedAtDateParams) Fields(today Today) Fields {
	f := NewFields()
	f.Set("InstitutionIdentifier", p.Institution)
	setOptional(&f, "PersonCivilRegistrationIdentifier", p.PersonCivilRegistrationIdentifier)
	setOptional(&f, "EmploymentIdentifier", p.Employment)
	setOptional(&f, "DepartmentIdentifier", p.Department)
	f.SetBool("ContactInformationIndicator", p.ContactInformationIndicator)
	f.SetBool("PostalAddressIndicator", p.PostalAddressIndicator)
	setOptional(&f, "DepartmentLevelIdentifier", p.DepartmentLevel)
	setDateTimes(&f, p.StartDateTime, p.EndDateTime, today)
	return f
}

type GetProfessionParams struct {
	Institution string
	JobPosition string
}

func NewGetProfessionParams(institution string) GetProfessionParams {
	return GetProfessionParams{Institution: institution}
}

func (p GetProfessionParams) Fields(_ Today) Fields {
	f := NewFields()
	f.Set("InstitutionIdentifier", p.Institution)
	setOptional(&f, "JobPositionIdentifier", p.JobPosition)
	return f
}

func setOptional(f *Fields, name, value string) {
	if value != "" {
		f.Set(name, value)
	}
}
