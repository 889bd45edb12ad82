package params

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/is"
)

func fixedToday() time.Time {
	return time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC)
}

func TestIdentifierResolvesPlainCode(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	setIdentifier(&f, "Institution", "XY")

	v, ok := f.Get("InstitutionIdentifier")
	is.True(ok)
	is.Equal(v, "XY")

	_, ok = f.Get("InstitutionUUIDIdentifier")
	is.True(!ok) // plain codes must never set the UUID variant
}

func TestIdentifierResolvesUUIDString(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	setIdentifier(&f, "Department", "9848725d-2798-4600-9200-000006180002")

	v, ok := f.Get("DepartmentUUIDIdentifier")
	is.True(ok)
	is.Equal(v, "9848725d-2798-4600-9200-000006180002")

	_, ok = f.Get("DepartmentIdentifier")
	is.True(!ok)
}

func TestIdentifierContributesNothingWhenAbsent(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	setIdentifier(&f, "Region", "")

	is.Equal(f.Len(), 0)
}

func TestMalformedUUIDFallsBackToPlainIdentifier(t *testing.T) {
	is := is.New(t)

	// one hex digit short of a UUID
	f := NewFields()
	setIdentifier(&f, "Institution", "9848725d-2798-4600-9200-00000618000")

	_, ok := f.Get("InstitutionUUIDIdentifier")
	is.True(!ok)

	v, ok := f.Get("InstitutionIdentifier")
	is.True(ok)
	is.Equal(v, "9848725d-2798-4600-9200-00000618000")
}

func TestDateWindowDefaultsToToday(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	setDates(&f, time.Time{}, time.Time{}, fixedToday)

	start, _ := f.Get("ActivationDate")
	end, _ := f.Get("DeactivationDate")
	is.Equal(start, "2024-03-14")
	is.Equal(end, "2024-03-14")
}

func TestDateTimeWindowDefaultsToWholeDay(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	setDateTimes(&f, time.Time{}, time.Time{}, fixedToday)

	startDate, _ := f.Get("ActivationDate")
	startTime, _ := f.Get("ActivationTime")
	endDate, _ := f.Get("DeactivationDate")
	endTime, _ := f.Get("DeactivationTime")

	is.Equal(startDate, "2024-03-14")
	is.Equal(startTime, "00:00:00")
	is.Equal(endDate, "2024-03-14")
	is.Equal(endTime, "23:59:59")
}

func TestInvertedWindowIsPassedThrough(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	setDates(&f,
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		fixedToday,
	)

	start, _ := f.Get("ActivationDate")
	end, _ := f.Get("DeactivationDate")
	is.Equal(start, "2024-06-01")
	is.Equal(end, "2024-01-01") // the remote service governs inverted windows
}

func TestGetDepartmentFieldsWithInstitutionCode(t *testing.T) {
	is := is.New(t)

	p := NewGetDepartmentParams()
	p.Institution = "12345"

	f := p.Fields(fixedToday)

	v, ok := f.Get("InstitutionIdentifier")
	is.True(ok)
	is.Equal(v, "12345")

	_, ok = f.Get("InstitutionUUIDIdentifier")
	is.True(!ok)

	v, _ = f.Get("DepartmentNameIndicator")
	is.Equal(v, "true")
	v, _ = f.Get("UUIDIndicator")
	is.Equal(v, "true")
	v, _ = f.Get("ContactInformationIndicator")
	is.Equal(v, "false")

	start, _ := f.Get("ActivationDate")
	end, _ := f.Get("DeactivationDate")
	is.Equal(start, "2024-03-14")
	is.Equal(end, "2024-03-14")

	_, ok = f.Get("DepartmentLevelIdentifier")
	is.True(!ok) // only present when supplied
}

func TestGetDepartmentFieldsAreIdempotent(t *testing.T) {
	is := is.New(t)

	p := NewGetDepartmentParams()
	p.Institution = "12345"
	p.DepartmentLevel = "Afdelings-niveau"

	a := p.Fields(fixedToday)
	b := p.Fields(fixedToday)

	is.Equal(a.Names(), b.Names())
	for _, name := range a.Names() {
		va, _ := a.Get(name)
		vb, _ := b.Get(name)
		is.Equal(va, vb)
	}
}

func TestGetDepartmentParentFields(t *testing.T) {
	is := is.New(t)

	id := uuid.MustParse("9848725d-2798-4600-9200-000006180002")
	f := NewGetDepartmentParentParams(id).Fields(fixedToday)

	v, ok := f.Get("DepartmentUUIDIdentifier")
	is.True(ok)
	is.Equal(v, "9848725d-2798-4600-9200-000006180002")

	effective, _ := f.Get("EffectiveDate")
	is.Equal(effective, "2024-03-14")
}

func TestGetInstitutionFieldsHaveNoTemporalWindow(t *testing.T) {
	is := is.New(t)

	p := NewGetInstitutionParams()
	p.Institution = "XY"
	f := p.Fields(fixedToday)

	_, ok := f.Get("ActivationDate")
	is.True(!ok)

	v, _ := f.Get("UUIDIndicator")
	is.Equal(v, "true")
}

func TestGetEmploymentFieldsOmitAbsentIdentifiers(t *testing.T) {
	is := is.New(t)

	f := NewGetEmploymentParams("XY").Fields(fixedToday)

	v, ok := f.Get("InstitutionIdentifier")
	is.True(ok)
	is.Equal(v, "XY")

	_, ok = f.Get("PersonCivilRegistrationIdentifier")
	is.True(!ok)
	_, ok = f.Get("EmploymentIdentifier")
	is.True(!ok)
	_, ok = f.Get("DepartmentIdentifier")
	is.True(!ok)

	v, _ = f.Get("StatusActiveIndicator")
	is.Equal(v, "true")
	v, _ = f.Get("StatusPassiveIndicator")
	is.Equal(v, "false")

	effective, _ := f.Get("EffectiveDate")
	is.Equal(effective, "2024-03-14")
}

func TestGetEmploymentChangedAtDateFields(t *testing.T) {
	is := is.New(t)

	p := NewGetEmploymentChangedAtDateParams("XY")
	p.StartDateTime = time.Date(2024, time.February, 1, 8, 15, 0, 0, time.UTC)
	f := p.Fields(fixedToday)

	startDate, _ := f.Get("ActivationDate")
	startTime, _ := f.Get("ActivationTime")
	is.Equal(startDate, "2024-02-01")
	is.Equal(startTime, "08:15:00")

	// end bound was omitted and defaults to the end of today
	endDate, _ := f.Get("DeactivationDate")
	endTime, _ := f.Get("DeactivationTime")
	is.Equal(endDate, "2024-03-14")
	is.Equal(endTime, "23:59:59")

	v, _ := f.Get("FutureInformationIndicator")
	is.Equal(v, "false")
}

func TestGetPersonChangedAtDateFields(t *testing.T) {
	is := is.New(t)

	p := NewGetPersonChangedAtDateParams("XY")
	p.PersonCivilRegistrationIdentifier = "0101011234"
	f := p.Fields(fixedToday)

	v, ok := f.Get("PersonCivilRegistrationIdentifier")
	is.True(ok)
	is.Equal(v, "0101011234")

	startTime, _ := f.Get("ActivationTime")
	endTime, _ := f.Get("DeactivationTime")
	is.Equal(startTime, "00:00:00")
	is.Equal(endTime, "23:59:59")
}

func TestGetProfessionFields(t *testing.T) {
	is := is.New(t)

	f := NewGetProfessionParams("XY").Fields(fixedToday)

	v, _ := f.Get("InstitutionIdentifier")
	is.Equal(v, "XY")

	_, ok := f.Get("JobPositionIdentifier")
	is.True(!ok)
	is.Equal(f.Len(), 1)
}

func TestFieldsKeepInsertionOrder(t *testing.T) {
	is := is.New(t)

	f := NewFields()
	f.Set("B", "1")
	f.Set("A", "2")
	f.Set("C", "3")
	f.Set("A", "4") // replace keeps position

	is.Equal(f.Names(), []string{"B", "A", "C"})
	v, _ := f.Get("A")
	is.Equal(v, "4")
}
