package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactInput_Validate(t *testing.T) {
	tests := []struct {
		name     string
		input    ContactInput
		wantKind string
		wantErr  bool
	}{
		{
			name:     "missing name",
			input:    ContactInput{Name: "", Email: "a@b.com", Subject: "s", Message: "m"},
			wantErr:  true,
			wantKind: KindMissingField,
		},
		{
			name:     "whitespace only message",
			input:    ContactInput{Name: "A", Email: "a@b.com", Subject: "s", Message: "   \n"},
			wantErr:  true,
			wantKind: KindMissingField,
		},
		{
			name:     "malformed email",
			input:    ContactInput{Name: "A", Email: "not-an-email", Subject: "s", Message: "m"},
			wantErr:  true,
			wantKind: KindMalformedEmail,
		},
		{
			name:     "email without dot",
			input:    ContactInput{Name: "A", Email: "a@b", Subject: "s", Message: "m"},
			wantErr:  true,
			wantKind: KindMalformedEmail,
		},
		{
			name:  "loose email accepted",
			input: ContactInput{Name: "A", Email: "a.b@c", Subject: "s", Message: "m"},
		},
		{
			name:  "phone is optional",
			input: ContactInput{Name: " A ", Email: " a@b.com ", Subject: "s", Message: "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Normalize().Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			ve, ok := IsValidation(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantKind, ve.Kind)
		})
	}
}

func TestContactInput_Normalize(t *testing.T) {
	in := ContactInput{Name: "  Jane ", Email: "\tjane@example.com ", Phone: " 123 ", Subject: " Hi ", Message: " Hello\n"}
	got := in.Normalize()
	assert.Equal(t, ContactInput{Name: "Jane", Email: "jane@example.com", Phone: "123", Subject: "Hi", Message: "Hello"}, got)
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, 1, 20)
	b, err := json.Marshal(struct {
		D  Date  `json:"d"`
		P  *Date `json:"p"`
		Z  Date  `json:"z"`
		NP *Date `json:"np"`
	}{D: d, P: DatePtr(d)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-01-20","p":"2024-01-20","z":null,"np":null}`, string(b))

	var out struct {
		D *Date `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"d":"2023-12-01"}`), &out))
	require.NotNil(t, out.D)
	assert.Equal(t, "2023-12-01", out.D.String())

	assert.Error(t, json.Unmarshal([]byte(`{"d":"12/01/2023"}`), &out))
}

func TestDate_DaysUntil(t *testing.T) {
	today := MustParseDate("2024-01-01")
	assert.Equal(t, 19, today.DaysUntil(MustParseDate("2024-01-20")))
	assert.Equal(t, -31, today.DaysUntil(MustParseDate("2023-12-01")))
	assert.Equal(t, 366, today.DaysUntil(MustParseDate("2025-01-01")))
}

func TestProjectLists(t *testing.T) {
	p := Project{
		Technologies:    "Python, SQL,, Tableau ,",
		KeyAchievements: "Cut reporting time by 40%\n\n  Automated ETL  \n",
	}
	assert.Equal(t, []string{"Python", "SQL", "Tableau"}, p.TechnologiesList())
	assert.Equal(t, []string{"Cut reporting time by 40%", "Automated ETL"}, p.AchievementsList())
	assert.Empty(t, Project{}.TechnologiesList())
}

func TestEducation_DateRange(t *testing.T) {
	tests := []struct {
		name string
		edu  Education
		want string
	}{
		{"full range", Education{StartYear: IntPtr(2018), StartMonth: IntPtr(9), EndYear: IntPtr(2022), EndMonth: IntPtr(6)}, "Sep 2018 - Jun 2022"},
		{"years only", Education{StartYear: IntPtr(2018), EndYear: IntPtr(2022)}, "2018 - 2022"},
		{"current", Education{StartYear: IntPtr(2023), Current: true}, "2023 - Present"},
		{"start only", Education{StartYear: IntPtr(2023), StartMonth: IntPtr(1)}, "Started Jan 2023"},
		{"end only", Education{EndYear: IntPtr(2020)}, "Completed 2020"},
		{"current without start", Education{Current: true}, "Completed Present"},
		{"nothing", Education{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.edu.DateRange())
		})
	}
}

func TestExperience_DateRange(t *testing.T) {
	start := MustParseDate("2020-03-01")
	end := MustParseDate("2022-11-15")
	assert.Equal(t, "Mar 2020 - Present", Experience{StartDate: start, Current: true, EndDate: &end}.DateRange())
	assert.Equal(t, "Mar 2020 - Nov 2022", Experience{StartDate: start, EndDate: &end}.DateRange())
	assert.Equal(t, "Mar 2020", Experience{StartDate: start}.DateRange())
}

func TestValidate_Certificate(t *testing.T) {
	issue := MustParseDate("2024-01-01")
	cert := Certificate{CertificateName: "AWS SAA", IssuingOrganization: "AWS", IssueDate: issue, ExpiryDate: DatePtr(MustParseDate("2023-06-01"))}

	err := Validate(&cert)
	ve, ok := IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidField, ve.Kind)
	assert.Equal(t, "expiry_date", ve.Field)

	cert.ExpiryDate = DatePtr(MustParseDate("2027-01-01"))
	assert.NoError(t, Validate(&cert))

	cert.IssueDate = Date{}
	ve, ok = IsValidation(Validate(&cert))
	require.True(t, ok)
	assert.Equal(t, KindMissingField, ve.Kind)
}

func TestValidate_RequiredAndEnums(t *testing.T) {
	ve, ok := IsValidation(Validate(&Skill{Category: SkillTools}))
	require.True(t, ok)
	assert.Equal(t, KindMissingField, ve.Kind)
	assert.Equal(t, "name", ve.Field)

	ve, ok = IsValidation(Validate(&Skill{Name: "Go", Category: "magic"}))
	require.True(t, ok)
	assert.Equal(t, KindInvalidField, ve.Kind)
	assert.Equal(t, "category", ve.Field)

	about := DefaultAbout()
	about.StatProjects = IntPtr(-1)
	ve, ok = IsValidation(Validate(&about))
	require.True(t, ok)
	assert.Equal(t, "stat_projects", ve.Field)

	about.StatProjects = IntPtr(0)
	assert.NoError(t, Validate(&about))
}

func TestValidate_Education(t *testing.T) {
	edu := Education{Institution: "MIT", Degree: "BSc", FieldOfStudy: "CS", StartYear: IntPtr(2020), EndYear: IntPtr(2019)}
	ve, ok := IsValidation(Validate(&edu))
	require.True(t, ok)
	assert.Equal(t, "end_year", ve.Field)

	edu.Current = true
	NormalizeEducation(&edu)
	assert.Nil(t, edu.EndYear)
	assert.NoError(t, Validate(&edu))
}

func TestNormalizeSkillAndExperience(t *testing.T) {
	s := Skill{Name: " SQL ", Proficiency: 140, Icon: "sql", CustomSVG: "<svg/>"}
	NormalizeSkill(&s)
	assert.Equal(t, "SQL", s.Name)
	assert.Equal(t, 100, s.Proficiency)
	assert.Empty(t, s.CustomSVG)

	s.Proficiency = -5
	NormalizeSkill(&s)
	assert.Equal(t, 0, s.Proficiency)

	end := MustParseDate("2021-01-01")
	e := Experience{Current: true, EndDate: &end}
	NormalizeExperience(&e)
	assert.Nil(t, e.EndDate)
}
