package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarAcceptsJSONScalars(t *testing.T) {
	var fields FacultyFields
	body := `{"faculty_name":"Dr. A","joining_year":2015,"mobile":9876543210,"department":true,"birth_date":null}`
	require.NoError(t, json.Unmarshal([]byte(body), &fields))

	assert.Equal(t, "Dr. A", *fields.FacultyName.Text())
	assert.Equal(t, "2015", *fields.JoiningYear.Text())
	assert.Equal(t, "9876543210", *fields.Mobile.Text())
	assert.Equal(t, "true", *fields.Department.Text())
	assert.Nil(t, fields.BirthDate.Text())
	assert.Nil(t, fields.FacultyEmail.Text())
}

func TestScalarRejectsCompositeValues(t *testing.T) {
	for _, body := range []string{`{"mobile":{"n":1}}`, `{"mobile":[1,2]}`} {
		var fields FacultyFields
		assert.Error(t, json.Unmarshal([]byte(body), &fields), body)
	}
}

func TestScalarEmptyCGPAMatchesForm(t *testing.T) {
	var fields StudentFields
	require.NoError(t, json.Unmarshal([]byte(`{"cgpa":""}`), &fields))

	cgpa, err := parseCGPA(fields.CGPA)
	require.NoError(t, err)
	assert.Nil(t, cgpa)

	require.NoError(t, json.Unmarshal([]byte(`{"cgpa":7.25}`), &fields))
	cgpa, err = parseCGPA(fields.CGPA)
	require.NoError(t, err)
	assert.Equal(t, 7.25, *cgpa)
}
