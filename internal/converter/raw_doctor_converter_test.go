package converter

import (
	"strings"
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `[
  {
    "id": "111",
    "name": "Dr. Rao",
    "photo": "https://example.test/rao.png",
    "specialities": [{"name": "Cardiology"}, {"name": "General Physician"}],
    "fees": "₹ 500",
    "experience": "13 Years of experience",
    "languages": ["English", "Hindi"],
    "clinic": {
      "name": "Heart Care",
      "address": {"locality": "Indiranagar", "city": "Bangalore"}
    },
    "video_consult": true,
    "in_clinic": false
  }
]`

func normalizePayload(t *testing.T, payload string) []entity.Doctor {
	t.Helper()
	return NormalizeDoctors(DecodeRawDoctors([]byte(payload)))
}

func TestNormalizeDoctors_FullRecord(t *testing.T) {
	doctors := normalizePayload(t, samplePayload)
	require.Len(t, doctors, 1)

	d := doctors[0]
	assert.Equal(t, "111", d.ID)
	assert.Equal(t, "Dr. Rao", d.Name)
	assert.Equal(t, "https://example.test/rao.png", d.Image)
	assert.Equal(t, []string{"Cardiology", "General Physician"}, d.Specialties)
	assert.Equal(t, 13, d.ExperienceYears)
	assert.True(t, d.Fee.Equal(decimal.NewFromInt(500)), "fee = %s", d.Fee)
	assert.Equal(t, entity.ConsultationModes{VideoConsult: true, InClinic: false}, d.ConsultationModes)
	assert.Equal(t, []string{"English", "Hindi"}, d.Languages)
	assert.Equal(t, "Indiranagar, Bangalore", d.Location)
	assert.Equal(t, "Heart Care", d.ClinicName)
}

func TestNormalizeDoctors_ExtractsNumbersFromText(t *testing.T) {
	doctors := normalizePayload(t, `[{"name":"X","experience":"13 Years of experience","fees":"₹ 500"}]`)
	require.Len(t, doctors, 1)

	assert.Equal(t, 13, doctors[0].ExperienceYears)
	assert.True(t, doctors[0].Fee.Equal(decimal.NewFromInt(500)))
}

func TestNormalizeDoctors_NumericFields(t *testing.T) {
	testCases := []struct {
		name       string
		experience string
		fees       string
		wantYears  int
		wantFee    int64
	}{
		{"plain numbers", `7`, `650`, 7, 650},
		{"first digit run wins", `"5 to 8 years"`, `"Rs 300 - 400"`, 5, 300},
		{"no digits", `"many years"`, `"free"`, 0, 0},
		{"wrong types", `true`, `{"amount": 10}`, 0, 0},
		{"null", `null`, `null`, 0, 0},
		{"overflowing digits", `"99999999999999999999999 years"`, `"1200"`, 0, 1200},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := `[{"name":"A","experience":` + tc.experience + `,"fees":` + tc.fees + `}]`
			doctors := normalizePayload(t, payload)
			require.Len(t, doctors, 1)
			assert.Equal(t, tc.wantYears, doctors[0].ExperienceYears)
			assert.True(t, doctors[0].Fee.Equal(decimal.NewFromInt(tc.wantFee)), "fee = %s", doctors[0].Fee)
		})
	}
}

func TestNormalizeDoctors_DefaultsForEmptyRecord(t *testing.T) {
	doctors := normalizePayload(t, `[{}]`)
	require.Len(t, doctors, 1)

	d := doctors[0]
	assert.Equal(t, entity.UnknownDoctorName, d.Name)
	assert.True(t, strings.HasPrefix(d.ID, "doc-"))
	assert.Empty(t, d.Image)
	assert.NotNil(t, d.Specialties)
	assert.Empty(t, d.Specialties)
	assert.NotNil(t, d.Languages)
	assert.Zero(t, d.ExperienceYears)
	assert.True(t, d.Fee.IsZero())
	assert.False(t, d.ConsultationModes.VideoConsult)
	assert.False(t, d.ConsultationModes.InClinic)
	assert.Empty(t, d.Location)
	assert.Empty(t, d.ClinicName)
}

func TestNormalizeDoctors_NonObjectElementsStillYieldRecords(t *testing.T) {
	doctors := normalizePayload(t, `[42, "text", null, [], {"name": "Dr. Real"}]`)
	require.Len(t, doctors, 5)

	for _, d := range doctors[:4] {
		assert.Equal(t, entity.UnknownDoctorName, d.Name)
	}
	assert.Equal(t, "Dr. Real", doctors[4].Name)
}

func TestDecodeRawDoctors_NonArrayTopLevel(t *testing.T) {
	for _, payload := range []string{`{"name":"Dr. Rao"}`, `"doctors"`, `12`, `null`, `not json`, ``} {
		t.Run(payload, func(t *testing.T) {
			raws := DecodeRawDoctors([]byte(payload))
			assert.NotNil(t, raws)
			assert.Empty(t, raws)
		})
	}
}

func TestNormalizeDoctors_WrongTypedFields(t *testing.T) {
	payload := `[{
		"id": 17,
		"name": ["not", "a", "string"],
		"photo": 5,
		"specialities": "Cardiology",
		"languages": [1, "English", null],
		"clinic": "Main Street",
		"video_consult": "true",
		"in_clinic": 1
	}]`
	doctors := normalizePayload(t, payload)
	require.Len(t, doctors, 1)

	d := doctors[0]
	assert.Equal(t, "17", d.ID)
	assert.Equal(t, entity.UnknownDoctorName, d.Name)
	assert.Equal(t, "5", d.Image)
	assert.Empty(t, d.Specialties)
	assert.Equal(t, []string{"1", "English"}, d.Languages)
	assert.Empty(t, d.Location)
	assert.True(t, d.ConsultationModes.VideoConsult)
	assert.True(t, d.ConsultationModes.InClinic)
}

func TestNormalizeDoctors_SpecialtyShapes(t *testing.T) {
	payload := `[{"name":"A","specialities":["Dentist", {"name":"ENT"}, {"name":""}, {"title":"x"}, "  "]}]`
	doctors := normalizePayload(t, payload)
	require.Len(t, doctors, 1)
	assert.Equal(t, []string{"Dentist", "ENT"}, doctors[0].Specialties)
}

func TestNormalizeDoctors_Location(t *testing.T) {
	testCases := []struct {
		name   string
		clinic string
		want   string
	}{
		{"locality and city", `{"address":{"locality":"Koramangala","city":"Bangalore"}}`, "Koramangala, Bangalore"},
		{"city only", `{"address":{"city":"Pune"}}`, "Pune"},
		{"locality only", `{"address":{"locality":"Baner","city":""}}`, "Baner"},
		{"no address", `{"name":"Clinic"}`, ""},
		{"address wrong type", `{"address":"somewhere"}`, ""},
		{"clinic null", `null`, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doctors := normalizePayload(t, `[{"name":"A","clinic":`+tc.clinic+`}]`)
			require.Len(t, doctors, 1)
			assert.Equal(t, tc.want, doctors[0].Location)
		})
	}
}

func TestNormalizeDoctors_SynthesizedIDsAreStableAndDistinct(t *testing.T) {
	payload := `[{"name":"Dr. A"},{"name":"Dr. A"},{"name":"Dr. B","id":""}]`

	first := normalizePayload(t, payload)
	second := normalizePayload(t, payload)
	require.Len(t, first, 3)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.NotEqual(t, first[1].ID, first[2].ID)
}
