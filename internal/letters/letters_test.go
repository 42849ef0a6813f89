package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/models"
)

func TestCatalogCoversAllServices(t *testing.T) {
	assert.Len(t, Types(), 14)
	for _, letterType := range Types() {
		schema := Get(letterType)
		require.NotNil(t, schema, letterType)
		assert.Equal(t, letterType, schema.LetterType)
		assert.NotEmpty(t, schema.Fields, letterType)
	}
}

func TestValidateSKCK(t *testing.T) {
	schema := Get("Surat Pengantar SKCK")
	require.NotNil(t, schema)

	form := map[string]any{
		"nik":         "3301234567890001",
		"purpose":     "Melamar pekerjaan",
		"name":        "BUDI SANTOSO",
		"gender":      "Laki-laki",
		"birthPlace":  "Cilacap",
		"birthDate":   "17-08-1999",
		"nationality": "WNI",
		"religion":    "Islam",
		"job":         "Wiraswasta",
		"address":     "Dusun Mergasari",
	}
	assert.NoError(t, schema.Validate(form))

	form["nik"] = "330123"
	err := schema.Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "16 digit")

	form["nik"] = "3301234567890001"
	form["purpose"] = "  "
	err = schema.Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wajib diisi")
}

func TestValidateOptionalNIK(t *testing.T) {
	schema := Get("Surat Keterangan Tidak Mampu")
	require.NotNil(t, schema)

	form := map[string]any{
		"submissionType":      "self",
		"purpose":             "Keringanan biaya sekolah",
		"applicantNik":        "3301234567890001",
		"applicantName":       "BUDI",
		"applicantGender":     "Laki-laki",
		"applicantBirthPlace": "Cilacap",
		"applicantBirthDate":  "17-08-1999",
		"applicantReligion":   "Islam",
		"applicantJob":        "Buruh",
		"applicantAddress":    "Dusun Mergasari",
	}

	// A child NIK may be absent, a dash, or a full NIK; anything else is
	// rejected.
	for _, ok := range []string{"", "-", "3301234567890002"} {
		form["childNik"] = ok
		assert.NoError(t, schema.Validate(form), ok)
	}
	form["childNik"] = "123"
	err := schema.Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NIK Anak")
}

func TestValidateNestedPerson(t *testing.T) {
	schema := Get("Surat Keterangan Wali")
	require.NotNil(t, schema)

	form := map[string]any{
		"purpose": "Pendaftaran sekolah",
		"wali": map[string]any{
			"nik":        "3301234567890003",
			"name":       "PAINEM",
			"gender":     "Perempuan",
			"birthPlace": "Cilacap",
			"birthDate":  "01-01-1960",
			"address":    "Dusun Cikuya",
		},
		"anak": map[string]any{
			"nik":        "3301234567890004",
			"name":       "RINA",
			"gender":     "Perempuan",
			"birthPlace": "Cilacap",
			"birthDate":  "02-02-2015",
			"address":    "Dusun Cikuya",
		},
	}
	assert.NoError(t, schema.Validate(form))

	form["anak"].(map[string]any)["nik"] = "x"
	err := schema.Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NIK Anak")
}

func TestValidateFamilyMembers(t *testing.T) {
	schema := Get("Surat Pengantar Pindah")
	require.NotNil(t, schema)

	form := map[string]any{
		"nik": "3301234567890001", "name": "BUDI",
		"kkNumber": "3301230001", "kkHead": "BUDI",
		"currentAddressRt": "01", "currentAddressRw": "02",
		"destinationAddress": "Sukamaju", "destinationAddressRt": "03",
		"destinationAddressRw": "04", "destinationKecamatan": "Wanareja",
		"destinationKabupaten": "Cilacap", "destinationProvinsi": "Jawa Tengah",
		"familyCount": "2",
		"familyMembers": []any{
			map[string]any{"nik": "3301234567890005", "name": "WATI", "relationship": "Istri"},
		},
	}
	assert.NoError(t, schema.Validate(form))

	form["familyMembers"] = []any{
		map[string]any{"nik": "123", "name": "WATI", "relationship": "Istri"},
	}
	err := schema.Validate(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anggota keluarga")
}

func TestFillValues(t *testing.T) {
	schema := Get("Surat Pengantar SKCK")
	require.Len(t, schema.Groups, 1)

	res := &models.Resident{
		FullName:     "budi santoso",
		Gender:       "Laki-laki",
		PlaceOfBirth: "Cilacap",
		DateOfBirth:  "17-08-1999",
		Religion:     "Islam",
		Occupation:   "Petani",
		Address:      "Dusun Mergasari",
		RtRw:         "003/004",
	}
	values := schema.Groups[0].FillValues(res)

	assert.Equal(t, "BUDI SANTOSO", values["name"])
	assert.Equal(t, "Dusun Mergasari, RT/RW: 003/004", values["address"])
	assert.Equal(t, "17-08-1999", values["birthDate"])

	res.RtRw = ""
	values = schema.Groups[0].FillValues(res)
	assert.Equal(t, "Dusun Mergasari", values["address"])
}

func TestFillTrackerDiscardsStaleLookups(t *testing.T) {
	tracker := NewFillTracker()

	first := tracker.Begin("applicant")
	second := tracker.Begin("applicant")
	other := tracker.Begin("child")

	assert.False(t, tracker.Current("applicant", first))
	assert.True(t, tracker.Current("applicant", second))
	// Groups sequence independently.
	assert.True(t, tracker.Current("child", other))
}

func TestMissingAttachments(t *testing.T) {
	schema := Get("Surat Keterangan Lahir")
	require.NotNil(t, schema)

	missing := schema.MissingAttachments(map[string]bool{"KTP Ibu": true})
	assert.Len(t, missing, 2)

	missing = schema.MissingAttachments(map[string]bool{
		"KTP Ibu": true, "KK Ibu": true, "Surat Lahir RS": true,
	})
	assert.Empty(t, missing)
}
