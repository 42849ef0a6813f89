// Package letters holds the service catalog: one schema per letter type,
// covering form validation, registry auto-fill wiring, and the document
// checklist citizens must attach.
package letters

type FieldKind int

const (
	// KindText is any free-form required or optional string.
	KindText FieldKind = iota
	// KindNIK must be exactly sixteen digits.
	KindNIK
	// KindOptionalNIK accepts empty, a dash, or sixteen digits. Used where
	// elderly records predate the national ID rollout.
	KindOptionalNIK
	// KindDate is entered as free text; the print layer parses it leniently
	// so no format is enforced here.
	KindDate
	// KindMembers is the accompanying-family list on the relocation letter.
	KindMembers
)

type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
}

// FillGroup wires one NIK field to the registry lookup: when the NIK field
// holds a complete NIK, the listed fields are populated from the matched
// resident. Fill maps form field name to resident attribute.
type FillGroup struct {
	Name     string
	NIKField string
	Fill     map[string]string
}

type Attachment struct {
	FieldName string
	Label     string
	Required  bool
}

type Schema struct {
	LetterType  string
	Fields      []Field
	Groups      []FillGroup
	Attachments []Attachment
}

// Resident attribute keys a FillGroup can reference.
const (
	AttrFullName      = "fullName"
	AttrGender        = "gender"
	AttrPlaceOfBirth  = "placeOfBirth"
	AttrDateOfBirth   = "dateOfBirth"
	AttrReligion      = "religion"
	AttrOccupation    = "occupation"
	AttrAddress       = "address"
	AttrMaritalStatus = "maritalStatus"
)

func req(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindText, Required: true}
}

func opt(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindText}
}

func nik(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindNIK, Required: true}
}

func optNIK(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindOptionalNIK}
}

func date(name, label string) Field {
	return Field{Name: name, Label: label, Kind: KindDate, Required: true}
}

// identityFill is the standard resident-to-form mapping shared by the
// single-subject letters. prefix is prepended to each form field name so the
// same mapping serves applicant, parent, and witness sections.
func identityFill(prefix string) map[string]string {
	key := func(base string) string {
		if prefix == "" {
			return base
		}
		return prefix + upperFirst(base)
	}
	return map[string]string{
		key("name"):       AttrFullName,
		key("gender"):     AttrGender,
		key("birthPlace"): AttrPlaceOfBirth,
		key("birthDate"):  AttrDateOfBirth,
		key("religion"):   AttrReligion,
		key("job"):        AttrOccupation,
		key("address"):    AttrAddress,
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

var catalog = map[string]*Schema{
	"Surat Keterangan Tidak Mampu": {
		LetterType: "Surat Keterangan Tidak Mampu",
		Fields: []Field{
			req("submissionType", "Jenis Pengajuan"),
			req("purpose", "Keperluan"),
			nik("applicantNik", "NIK Pemohon"),
			req("applicantName", "Nama Pemohon"),
			req("applicantGender", "Jenis Kelamin"),
			req("applicantBirthPlace", "Tempat Lahir"),
			date("applicantBirthDate", "Tanggal Lahir"),
			req("applicantReligion", "Agama"),
			req("applicantJob", "Pekerjaan"),
			req("applicantAddress", "Alamat"),
			optNIK("childNik", "NIK Anak"),
			opt("childName", "Nama Anak"),
			opt("childGender", "Jenis Kelamin Anak"),
			opt("childBirthPlace", "Tempat Lahir Anak"),
			opt("childBirthDate", "Tanggal Lahir Anak"),
			opt("childJob", "Pekerjaan Anak"),
			opt("childAddress", "Alamat Anak"),
		},
		Groups: []FillGroup{
			{Name: "applicant", NIKField: "applicantNik", Fill: map[string]string{
				"applicantName":       AttrFullName,
				"applicantGender":     AttrGender,
				"applicantBirthPlace": AttrPlaceOfBirth,
				"applicantBirthDate":  AttrDateOfBirth,
				"applicantReligion":   AttrReligion,
				"applicantJob":        AttrOccupation,
				"applicantAddress":    AttrAddress,
			}},
			{Name: "child", NIKField: "childNik", Fill: map[string]string{
				"childName":       AttrFullName,
				"childGender":     AttrGender,
				"childBirthPlace": AttrPlaceOfBirth,
				"childBirthDate":  AttrDateOfBirth,
				"childJob":        AttrOccupation,
				"childAddress":    AttrAddress,
			}},
		},
		Attachments: []Attachment{
			{FieldName: "KTP Pemohon", Label: "Scan/Foto KTP", Required: true},
			{FieldName: "Kartu Keluarga", Label: "Scan/Foto Kartu Keluarga", Required: true},
		},
	},

	"Surat Pengantar SKCK": {
		LetterType: "Surat Pengantar SKCK",
		Fields: []Field{
			nik("nik", "NIK"),
			req("purpose", "Keperluan"),
			req("name", "Nama Lengkap"),
			req("gender", "Jenis Kelamin"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("nationality", "Kewarganegaraan"),
			req("religion", "Agama"),
			req("job", "Pekerjaan"),
			req("address", "Alamat"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: identityFill("")}},
		Attachments: []Attachment{
			{FieldName: "KTP Pemohon", Label: "Scan/Foto KTP", Required: true},
		},
	},

	"Surat Pengantar Pindah": {
		LetterType: "Surat Pengantar Pindah",
		Fields: []Field{
			nik("nik", "NIK"),
			req("name", "Nama Lengkap"),
			req("kkNumber", "Nomor KK"),
			req("kkHead", "Nama Kepala Keluarga"),
			req("currentAddressRt", "RT Asal"),
			req("currentAddressRw", "RW Asal"),
			req("destinationAddress", "Desa Tujuan"),
			req("destinationAddressRt", "RT Tujuan"),
			req("destinationAddressRw", "RW Tujuan"),
			req("destinationKecamatan", "Kecamatan Tujuan"),
			req("destinationKabupaten", "Kabupaten Tujuan"),
			req("destinationProvinsi", "Provinsi Tujuan"),
			req("familyCount", "Jumlah Keluarga"),
			{Name: "familyMembers", Label: "Anggota Keluarga", Kind: KindMembers},
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: map[string]string{
			"name": AttrFullName,
		}}},
		Attachments: []Attachment{
			{FieldName: "KTP Pemohon", Label: "Scan/Foto KTP"},
			{FieldName: "Kartu Keluarga", Label: "Scan/Foto Kartu Keluarga"},
		},
	},

	"Surat Keterangan Usaha": {
		LetterType: "Surat Keterangan Usaha",
		Fields: []Field{
			nik("nik", "NIK"),
			req("purpose", "Keperluan"),
			req("name", "Nama"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("gender", "Jenis Kelamin"),
			req("address", "Alamat"),
			req("job", "Pekerjaan"),
			req("businessName", "Nama Usaha"),
			req("businessType", "Jenis Usaha"),
			req("businessAddress", "Alamat Usaha"),
			req("businessSince", "Berdiri Sejak"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: identityFill("")}},
	},

	"Surat Keterangan Lahir": {
		LetterType: "Surat Keterangan Lahir",
		Fields: []Field{
			nik("motherNik", "NIK Ibu"),
			req("childName", "Nama Anak"),
			req("childGender", "Jenis Kelamin Anak"),
			optNIK("childNik", "NIK Anak"),
			req("childBirthPlace", "Tempat Lahir Anak"),
			date("childBirthDate", "Tanggal Lahir Anak"),
			req("childBirthTime", "Waktu Lahir"),
			req("childBirthLocation", "Tempat Dilahirkan"),
			req("childAddress", "Alamat"),
			req("childOrder", "Anak Ke"),
			req("birthAssistant", "Penolong Kelahiran"),
			req("birthWeight", "Berat Bayi"),
			req("birthLength", "Panjang Bayi"),
			req("motherName", "Nama Ibu"),
			req("motherBirthPlace", "Tempat Lahir Ibu"),
			date("motherBirthDate", "Tanggal Lahir Ibu"),
			req("motherJob", "Pekerjaan Ibu"),
			req("motherAddress", "Alamat Ibu"),
			nik("fatherNik", "NIK Ayah"),
			req("fatherName", "Nama Ayah"),
			req("fatherBirthPlace", "Tempat Lahir Ayah"),
			date("fatherBirthDate", "Tanggal Lahir Ayah"),
			req("fatherJob", "Pekerjaan Ayah"),
			req("fatherAddress", "Alamat Ayah"),
			nik("reporterNik", "NIK Pelapor"),
			req("reporterName", "Nama Pelapor"),
			req("reporterAge", "Umur Pelapor"),
			req("reporterJob", "Pekerjaan Pelapor"),
			req("reporterAddress", "Alamat Pelapor"),
			nik("witness1Nik", "NIK Saksi I"),
			req("witness1Name", "Nama Saksi I"),
			req("witness1Age", "Umur Saksi I"),
			req("witness1Job", "Pekerjaan Saksi I"),
			req("witness1Address", "Alamat Saksi I"),
			nik("witness2Nik", "NIK Saksi II"),
			req("witness2Name", "Nama Saksi II"),
			req("witness2Age", "Umur Saksi II"),
			req("witness2Job", "Pekerjaan Saksi II"),
			req("witness2Address", "Alamat Saksi II"),
		},
		Groups: []FillGroup{
			{Name: "mother", NIKField: "motherNik", Fill: identityFill("mother")},
			{Name: "father", NIKField: "fatherNik", Fill: identityFill("father")},
			{Name: "reporter", NIKField: "reporterNik", Fill: identityFill("reporter")},
			{Name: "witness1", NIKField: "witness1Nik", Fill: identityFill("witness1")},
			{Name: "witness2", NIKField: "witness2Nik", Fill: identityFill("witness2")},
		},
		Attachments: []Attachment{
			{FieldName: "KTP Ibu", Label: "Scan/Foto KTP Ibu", Required: true},
			{FieldName: "KK Ibu", Label: "Scan/Foto KK Ibu", Required: true},
			{FieldName: "Surat Lahir RS", Label: "Surat Lahir dari RS/Bidan", Required: true},
		},
	},

	"Surat Keterangan Kematian": {
		LetterType: "Surat Keterangan Kematian",
		Fields: []Field{
			req("kkNumber", "Nomor KK"),
			req("kkHead", "Nama Kepala Keluarga"),
			nik("nik", "NIK Jenazah"),
			req("name", "Nama Jenazah"),
			req("gender", "Jenis Kelamin"),
			req("placeOfBirth", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("age", "Umur"),
			req("religion", "Agama"),
			req("occupation", "Pekerjaan"),
			req("address", "Alamat"),
			req("anakKe", "Anak Ke"),
			date("deathDate", "Tanggal Kematian"),
			req("deathTime", "Pukul"),
			req("deathCause", "Sebab Kematian"),
			req("deathLocation", "Tempat Kematian"),
			req("whoExplains", "Yang Menerangkan"),
			optNIK("fatherNik", "NIK Ayah"),
			opt("fatherName", "Nama Ayah"),
			opt("fatherPlaceOfBirth", "Tempat Lahir Ayah"),
			opt("fatherBirthDate", "Tanggal Lahir Ayah"),
			opt("fatherJob", "Pekerjaan Ayah"),
			opt("fatherAddress", "Alamat Ayah"),
			optNIK("motherNik", "NIK Ibu"),
			opt("motherName", "Nama Ibu"),
			opt("motherPlaceOfBirth", "Tempat Lahir Ibu"),
			opt("motherBirthDate", "Tanggal Lahir Ibu"),
			opt("motherJob", "Pekerjaan Ibu"),
			opt("motherAddress", "Alamat Ibu"),
			nik("reporterNik", "NIK Pelapor"),
			req("reporterName", "Nama Pelapor"),
			req("reporterPlaceOfBirth", "Tempat Lahir Pelapor"),
			date("reporterBirthDate", "Tanggal Lahir Pelapor"),
			req("reporterGender", "Jenis Kelamin Pelapor"),
			req("reporterJob", "Pekerjaan Pelapor"),
			req("reporterAddress", "Alamat Pelapor"),
			nik("witness1Nik", "NIK Saksi I"),
			req("witness1Name", "Nama Saksi I"),
			req("witness1PlaceOfBirth", "Tempat Lahir Saksi I"),
			date("witness1BirthDate", "Tanggal Lahir Saksi I"),
			req("witness1Job", "Pekerjaan Saksi I"),
			req("witness1Address", "Alamat Saksi I"),
			nik("witness2Nik", "NIK Saksi II"),
			req("witness2Name", "Nama Saksi II"),
			req("witness2PlaceOfBirth", "Tempat Lahir Saksi II"),
			date("witness2BirthDate", "Tanggal Lahir Saksi II"),
			req("witness2Job", "Pekerjaan Saksi II"),
			req("witness2Address", "Alamat Saksi II"),
		},
		Groups: []FillGroup{
			{Name: "deceased", NIKField: "nik", Fill: map[string]string{
				"name":         AttrFullName,
				"gender":       AttrGender,
				"placeOfBirth": AttrPlaceOfBirth,
				"birthDate":    AttrDateOfBirth,
				"religion":     AttrReligion,
				"occupation":   AttrOccupation,
				"address":      AttrAddress,
			}},
			{Name: "reporter", NIKField: "reporterNik", Fill: map[string]string{
				"reporterName":         AttrFullName,
				"reporterPlaceOfBirth": AttrPlaceOfBirth,
				"reporterBirthDate":    AttrDateOfBirth,
				"reporterGender":       AttrGender,
				"reporterJob":          AttrOccupation,
				"reporterAddress":      AttrAddress,
			}},
			{Name: "witness1", NIKField: "witness1Nik", Fill: map[string]string{
				"witness1Name":         AttrFullName,
				"witness1PlaceOfBirth": AttrPlaceOfBirth,
				"witness1BirthDate":    AttrDateOfBirth,
				"witness1Job":          AttrOccupation,
				"witness1Address":      AttrAddress,
			}},
			{Name: "witness2", NIKField: "witness2Nik", Fill: map[string]string{
				"witness2Name":         AttrFullName,
				"witness2PlaceOfBirth": AttrPlaceOfBirth,
				"witness2BirthDate":    AttrDateOfBirth,
				"witness2Job":          AttrOccupation,
				"witness2Address":      AttrAddress,
			}},
		},
		Attachments: []Attachment{
			{FieldName: "KTP Almarhum/ah", Label: "Scan/Foto KTP Almarhum/ah", Required: true},
			{FieldName: "KK Almarhum/ah", Label: "Scan/Foto KK Almarhum/ah", Required: true},
		},
	},

	"Surat Keterangan Belum Menikah": {
		LetterType: "Surat Keterangan Belum Menikah",
		Fields: []Field{
			nik("nik", "NIK"),
			req("name", "Nama Lengkap"),
			req("gender", "Jenis Kelamin"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("nationality", "Kewarganegaraan"),
			req("religion", "Agama"),
			req("job", "Pekerjaan"),
			req("address", "Alamat"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: identityFill("")}},
	},

	"Surat Keterangan Domisili": {
		LetterType: "Surat Keterangan Domisili",
		Fields: []Field{
			nik("nik", "NIK"),
			req("name", "Nama"),
			req("gender", "Jenis Kelamin"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("nationality", "Kewarganegaraan"),
			req("religion", "Agama"),
			req("originAddress", "Alamat Asal (KTP)"),
			req("domicileAddress", "Alamat Domisili"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: map[string]string{
			"name":          AttrFullName,
			"gender":        AttrGender,
			"birthPlace":    AttrPlaceOfBirth,
			"birthDate":     AttrDateOfBirth,
			"religion":      AttrReligion,
			"originAddress": AttrAddress,
		}}},
		Attachments: []Attachment{
			{FieldName: "KTP Pemohon", Label: "Scan/Foto KTP", Required: true},
			{FieldName: "KK Pemohon", Label: "Scan/Foto Kartu Keluarga", Required: true},
			{FieldName: "Surat Keterangan RT/RW", Label: "Surat Pengantar RT/RW", Required: true},
		},
	},

	"Surat Ijin Keramaian": {
		LetterType: "Surat Ijin Keramaian",
		Fields: []Field{
			nik("nik", "NIK"),
			req("name", "Nama"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("job", "Pekerjaan"),
			req("address", "Alamat"),
			date("eventDate", "Tanggal Acara"),
			date("eventEndDate", "Sampai dengan Tanggal"),
			req("guestCount", "Jumlah Undangan"),
			req("eventName", "Acara"),
			req("eventEntertainment", "Hiburan"),
			req("eventLocation", "Tempat"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: map[string]string{
			"name":       AttrFullName,
			"birthPlace": AttrPlaceOfBirth,
			"birthDate":  AttrDateOfBirth,
			"job":        AttrOccupation,
			"address":    AttrAddress,
		}}},
		Attachments: []Attachment{
			{FieldName: "KTP Pemohon", Label: "Scan/Foto KTP", Required: true},
			{FieldName: "Kartu Keluarga", Label: "Scan/Foto Kartu Keluarga", Required: true},
		},
	},

	"Surat Keterangan Moyang": {
		LetterType: "Surat Keterangan Moyang",
		Fields: []Field{
			nik("moyang.nik", "NIK Orang Tua"),
			req("moyang.name", "Nama Orang Tua"),
			req("moyang.gender", "Jenis Kelamin Orang Tua"),
			req("moyang.birthPlace", "Tempat Lahir Orang Tua"),
			date("moyang.birthDate", "Tanggal Lahir Orang Tua"),
			req("moyang.nationality", "Kewarganegaraan Orang Tua"),
			req("moyang.religion", "Agama Orang Tua"),
			req("moyang.job", "Pekerjaan Orang Tua"),
			req("moyang.address", "Alamat Orang Tua"),
			nik("anak.nik", "NIK Anak"),
			req("anak.name", "Nama Anak"),
			req("anak.gender", "Jenis Kelamin Anak"),
			req("anak.birthPlace", "Tempat Lahir Anak"),
			date("anak.birthDate", "Tanggal Lahir Anak"),
			req("anak.nationality", "Kewarganegaraan Anak"),
			req("anak.religion", "Agama Anak"),
			req("anak.job", "Pekerjaan Anak"),
			req("anak.address", "Alamat Anak"),
		},
		Groups: []FillGroup{
			{Name: "moyang", NIKField: "moyang.nik", Fill: map[string]string{
				"moyang.name":       AttrFullName,
				"moyang.gender":     AttrGender,
				"moyang.birthPlace": AttrPlaceOfBirth,
				"moyang.birthDate":  AttrDateOfBirth,
				"moyang.religion":   AttrReligion,
				"moyang.job":        AttrOccupation,
				"moyang.address":    AttrAddress,
			}},
			{Name: "anak", NIKField: "anak.nik", Fill: map[string]string{
				"anak.name":       AttrFullName,
				"anak.gender":     AttrGender,
				"anak.birthPlace": AttrPlaceOfBirth,
				"anak.birthDate":  AttrDateOfBirth,
				"anak.religion":   AttrReligion,
				"anak.job":        AttrOccupation,
				"anak.address":    AttrAddress,
			}},
		},
		Attachments: []Attachment{
			{FieldName: "KTP Orang tua kandung", Label: "Scan/Foto KTP Orang Tua Kandung", Required: true},
			{FieldName: "KTP Anak Kandung", Label: "Scan/Foto KTP Anak Kandung", Required: true},
		},
	},

	"Surat Keterangan Pemakaman": {
		LetterType: "Surat Keterangan Pemakaman",
		Fields: []Field{
			nik("nik", "NIK"),
			req("name", "Nama"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("religion", "Agama"),
			req("gender", "Jenis Kelamin"),
			req("maritalStatus", "Status Perkawinan"),
			req("job", "Pekerjaan"),
			req("nationality", "Kewarganegaraan"),
			req("address", "Alamat"),
			date("deathDate", "Tanggal Kematian"),
			req("deathTime", "Jam"),
			req("deathLocation", "Tempat Kematian"),
			req("deathCause", "Sebab Kematian"),
			req("burialLocation", "Dimakamkan di"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: map[string]string{
			"name":          AttrFullName,
			"gender":        AttrGender,
			"birthPlace":    AttrPlaceOfBirth,
			"birthDate":     AttrDateOfBirth,
			"religion":      AttrReligion,
			"maritalStatus": AttrMaritalStatus,
			"job":           AttrOccupation,
			"address":       AttrAddress,
		}}},
		Attachments: []Attachment{
			{FieldName: "KTP Almarhum", Label: "Scan/Foto KTP Almarhum", Required: true},
			{FieldName: "Kartu Keluarga", Label: "Scan/Foto Kartu Keluarga", Required: true},
		},
	},

	"Surat Keterangan Wali": {
		LetterType: "Surat Keterangan Wali",
		Fields: []Field{
			req("purpose", "Persyaratan/Keperluan"),
			nik("wali.nik", "NIK Wali"),
			req("wali.name", "Nama Wali"),
			req("wali.gender", "Jenis Kelamin Wali"),
			req("wali.birthPlace", "Tempat Lahir Wali"),
			date("wali.birthDate", "Tanggal Lahir Wali"),
			opt("wali.job", "Pekerjaan Wali"),
			req("wali.address", "Alamat Wali"),
			nik("anak.nik", "NIK Anak"),
			req("anak.name", "Nama Anak"),
			req("anak.gender", "Jenis Kelamin Anak"),
			req("anak.birthPlace", "Tempat Lahir Anak"),
			date("anak.birthDate", "Tanggal Lahir Anak"),
			req("anak.address", "Alamat Anak"),
		},
		Groups: []FillGroup{
			{Name: "wali", NIKField: "wali.nik", Fill: map[string]string{
				"wali.name":       AttrFullName,
				"wali.gender":     AttrGender,
				"wali.birthPlace": AttrPlaceOfBirth,
				"wali.birthDate":  AttrDateOfBirth,
				"wali.job":        AttrOccupation,
				"wali.address":    AttrAddress,
			}},
			{Name: "anak", NIKField: "anak.nik", Fill: map[string]string{
				"anak.name":       AttrFullName,
				"anak.gender":     AttrGender,
				"anak.birthPlace": AttrPlaceOfBirth,
				"anak.birthDate":  AttrDateOfBirth,
				"anak.address":    AttrAddress,
			}},
		},
	},

	"Surat Keterangan Reaktivasi BPJS Kesehatan": {
		LetterType: "Surat Keterangan Reaktivasi BPJS Kesehatan",
		Fields: []Field{
			req("rekamMedis", "No. Rekam Medis"),
			req("jenisPenyakit", "Jenis Penyakit"),
			req("noBpjs", "No. BPJS"),
			nik("nik", "NIK"),
			req("name", "Nama Lengkap"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("job", "Pekerjaan"),
			req("address", "Alamat"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: map[string]string{
			"name":       AttrFullName,
			"birthPlace": AttrPlaceOfBirth,
			"birthDate":  AttrDateOfBirth,
			"job":        AttrOccupation,
			"address":    AttrAddress,
		}}},
	},

	"Surat Pengantar Umum": {
		LetterType: "Surat Pengantar Umum",
		Fields: []Field{
			nik("nik", "NIK"),
			req("name", "Nama Lengkap"),
			req("gender", "Jenis Kelamin"),
			req("birthPlace", "Tempat Lahir"),
			date("birthDate", "Tanggal Lahir"),
			req("job", "Pekerjaan"),
			req("purpose", "Keperluan"),
			req("address", "Alamat"),
		},
		Groups: []FillGroup{{Name: "subject", NIKField: "nik", Fill: map[string]string{
			"name":       AttrFullName,
			"gender":     AttrGender,
			"birthPlace": AttrPlaceOfBirth,
			"birthDate":  AttrDateOfBirth,
			"job":        AttrOccupation,
			"address":    AttrAddress,
		}}},
	},
}

// Get returns the schema for a letter type, or nil when unknown.
func Get(letterType string) *Schema {
	return catalog[letterType]
}

// Types lists every registered letter type.
func Types() []string {
	out := make([]string, 0, len(catalog))
	for t := range catalog {
		out = append(out, t)
	}
	return out
}
