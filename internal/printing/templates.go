package printing

import "fmt"

const closingStandard = "Demikian surat keterangan ini dibuat dengan sebenarnya untuk dipergunakan sebagaimana mestinya."

// opening returns the village-head introduction paragraph. The verb clause
// varies slightly per letter, matching the wording each physical letter has
// always carried.
func opening(clause string) string {
	return fmt.Sprintf("Yang bertanda tangan di bawah ini Kepala Desa %s, Kecamatan %s, Kabupaten %s, %s",
		VillageName, DistrictName, RegencyName, clause)
}

func renderTidakMampu(f FormData, b *builder, doc *Document) {
	b.paragraph(opening("menerangkan dengan sebenar-benarnya bahwa:"))
	b.table(
		row("Nama", f.Str("applicantName")),
		row("NIK", f.Str("applicantNik")),
		row("Tempat/Tgl Lahir", FormatTTL(f.Str("applicantBirthPlace"), f.Str("applicantBirthDate"))),
		row("Jenis Kelamin", f.Str("applicantGender")),
		row("Agama", f.Str("applicantReligion")),
		row("Pekerjaan", f.Str("applicantJob")),
		row("Alamat", f.Str("applicantAddress")),
	)

	if f.Str("submissionType") == "child" {
		b.paragraph("Adalah benar orang tua / wali dari:")
		b.table(
			row("Nama", f.Str("childName")),
			row("NIK", f.Str("childNik")),
			row("Tempat/Tgl Lahir", FormatTTL(f.Str("childBirthPlace"), f.Str("childBirthDate"))),
			row("Jenis Kelamin", f.Str("childGender")),
			row("Pekerjaan", f.Str("childJob")),
			row("Alamat", f.Str("childAddress")),
		)
	}

	b.paragraph(fmt.Sprintf("Nama tersebut di atas adalah benar-benar warga kami dan tergolong keluarga yang tidak mampu / keluarga berpenghasilan rendah. Surat keterangan ini dibuat untuk keperluan : %s.", f.Str("purpose")))
	b.paragraph(closingStandard)
}

func renderSKCK(f FormData, b *builder, doc *Document) {
	doc.Signature.RequesterLabel = "Tanda Tangan Pemegang"
	doc.Countersign = true

	b.paragraph(opening("menerangkan dengan sebenar-benarnya bahwa:"))
	b.table(
		row("Nama Lengkap", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Jenis Kelamin", f.Str("gender")),
		row("Tempat/Tgl Lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Kewarganegaraan", f.Str("nationality")),
		row("Agama", f.Str("religion")),
		row("Pekerjaan", f.Str("job")),
		row("Alamat", f.Str("address")),
	)
	b.paragraph("Berdasarkan data kependudukan dan catatan yang ada di kantor kami, nama tersebut di atas adalah benar-benar warga kami yang berdomisili di alamat tersebut. Sepanjang pengetahuan kami, yang bersangkutan berkelakuan baik, tidak pernah tersangkut perkara pidana maupun perdata, dan tidak sedang dalam pengawasan pihak berwajib.")
	b.paragraph(fmt.Sprintf("Surat keterangan ini dibuat sebagai pengantar untuk keperluan: %s.", f.Str("purpose")))
	b.paragraph(closingStandard)
}

func renderPindah(f FormData, b *builder, doc *Document) {
	b.paragraph(opening("menerangkan bahwa:"))
	b.table(
		row("Nama Lengkap", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Nomor KK", f.Str("kkNumber")),
		row("Nama Kepala Keluarga", f.Str("kkHead")),
		row("Alamat Asal", fmt.Sprintf("Desa %s, RT %s / RW %s, Kecamatan %s, Kabupaten %s, Provinsi Jawa Tengah",
			VillageName, f.Str("currentAddressRt"), f.Str("currentAddressRw"), DistrictName, RegencyName)),
	)
	b.paragraph("Bermaksud untuk pindah alamat ke:")
	b.table(
		row("Alamat Tujuan", fmt.Sprintf("Desa %s, RT %s / RW %s, Kecamatan %s, Kabupaten %s, Provinsi %s",
			f.Str("destinationAddress"), f.Str("destinationAddressRt"), f.Str("destinationAddressRw"),
			f.Str("destinationKecamatan"), f.Str("destinationKabupaten"), f.Str("destinationProvinsi"))),
		row("Jumlah Keluarga", f.Str("familyCount")+" orang"),
	)

	if members := f.List("familyMembers"); len(members) > 0 {
		b.paragraph("Adapun anggota keluarga yang ikut pindah adalah sebagai berikut:")
		cells := make([][]string, 0, len(members))
		for i, m := range members {
			cells = append(cells, []string{
				fmt.Sprint(i + 1),
				m.Str("nik"),
				m.Str("name"),
				m.Str("relationship"),
			})
		}
		b.memberTable([]string{"No", "NIK", "Nama Lengkap", "SHDK"}, cells)
	}

	b.paragraph("Surat pengantar ini dibuat sebagai kelengkapan administrasi untuk proses pindah domisili yang bersangkutan.")
	b.paragraph("Demikian surat pengantar ini dibuat untuk dapat dipergunakan sebagaimana mestinya.")
}

func renderUsaha(f FormData, b *builder, doc *Document) {
	doc.Signature.HideRequester = true

	b.paragraph(opening("menerangkan dengan sebenar-benarnya bahwa :"))
	b.table(
		row("Nama", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Tempat/Tgl Lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Jenis Kelamin", f.Str("gender")),
		row("Alamat", f.Str("address")),
		row("Pekerjaan", f.Str("job")),
	)
	b.paragraph("Adalah benar yang bersangkutan memiliki usaha dengan keterangan sebagai berikut:")
	b.table(
		row("Nama Usaha", f.Str("businessName")),
		row("Jenis Usaha", f.Str("businessType")),
		row("Alamat Usaha", f.Str("businessAddress")),
		row("Berdiri Sejak", f.Str("businessSince")),
	)
	b.paragraph(fmt.Sprintf("Surat keterangan ini dibuat untuk keperluan : %s", f.Str("purpose")))
	b.paragraph(closingStandard)
}

func renderLahir(f FormData, b *builder, doc *Document) {
	doc.Signature.RequesterLabel = "Pelapor"
	if reporter := f.Str("reporterName"); reporter != "" {
		doc.Signature.RequesterName = reporter
	}

	b.paragraph(opening("dengan ini menerangkan kepada :"))
	b.table(
		row("Nama Anak", f.Str("childName")),
		row("Jenis Kelamin", f.Str("childGender")),
		row("NIK Anak", f.Str("childNik")),
		row("Tempat / Tgl Lahir", FormatTTL(f.Str("childBirthPlace"), f.Str("childBirthDate"))),
		row("Waktu Lahir", f.Str("childBirthTime")),
		row("Tempat Dilahirkan", f.Str("childBirthLocation")),
		row("Anak Ke", f.Str("childOrder")),
		row("Berat Bayi", f.Str("birthWeight")),
		row("Panjang Bayi", f.Str("birthLength")),
		row("Penolong Kelahiran", f.Str("birthAssistant")),
		row("Alamat", f.Str("childAddress")),
	)

	b.section("ORANG TUA")
	b.table(
		headingRow("IBU"),
		indentRow("Nama", f.Str("motherName")),
		indentRow("Tempat/Tgl Lahir", FormatTTL(f.Str("motherBirthPlace"), f.Str("motherBirthDate"))),
		indentRow("Pekerjaan", f.Str("motherJob")),
		indentRow("Alamat", f.Str("motherAddress")),
		headingRow("AYAH"),
		indentRow("Nama", f.Str("fatherName")),
		indentRow("NIK Ayah", f.Str("fatherNik")),
		indentRow("Tempat/Tgl Lahir", FormatTTL(f.Str("fatherBirthPlace"), f.Str("fatherBirthDate"))),
		indentRow("Pekerjaan", f.Str("fatherJob")),
		indentRow("Alamat", f.Str("fatherAddress")),
	)

	b.section("PELAPOR & SAKSI")
	b.table(
		row("PELAPOR", f.Str("reporterName")),
		indentRow("NIK Pelapor", f.Str("reporterNik")),
		indentRow("Umur", f.Str("reporterAge")+" Tahun"),
		indentRow("Pekerjaan", f.Str("reporterJob")),
		indentRow("Alamat", f.Str("reporterAddress")),
		row("SAKSI I", f.Str("witness1Name")),
		indentRow("NIK Saksi I", f.Str("witness1Nik")),
		indentRow("Umur", f.Str("witness1Age")+" Tahun"),
		indentRow("Pekerjaan", f.Str("witness1Job")),
		indentRow("Alamat", f.Str("witness1Address")),
		row("SAKSI II", f.Str("witness2Name")),
		indentRow("NIK Saksi II", f.Str("witness2Nik")),
		indentRow("Umur", f.Str("witness2Age")+" Tahun"),
		indentRow("Pekerjaan", f.Str("witness2Job")),
		indentRow("Alamat", f.Str("witness2Address")),
	)

	b.paragraph("Demikian Surat Keterangan Lahir ini dibuat dengan sebenarnya untuk dapat digunakan sebagaimana mestinya.")
}

func renderKematian(f FormData, b *builder, doc *Document) {
	doc.Signature.RequesterLabel = "Pelapor"
	doc.Signature.Reverse = true

	b.paragraph(opening("menerangkan dengan sesungguhnya bahwa :"))
	b.table(
		row("Nama Kepala Keluarga", f.Str("kkHead")),
		row("Nomor KK", f.Str("kkNumber")),
	)

	b.section("DATA JENAZAH")
	b.table(
		row("Nama Jenazah", f.Str("name")),
		row("NIK Jenazah", f.Str("nik")),
		row("Jenis Kelamin", f.Str("gender")),
		row("Tempat / Tgl Lahir", FormatTTL(f.Str("placeOfBirth"), f.Str("birthDate"))),
		row("Umur", f.Str("age")+" Tahun"),
		row("Agama", f.Str("religion")),
		row("Pekerjaan", f.Str("occupation")),
		row("Alamat", f.Str("address")),
		row("Anak Ke", f.Str("anakKe")),
	)

	b.section("KEJADIAN KEMATIAN")
	b.table(
		row("Hari / Tanggal", FormatFullDate(f.Str("deathDate"))),
		row("Pukul", f.Str("deathTime")),
		row("Sebab Kematian", f.Str("deathCause")),
		row("Tempat Kematian", f.Str("deathLocation")),
		row("Yang Menerangkan", f.Str("whoExplains")),
	)

	b.section("DATA ORANG TUA JENAZAH")
	b.table(
		headingRow("AYAH"),
		indentRow("Nama Ayah", f.Str("fatherName")),
		indentRow("NIK Ayah", f.Str("fatherNik")),
		indentRow("TTL Ayah", FormatTTL(f.Str("fatherPlaceOfBirth"), f.Str("fatherBirthDate"))),
		indentRow("Pekerjaan Ayah", f.Str("fatherJob")),
		indentRow("Alamat Ayah", f.Str("fatherAddress")),
		headingRow("IBU"),
		indentRow("Nama Ibu", f.Str("motherName")),
		indentRow("NIK Ibu", f.Str("motherNik")),
		indentRow("TTL Ibu", FormatTTL(f.Str("motherPlaceOfBirth"), f.Str("motherBirthDate"))),
		indentRow("Pekerjaan Ibu", f.Str("motherJob")),
		indentRow("Alamat Ibu", f.Str("motherAddress")),
	)

	// The reporter and witness section always starts on its own page so the
	// signatures never straddle the fold.
	b.pageBreak()

	b.section("PELAPOR & SAKSI")
	b.table(
		row("PELAPOR", f.Str("reporterName")),
		indentRow("NIK Pelapor", f.Str("reporterNik")),
		indentRow("TTL Pelapor", FormatTTL(f.Str("reporterPlaceOfBirth"), f.Str("reporterBirthDate"))),
		indentRow("Pekerjaan Pelapor", f.Str("reporterJob")),
		indentRow("Alamat Pelapor", f.Str("reporterAddress")),
		row("SAKSI I", f.Str("witness1Name")),
		indentRow("NIK Saksi I", f.Str("witness1Nik")),
		indentRow("TTL Saksi I", FormatTTL(f.Str("witness1PlaceOfBirth"), f.Str("witness1BirthDate"))),
		indentRow("Pekerjaan Saksi I", f.Str("witness1Job")),
		indentRow("Alamat Saksi I", f.Str("witness1Address")),
		row("SAKSI II", f.Str("witness2Name")),
		indentRow("NIK Saksi II", f.Str("witness2Nik")),
		indentRow("TTL Saksi II", FormatTTL(f.Str("witness2PlaceOfBirth"), f.Str("witness2BirthDate"))),
		indentRow("Pekerjaan Saksi II", f.Str("witness2Job")),
		indentRow("Alamat Saksi II", f.Str("witness2Address")),
	)

	b.paragraph("Demikian Surat Keterangan Kematian ini dibuat dengan sebenarnya untuk dapat digunakan sebagaimana mestinya.")
}

func renderBelumMenikah(f FormData, b *builder, doc *Document) {
	doc.Signature.HideRequester = true

	b.paragraph(opening("menerangkan dengan sebenar-benarnya bahwa:"))
	b.table(
		row("Nama Lengkap", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Jenis Kelamin", f.Str("gender")),
		row("Tempat/Tgl Lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Kewarganegaraan", f.Str("nationality")),
		row("Agama", f.Str("religion")),
		row("Pekerjaan", f.Str("job")),
		row("Alamat", f.Str("address")),
	)
	b.paragraph("Berdasarkan data kependudukan dan catatan yang ada di kantor kami, serta sepengetahuan kami, nama tersebut di atas adalah benar-benar warga kami yang hingga saat surat keterangan ini dibuat berstatus BELUM PERNAH MENIKAH / LAJANG.")
	b.paragraph(closingStandard)
}

func renderDomisili(f FormData, b *builder, doc *Document) {
	doc.Signature.HideRequester = true

	b.paragraph(opening("menerangkan dengan sebenarnya bahwa :"))
	b.table(
		row("Nama", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Jenis Kelamin", f.Str("gender")),
		row("Tempat/ Tanggal lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Warganegara", f.Str("nationality")),
		row("Agama", f.Str("religion")),
		row("Alamat Asal (KTP)", f.Str("originAddress")),
	)
	b.paragraph(fmt.Sprintf("Adalah benar penduduk Desa %s, Kecamatan %s, Kabupaten %s dan saat ini berdomisili di :", VillageName, DistrictName, RegencyName))
	b.table(
		row("Alamat Domisili", f.Str("domicileAddress")),
	)
	b.paragraph("Demikian surat keterangan ini kami buat dengan sebenarnya agar dapat dipergunakan seperlunya.")
}

func renderIjinKeramaian(f FormData, b *builder, doc *Document) {
	doc.Countersign = true

	b.paragraph(opening("menerangkan dengan sebenarnya bahwa:"))
	b.table(
		row("Nama", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Tempat / Tgl Lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Pekerjaan", f.Str("job")),
		row("Alamat", f.Str("address")),
	)
	b.paragraph(fmt.Sprintf("Orang tersebut di atas adalah benar-benar penduduk Desa %s, Kecamatan %s, Kabupaten %s.", VillageName, DistrictName, RegencyName))
	b.paragraph("Adapun Surat keterangan ini untuk dipergunakan sebagai persyaratan ijin keramaian pada:")
	b.table(
		row("Tanggal Acara", FormatFullDate(f.Str("eventDate"))),
		row("Sampai dengan Tanggal", FormatFullDate(f.Str("eventEndDate"))),
		row("Jumlah Undangan", f.Str("guestCount")),
		row("Acara", f.Str("eventName")),
		row("Hiburan", f.Str("eventEntertainment")),
		row("Tempat", f.Str("eventLocation")),
	)
	b.paragraph(closingStandard)
}

func renderMoyang(f FormData, b *builder, doc *Document) {
	doc.Signature.HideRequester = true
	moyang, anak := f.Sub("moyang"), f.Sub("anak")

	b.paragraph(opening("menerangkan dengan sebenarnya bahwa:"))
	b.table(
		row("Nama Lengkap", moyang.Str("name")),
		row("NIK", moyang.Str("nik")),
		row("Jenis Kelamin", moyang.Str("gender")),
		row("Tempat/Tgl Lahir", FormatTTL(moyang.Str("birthPlace"), moyang.Str("birthDate"))),
		row("Kewarganegaraan", moyang.Str("nationality")),
		row("Agama", moyang.Str("religion")),
		row("Pekerjaan", moyang.Str("job")),
		row("Alamat Domisili", moyang.Str("address")),
	)
	b.paragraph("Tersebut di atas adalah benar-benar Orang Tua Kandung dari:")
	b.table(
		row("Nama Lengkap", anak.Str("name")),
		row("NIK", anak.Str("nik")),
		row("Jenis Kelamin", anak.Str("gender")),
		row("Tempat/Tgl Lahir", FormatTTL(anak.Str("birthPlace"), anak.Str("birthDate"))),
		row("Kewarganegaraan", anak.Str("nationality")),
		row("Agama", anak.Str("religion")),
		row("Pekerjaan", anak.Str("job")),
		row("Alamat Domisili", anak.Str("address")),
	)
	b.paragraph("Demikian surat keterangan ini dibuat dengan sebenarnya untuk dapat dipergunakan sebagaimana mestinya.")
}

func renderPemakaman(f FormData, b *builder, doc *Document) {
	doc.Signature.HideRequester = true

	b.paragraph(opening("menerangkan dengan sebenarnya bahwa:"))
	b.table(
		row("NIK", f.Str("nik")),
		row("Nama Lengkap", f.Str("name")),
		row("Tempat / Tgl lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Agama", f.Str("religion")),
		row("Jenis Kelamin", f.Str("gender")),
		row("Status Perkawinan", f.Str("maritalStatus")),
		row("Pekerjaan", f.Str("job")),
		row("Kewarganegaraan", f.Str("nationality")),
		row("Alamat", f.Str("address")),
	)
	b.paragraph("Tersebut di atas benar-benar telah meninggal dunia pada:")
	b.table(
		row("Hari / Tanggal", FormatFullDate(f.Str("deathDate"))),
		row("Jam", f.Str("deathTime")),
		row("Tempat Kematian", f.Str("deathLocation")),
		row("Sebab Kematian", f.Str("deathCause")),
		row("Dimakamkan di", f.Str("burialLocation")),
	)
	b.paragraph("Demikian surat keterangan ini dibuat dengan sebenarnya agar dapat digunakan seperlunya.")
}

func renderWali(f FormData, b *builder, doc *Document) {
	wali, anak := f.Sub("wali"), f.Sub("anak")

	b.paragraph(opening("menerangkan dengan sebenarnya bahwa:"))
	b.table(
		row("NIK", wali.Str("nik")),
		row("Nama", wali.Str("name")),
		row("Tempat / Tgl Lahir", FormatTTL(wali.Str("birthPlace"), wali.Str("birthDate"))),
		row("Pekerjaan", wali.Str("job")),
		row("Alamat", wali.Str("address")),
	)
	b.paragraph("Tersebut di atas adalah benar-benar Wali / Nenek dari :")
	b.table(
		row("NIK", anak.Str("nik")),
		row("Nama", anak.Str("name")),
		row("Tempat / Tgl Lahir", FormatTTL(anak.Str("birthPlace"), anak.Str("birthDate"))),
		row("Alamat", anak.Str("address")),
	)
	b.paragraph(fmt.Sprintf("Surat keterangan ini diberikan kepada yang bersangkutan untuk dipergunakan sebagai persyaratan : %s.", f.Str("purpose")))
	b.paragraph("Demikian surat keterangan ini dibuat dengan sebenarnya untuk dapat dipergunakan sebagaimana mestinya.")
}

func renderReaktivasiBPJS(f FormData, b *builder, doc *Document) {
	doc.Signature.HideRequester = true

	b.paragraph(opening("menerangkan dengan sebenarnya bahwa:"))
	b.table(
		row("Rekam Medis", f.Str("rekamMedis")),
		row("Jenis Penyakit", f.Str("jenisPenyakit")),
		row("No. BPJS", f.Str("noBpjs")),
	)
	b.paragraph("Menerangkan bahwa:")
	b.table(
		row("Nama", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Tempat/Tanggal Lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Pekerjaan", f.Str("job")),
		row("Alamat", f.Str("address")),
	)
	b.paragraph(fmt.Sprintf("Adalah benar bahwa yang bersangkutan saat ini sedang sakit %s dan membutuhkan pelayanan serta keberlanjutan pengobatan secara medis.", f.Str("jenisPenyakit")))
	b.paragraph(fmt.Sprintf("Surat ini dipergunakan untuk keperluan Reaktivasi BPJS Kesehatan dengan Nomor: %s, bahwa yang bersangkutan benar memerlukan jaminan pelayanan kesehatan sesuai dengan ketentuan yang berlaku.", f.Str("noBpjs")))
	b.paragraph("Demikian surat keterangan ini dibuat dengan sebenarnya untuk dapat dipergunakan sebagaimana mestinya.")
}

func renderPengantarUmum(f FormData, b *builder, doc *Document) {
	b.paragraph(opening("menerangkan dengan sebenarnya bahwa:"))
	b.table(
		row("Nama", f.Str("name")),
		row("NIK", f.Str("nik")),
		row("Tempat / Tgl Lahir", FormatTTL(f.Str("birthPlace"), f.Str("birthDate"))),
		row("Pekerjaan", f.Str("job")),
		row("Alamat", f.Str("address")),
	)
	b.paragraph(fmt.Sprintf("Surat pengantar ini diberikan kepada yang bersangkutan untuk dipergunakan sebagaimana mestinya sesuai dengan keperluan yang dibutuhkan yaitu : %s.", f.Str("purpose")))
	b.paragraph("Demikian surat keterangan ini dibuat dengan sebenarnya untuk dapat dipergunakan sebagaimana mestinya.")
}
