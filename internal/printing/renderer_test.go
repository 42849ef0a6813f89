package printing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issueDate = time.Date(2026, time.June, 10, 0, 0, 0, 0, time.Local)

func TestRenderRequiresDocumentNumber(t *testing.T) {
	_, err := Render("Surat Keterangan Usaha", "BUDI", `{}`, "", issueDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document number")
}

func TestRenderUnknownLetterType(t *testing.T) {
	_, err := Render("Surat Sakti", "BUDI", `{}`, "012/VI/06/2026", issueDate)
	require.Error(t, err)
}

func TestRenderRejectsBadFormData(t *testing.T) {
	_, err := Render("Surat Keterangan Usaha", "BUDI", `{not json`, "012/VI/06/2026", issueDate)
	require.Error(t, err)
}

func TestRenderCarriesDocumentNumber(t *testing.T) {
	doc, err := Render("Surat Keterangan Usaha", "BUDI SANTOSO",
		`{"name":"BUDI SANTOSO","nik":"3301234567890001","purpose":"pengajuan kredit"}`,
		"012/VI/06/2026", issueDate)
	require.NoError(t, err)

	assert.Equal(t, "012/VI/06/2026", doc.DocumentNumber)
	assert.Equal(t, "10 Juni 2026", doc.IssueDate)
	// A single-section letter stays on one page.
	assert.Len(t, doc.Pages, 1)
}

func TestRenderEveryRegisteredType(t *testing.T) {
	payload := `{"moyang":{},"anak":{},"wali":{}}`
	for letterType := range templates {
		doc, err := Render(letterType, "BUDI", payload, "001/I/06/2026", issueDate)
		require.NoError(t, err, letterType)
		require.NotEmpty(t, doc.Pages, letterType)
	}
}

func TestDeathCertificatePageBreak(t *testing.T) {
	doc, err := Render("Surat Keterangan Kematian", "SITI AMINAH",
		`{"name":"KARTO","nik":"3301234567890002","reporterName":"SITI AMINAH"}`,
		"020/VI/06/2026", issueDate)
	require.NoError(t, err)

	// The reporter and witness section lands on the second sheet.
	require.Len(t, doc.Pages, 2)
	assert.True(t, doc.Signature.Reverse)
	assert.Equal(t, "Pelapor", doc.Signature.RequesterLabel)

	var found bool
	for _, block := range doc.Pages[1].Blocks {
		if block.Kind == BlockSectionTitle && block.Text == "PELAPOR & SAKSI" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSignatureVariants(t *testing.T) {
	skck, err := Render("Surat Pengantar SKCK", "BUDI", `{}`, "001/I/06/2026", issueDate)
	require.NoError(t, err)
	assert.True(t, skck.Countersign)
	assert.Equal(t, "Tanda Tangan Pemegang", skck.Signature.RequesterLabel)

	keramaian, err := Render("Surat Ijin Keramaian", "BUDI", `{}`, "001/I/06/2026", issueDate)
	require.NoError(t, err)
	assert.True(t, keramaian.Countersign)
	assert.Equal(t, "Pemohon", keramaian.Signature.RequesterLabel)

	domisili, err := Render("Surat Keterangan Domisili", "BUDI", `{}`, "001/I/06/2026", issueDate)
	require.NoError(t, err)
	assert.True(t, domisili.Signature.HideRequester)

	lahir, err := Render("Surat Keterangan Lahir", "BUDI", `{"reporterName":"SLAMET"}`, "001/I/06/2026", issueDate)
	require.NoError(t, err)
	assert.Equal(t, "Pelapor", lahir.Signature.RequesterLabel)
	assert.Equal(t, "SLAMET", lahir.Signature.RequesterName)
}

func TestPindahFamilyMemberTable(t *testing.T) {
	doc, err := Render("Surat Pengantar Pindah", "BUDI",
		`{"name":"BUDI","familyCount":"3","familyMembers":[{"nik":"3301234567890003","name":"WATI","relationship":"Istri"}]}`,
		"005/II/06/2026", issueDate)
	require.NoError(t, err)

	var members *Block
	for i, block := range doc.Pages[0].Blocks {
		if block.Kind == BlockMemberTable {
			members = &doc.Pages[0].Blocks[i]
		}
	}
	require.NotNil(t, members)
	require.Len(t, members.Cells, 1)
	assert.Equal(t, []string{"1", "3301234567890003", "WATI", "Istri"}, members.Cells[0])
}

func TestRenderHTMLContainsNumberAndSignatories(t *testing.T) {
	doc, err := Render("Surat Keterangan Usaha", "BUDI SANTOSO",
		`{"name":"BUDI SANTOSO","businessName":"Warung Makmur"}`,
		"012/VI/06/2026", issueDate)
	require.NoError(t, err)

	html, err := RenderHTML(doc, "data:image/png;base64,AAAA")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "012/VI/06/2026")
	assert.Contains(t, out, "TURMONO")
	assert.Contains(t, out, "Warung Makmur")
	assert.Contains(t, out, "data:image/png;base64,AAAA")
}
