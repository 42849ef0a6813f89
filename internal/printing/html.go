package printing

import (
	"bytes"
	"html/template"
)

// htmlPage lays the document out on A4 sheets with the letterhead image on
// the first page, the signature footer after the last block, and the optional
// acknowledgment row for permit letters. window.print() on load matches how
// admins actually use the page.
const htmlPage = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>{{.Doc.LetterType}}</title>
<style>
  body { font-family: Arial, sans-serif; color: #000; background: #e2e8f0; margin: 0; }
  .page { width: 210mm; min-height: 297mm; background: #fff; margin: 0 auto 10mm; box-sizing: border-box; padding-bottom: 2cm; }
  .page-body { padding-left: 2.5cm; padding-right: 2cm; font-size: 12pt; }
  header img { width: 100%; height: auto; display: block; }
  .title { text-align: center; margin: 1.5em 0; }
  .title .type { font-weight: bold; text-decoration: underline; font-size: 14pt; letter-spacing: 0.05em; text-transform: uppercase; }
  p.body-text { text-align: justify; line-height: 1.6; margin: 1em 0; }
  table.data { border-collapse: collapse; width: 100%; margin: 1em 0; }
  table.data td { padding: 2px 0; vertical-align: top; }
  td.label { width: 38%; }
  td.label.indent { padding-left: 2em; }
  td.colon { width: 2%; text-align: center; }
  td.value { padding-left: 0.5em; font-weight: bold; }
  td.heading { font-weight: bold; }
  .section-title { font-weight: bold; border-bottom: 1px solid #000; padding-top: 1em; }
  table.members { border-collapse: collapse; width: 100%; font-size: 10pt; margin: 1em 0; }
  table.members th, table.members td { border: 1px solid #000; padding: 2px 6px; text-align: left; }
  table.members th:first-child, table.members td:first-child { text-align: center; width: 2.5em; }
  .signatures { display: flex; justify-content: space-between; text-align: center; margin-top: 3em; padding-left: 2.5cm; padding-right: 2cm; }
  .signatures.reverse { flex-direction: row-reverse; }
  .sig-block { width: 40%; }
  .sig-block .gap { height: 6em; }
  .sig-name { font-weight: bold; text-decoration: underline; letter-spacing: 0.05em; text-transform: uppercase; }
  .invisible { visibility: hidden; }
  .countersign { margin-top: 3em; padding-left: 2.5cm; padding-right: 2cm; }
  .countersign .heading { text-align: center; font-weight: bold; text-decoration: underline; text-transform: uppercase; }
  .countersign .officials { display: flex; justify-content: space-between; text-align: center; font-size: 10pt; margin-top: 1.5em; }
  .countersign .officials div { width: 33%; }
  .countersign .officials .gap { height: 5em; }
  @media print {
    @page { size: A4; margin: 0; }
    body { background: #fff; }
    .page { margin: 0; page-break-after: always; }
    .page:last-child { page-break-after: auto; }
  }
</style>
</head>
<body onload="window.print()">
{{- $doc := .Doc -}}
{{- $lastPage := .LastPage -}}
{{range $i, $page := .Doc.Pages}}
<div class="page">
  {{if eq $i 0}}
  <header>{{if $.Letterhead}}<img src="{{$.Letterhead}}" alt="Kop Surat">{{end}}</header>
  <div class="page-body">
    <div class="title">
      <div class="type">{{$doc.LetterType}}</div>
      <div>Nomor : {{$doc.DocumentNumber}}</div>
    </div>
  {{else}}
  <div class="page-body" style="padding-top: 2cm;">
  {{end}}
    {{range $page.Blocks}}
      {{if eq .Kind "paragraph"}}
    <p class="body-text">{{.Text}}</p>
      {{else if eq .Kind "section"}}
    <div class="section-title">{{.Text}}</div>
      {{else if eq .Kind "table"}}
    <table class="data"><tbody>
        {{range .Rows}}
          {{if .Heading}}
      <tr><td class="heading" colspan="3">{{.Label}}</td></tr>
          {{else}}
      <tr><td class="label{{if .Indent}} indent{{end}}">{{.Label}}</td><td class="colon">:</td><td class="value">{{.Value}}</td></tr>
          {{end}}
        {{end}}
    </tbody></table>
      {{else if eq .Kind "members"}}
    <table class="members">
      <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
      <tbody>{{range .Cells}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody>
    </table>
      {{end}}
    {{end}}
  </div>
  {{if eq $i $lastPage}}
  <div class="signatures{{if $doc.Signature.Reverse}} reverse{{end}}">
    <div class="sig-block{{if $doc.Signature.HideRequester}} invisible{{end}}">
      <p{{if not $doc.Signature.Reverse}} class="invisible"{{end}}>{{$.VillageName}}, {{$doc.IssueDate}}</p>
      <p>{{$doc.Signature.RequesterLabel}}</p>
      <div class="gap"></div>
      <p class="sig-name">{{$doc.Signature.RequesterName}}</p>
    </div>
    <div class="sig-block">
      <p{{if $doc.Signature.Reverse}} class="invisible"{{end}}>{{$.VillageName}}, {{$doc.IssueDate}}</p>
      <p>Kepala Desa {{$.VillageName}}</p>
      <div class="gap"></div>
      <p class="sig-name">{{$.HeadOfficial}}</p>
    </div>
  </div>
  {{if $doc.Countersign}}
  <div class="countersign">
    <div class="heading">Mengetahui :</div>
    <div class="officials">
      <div><p><strong>CAMAT</strong></p><p>{{$.DistrictName}}</p><div class="gap"></div><p>__________________________</p></div>
      <div><p><strong>DAN RAMIL 10</strong></p><p>{{$.DistrictName}}</p><div class="gap"></div><p>__________________________</p></div>
      <div><p><strong>KAPOLSEK</strong></p><p>{{$.DistrictName}}</p><div class="gap"></div><p>__________________________</p></div>
    </div>
  </div>
  {{end}}
  {{end}}
</div>
{{end}}
</body>
</html>`

var pageTemplate = template.Must(template.New("letter").Parse(htmlPage))

// RenderHTML writes the document as a ready-to-print HTML page. letterhead is
// the kop surat image as a data URL; an empty value leaves the header blank.
func RenderHTML(doc *Document, letterhead string) ([]byte, error) {
	data := struct {
		Doc          *Document
		Letterhead   template.URL
		LastPage     int
		VillageName  string
		DistrictName string
		HeadOfficial string
	}{
		Doc:          doc,
		Letterhead:   template.URL(letterhead),
		LastPage:     len(doc.Pages) - 1,
		VillageName:  VillageName,
		DistrictName: DistrictName,
		HeadOfficial: HeadOfficial,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
