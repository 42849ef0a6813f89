package printing

// Village identity constants shared by every letter template.
const (
	VillageName  = "Karanggintung"
	DistrictName = "Gandrungmangu"
	RegencyName  = "Cilacap"
	HeadOfficial = "TURMONO"
)

type BlockKind string

const (
	BlockParagraph    BlockKind = "paragraph"
	BlockSectionTitle BlockKind = "section"
	BlockDataTable    BlockKind = "table"
	BlockMemberTable  BlockKind = "members"
)

// Row is one "label : value" line of a data table. Empty values print as a
// dash. Indent marks sub-rows of a grouped section (father/mother blocks);
// Heading rows render the label alone without a colon.
type Row struct {
	Label   string
	Value   string
	Indent  bool
	Heading bool
}

type Block struct {
	Kind    BlockKind
	Text    string // paragraph or section title
	Rows    []Row
	Columns []string   // member table header
	Cells   [][]string // member table body
}

type Page struct {
	Blocks []Block
}

// Signature controls the footer: the requester block can be relabeled (e.g.
// "Pelapor"), renamed (a birth letter is signed by the reporter, not the
// subject), hidden, or swapped with the village-head block.
type Signature struct {
	RequesterLabel string
	RequesterName  string
	HideRequester  bool
	Reverse        bool
}

// Document is the renderer output: fixed-size pages of blocks plus the shared
// header/footer data, ready for the A4 HTML export.
type Document struct {
	LetterType     string
	DocumentNumber string
	IssueDate      string // formatted, shown beside the issuing signature
	Pages          []Page
	Signature      Signature
	// Countersign adds the sub-district/military/police acknowledgment block
	// used by permit-class letters.
	Countersign bool
}

// builder accumulates blocks and handles explicit page breaks.
type builder struct {
	pages   []Page
	current Page
}

func (b *builder) add(block Block) {
	b.current.Blocks = append(b.current.Blocks, block)
}

func (b *builder) paragraph(text string) {
	b.add(Block{Kind: BlockParagraph, Text: text})
}

func (b *builder) section(title string) {
	b.add(Block{Kind: BlockSectionTitle, Text: title})
}

func (b *builder) table(rows ...Row) {
	b.add(Block{Kind: BlockDataTable, Rows: rows})
}

func (b *builder) memberTable(columns []string, cells [][]string) {
	b.add(Block{Kind: BlockMemberTable, Columns: columns, Cells: cells})
}

// pageBreak closes the current page; later blocks land on a fresh one.
func (b *builder) pageBreak() {
	b.pages = append(b.pages, b.current)
	b.current = Page{}
}

func (b *builder) finish() []Page {
	return append(b.pages, b.current)
}

// row builds a standard display row; missing values become a dash.
func row(label, value string) Row {
	if value == "" {
		value = "-"
	}
	return Row{Label: label, Value: value}
}

func indentRow(label, value string) Row {
	if value == "" {
		value = "-"
	}
	return Row{Label: label, Value: value, Indent: true}
}

func headingRow(label string) Row {
	return Row{Label: label, Heading: true}
}
