package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// CitizenProfile is the stored contact profile for an authenticated citizen,
// embedded into submissions so the admin can reach the requester.
type CitizenProfile struct {
	UserID      int       `json:"user_id"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resident is one row of the village registry. Bulk-imported rows use the NIK
// as their document id; rows added through the admin form carry a generated id,
// so NIK lookups need a fallback query on the nik field.
type Resident struct {
	ID                 string    `json:"id"`
	NIK                string    `json:"nik"`
	FullName           string    `json:"fullName"`
	Gender             string    `json:"gender"`
	PlaceOfBirth       string    `json:"placeOfBirth"`
	DateOfBirth        string    `json:"dateOfBirth"` // free text, several date formats tolerated
	Address            string    `json:"address"`
	RtRw               string    `json:"rtRw"`
	Religion           string    `json:"religion"`
	Occupation         string    `json:"occupation"`
	MaritalStatus      string    `json:"maritalStatus"`
	EducationLevel     string    `json:"educationLevel"`
	RelationshipToHead string    `json:"relationshipToHeadOfFamily"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type SubmissionStatus string

const (
	StatusProcessing SubmissionStatus = "processing"
	StatusPending    SubmissionStatus = "pending"
	StatusApproved   SubmissionStatus = "approved"
	StatusRejected   SubmissionStatus = "rejected"
)

// UploadedFile references a file stored at the external upload endpoint.
type UploadedFile struct {
	FieldName string `json:"fieldName"`
	FileName  string `json:"fileName"`
	FileID    string `json:"fileId"`
}

// LetterSubmission is a citizen's letter request. FormData holds the raw
// serialized form payload exactly as submitted; it is never re-encoded, so the
// print renderer sees the same bytes the citizen sent.
type LetterSubmission struct {
	ID             string           `json:"id"`
	RequesterName  string           `json:"requesterName"`
	NIK            string           `json:"nik"`
	PhoneNumber    string           `json:"phoneNumber"`
	Email          string           `json:"email"`
	LetterType     string           `json:"letterType"`
	Status         SubmissionStatus `json:"status"`
	FormData       string           `json:"formData"`
	DocumentNumber string           `json:"documentNumber,omitempty"`
	AdminNotes     string           `json:"adminNotes,omitempty"`
	FileLinks      []UploadedFile   `json:"fileLinks"`
	RequesterID    int              `json:"requesterId"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

type ComplaintStatus string

const (
	ComplaintNew      ComplaintStatus = "New"
	ComplaintResolved ComplaintStatus = "Resolved"
)

type Complaint struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	SubmissionDate time.Time       `json:"submissionDate"`
	Summary        string          `json:"summary"`
	Sentiment      Sentiment       `json:"sentiment"`
	Keywords       []string        `json:"keywords"`
	SubmitterID    *int            `json:"submitterId,omitempty"` // nil when filed anonymously
	AdminResponse  string          `json:"adminResponse,omitempty"`
	Status         ComplaintStatus `json:"status"`
}

type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publishDate"`
	AuthorName  string    `json:"authorName"`
}
