package entities

// Email is a single-recipient plain text message with at most one attachment.
type Email struct {
	From       string
	To         string
	Subject    string
	Body       string
	Attachment *Attachment
}

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}
