package dto

// AttachmentUpload carries an uploaded file through the service layer.
type AttachmentUpload struct {
	Filename string // original client filename, used for extension checks
	Content  []byte
}
