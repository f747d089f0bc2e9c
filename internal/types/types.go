package types

// ChatResponse is the sole result shape of POST /chat. ImageURL and DocxURL
// are independent: either may be null without implying anything about the other.
type ChatResponse struct {
	Text     string  `json:"text"`
	ImageURL *string `json:"image_url"`
	DocxURL  *string `json:"docx_url"`
}

type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type BookingSubmission struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Requirements string `json:"requirements"`
	// Assigned by the server at append time, RFC 3339.
	Timestamp string `json:"timestamp"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
