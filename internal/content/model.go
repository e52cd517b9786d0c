package content

// Item describes one marketing screen for a locale.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"` // may contain '\n' line breaks
	RawFilename string `json:"raw_filename"`
	OutFilename string `json:"out_filename"`
	Subtitle    string `json:"subtitle,omitempty"`
	QRText      string `json:"qr_text,omitempty"`
}
