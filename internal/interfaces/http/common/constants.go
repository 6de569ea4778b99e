package common

const (
	// MaxNotesRunes limits free-text note length to keep payloads sane.
	MaxNotesRunes = 2000
	// MaxRequestBody limits JSON request bodies for write endpoints.
	MaxRequestBody = 1 << 20
)
