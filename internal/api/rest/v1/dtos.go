package v1

// ErrorResponse is the failure body for every endpoint. The frontend reads
// the short error string from the `e` field.
type ErrorResponse struct {
	E string `json:"e"`
}

// UploadImageResponse is the success body of the banner image upload. URL is
// the serve path written into the banner image record.
type UploadImageResponse struct {
	URL string `json:"url"`
}

// InfoResponse conveys a human-readable outcome for mutating endpoints that
// have no payload to return.
type InfoResponse struct {
	Message string `json:"message"`
}
