package v1

// BasePath is the path prefix shared by the dashboard endpoints. The image
// upload and serve paths are fixed wire contracts consumed by the frontend,
// so the prefix carries no version segment.
const BasePath = "/api"
