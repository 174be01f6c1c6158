package status

const (
	contentTypeText = "text/plain; charset=utf-8"

	faultMessage = "Failed to inspect model path."
)
