package gallery

import "time"

const (
	DefaultSuccessDuration = 3 * time.Second
	DefaultErrorDuration   = 5 * time.Second
)

const (
	msgNoFile          = "Please select a file to upload"
	msgUnsupportedType = "Unsupported file type: %s"
	msgNoDescription   = "Please enter a description"
	msgDescriptionLong = "Description must be 500 characters or less"
	msgNotEditing      = "No media selected for editing"

	msgUploaded      = "File uploaded successfully!"
	msgUploadFailed  = "Failed to upload file. Please try again."
	msgUpdated       = "Description updated successfully!"
	msgUpdateFailed  = "Failed to update description. Please try again."
	msgDeleted       = "Media deleted successfully!"
	msgDeleteFailed  = "Failed to delete media. Please try again."
	msgLoadFailed    = "Failed to load media. Please refresh the page."
	msgConfirmDelete = "Are you sure you want to delete this media?"
)
