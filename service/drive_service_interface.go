package service

import "context"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	// UploadPDF stores data as name inside folderID and returns the new file id
	UploadPDF(ctx context.Context, folderID, name string, data []byte) (string, error)
}
