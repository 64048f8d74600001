package service

import (
	"ttcloud/database"
	"ttcloud/database/model"
	"ttcloud/util/common"
)

type UploadService struct{}

// CreateUpload persists a file blob for the given owner. The owner id comes
// from the authenticated identity, never from request fields.
func (s *UploadService) CreateUpload(name string, data []byte, mimeType string, userId int) (*model.Upload, error) {
	if name == "" {
		return nil, common.NewError("upload name can not be empty")
	}
	db := database.GetDB()

	upload := &model.Upload{
		Name:     name,
		Data:     data,
		MimeType: mimeType,
		UserId:   userId,
	}
	if err := db.Create(upload).Error; err != nil {
		return nil, err
	}
	return upload, nil
}

// GetUploadByName returns the most recent upload stored under the given
// name. Re-uploading a name creates a new row, so the newest row wins.
func (s *UploadService) GetUploadByName(name string) (*model.Upload, error) {
	db := database.GetDB()

	upload := &model.Upload{}
	err := db.Model(model.Upload{}).
		Where("name = ?", name).
		Order("id DESC").
		First(upload).
		Error
	if err != nil {
		return nil, err
	}
	return upload, nil
}
