package dao

import (
	"github.com/reusedev/mockup-hub/internal/components/mysql"
	"github.com/reusedev/mockup-hub/internal/modules/model"
)

func SourceImageById(id int) (model.SourceImage, error) {
	var sourceImage model.SourceImage
	err := mysql.DB.Model(&model.SourceImage{}).Where("id = ?", id).First(&sourceImage).Error
	if err != nil {
		return model.SourceImage{}, err
	}
	return sourceImage, nil
}

func MockupImageByResultId(resultId string) (model.MockupImage, error) {
	var mockupImage model.MockupImage
	err := mysql.DB.Model(&model.MockupImage{}).Where("result_id = ?", resultId).First(&mockupImage).Error
	if err != nil {
		return model.MockupImage{}, err
	}
	return mockupImage, nil
}
