package handler

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reusedev/mockup-hub/config"
	"github.com/reusedev/mockup-hub/internal/components/mysql"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/model"
	"github.com/reusedev/mockup-hub/internal/modules/storage/ali"
	"github.com/reusedev/mockup-hub/internal/modules/storage/local"
	"github.com/reusedev/mockup-hub/internal/service/http/handler/response"
	"github.com/reusedev/mockup-hub/tools"
)

const maxSourceBytes = 4 << 20

// UploadImage stores the brand logo the mockups are composited from.
func UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	if tools.DetectImageType(data) == tools.ImageTypeUnknown {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("unsupported image format"))
		return
	}
	// Oversized logos get recompressed, the relay rejects large inline images.
	if len(data) > maxSourceBytes {
		compressed, err := tools.ConvertAndCompressToJPEG(data, 85)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("image too large and could not be compressed"))
			return
		}
		data = compressed
	}

	record := model.SourceImage{}
	if config.GConfig.StorageEnabled && ali.OssClient != nil {
		key, err := ali.OssClient.UploadFileWithName(header.Filename, bytes.NewReader(data))
		if err != nil {
			logs.Logger.Err(err)
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		record.StorageSupplierName = config.GConfig.StorageSupplier
		record.Key = key
	} else {
		path := filepath.Join("uploads", uuid.New().String()+filepath.Ext(header.Filename))
		if err := local.SaveFile(bytes.NewReader(data), path); err != nil {
			logs.Logger.Err(err)
			c.JSON(http.StatusInternalServerError, response.InternalError)
			return
		}
		record.StorageSupplierName = "local"
		record.Path = path
	}
	if err := mysql.DB.Model(&model.SourceImage{}).Create(&record).Error; err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(record))
}

func loadSourceBytes(record model.SourceImage) ([]byte, error) {
	if record.Key != "" && ali.OssClient != nil {
		return ali.OssClient.Download(record.Key)
	}
	if record.Path != "" {
		return os.ReadFile(record.Path)
	}
	data, _, err := tools.GetOnlineImage(record.URL)
	return data, err
}
