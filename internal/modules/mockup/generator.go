package mockup

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/reusedev/mockup-hub/config"
	"github.com/reusedev/mockup-hub/internal/components/mysql"
	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image/gemini"
	"github.com/reusedev/mockup-hub/internal/modules/batch"
	"github.com/reusedev/mockup-hub/internal/modules/cache"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/model"
	"github.com/reusedev/mockup-hub/internal/modules/storage/ali"
	"github.com/reusedev/mockup-hub/internal/modules/store"
	"github.com/reusedev/mockup-hub/tools"
)

// Generator is the production batch.Generator: one relay Create per medium,
// storage transfer on success, invoke history per attempt.
type Generator struct {
	tokens []ai.TokenWithModel
}

func NewGenerator(tokens []ai.TokenWithModel) *Generator {
	return &Generator{tokens: tokens}
}

func (g *Generator) Generate(ctx context.Context, spec batch.Spec, medium consts.Medium) batch.Outcome {
	provider := gemini.NewProvider(g.tokens, func(attempt gemini.Attempt) {
		recordAttempt(spec.BatchID, medium, attempt)
	})
	response := provider.Create(ctx, gemini.Request{
		ImageBytes:  [][]byte{spec.SourceImage},
		Prompt:      medium.SceneTemplate(),
		AspectRatio: spec.AspectRatio,
		Sampling:    spec.Sampling,
		BatchID:     spec.BatchID,
	})
	if response == nil {
		return batch.Outcome{
			Medium: medium,
			Kind:   consts.FailureUnknown,
			Reason: "no suppliers configured",
		}
	}
	if !response.Succeed() {
		reason := response.GetRespBody()
		if err := response.GetError(); err != nil {
			reason = err.Error()
		}
		return batch.Outcome{
			Medium: medium,
			Kind:   image.ClassifyFailure(response),
			Reason: reason,
		}
	}
	result, err := g.settle(spec, medium, response)
	if err != nil {
		logs.Logger.Error().Err(err).
			Str("batch_id", spec.BatchID).
			Str("medium", medium.String()).
			Msg("mockup settle failed")
		return batch.Outcome{
			Medium: medium,
			Kind:   consts.FailureUnknown,
			Reason: err.Error(),
		}
	}
	return batch.Outcome{Medium: medium, Result: result}
}

// settle turns a succeeded supplier response into a stored result: resolve
// the bytes, transfer to object storage, persist the row, warm the cache.
func (g *Generator) settle(spec batch.Spec, medium consts.Medium, response image.Response) (*store.Result, error) {
	imgBytes, originURL, err := resolveBytes(response)
	if err != nil {
		return nil, err
	}

	result := store.Result{
		Id:          uuid.New().String(),
		Medium:      medium,
		AspectRatio: spec.AspectRatio,
		Supplier:    response.GetSupplier(),
		Model:       response.GetModel(),
		CreatedAt:   time.Now(),
	}

	record := model.MockupImage{
		ResultId:          result.Id,
		BatchId:           spec.BatchID,
		Medium:            medium.String(),
		AspectRatio:       spec.AspectRatio.String(),
		ModelSupplierURL:  originURL,
		ModelSupplierName: response.GetSupplier(),
		ModelName:         response.GetModel(),
	}

	if config.GConfig.StorageEnabled && ali.OssClient != nil {
		key, err := ali.OssClient.UploadImage(imgBytes)
		if err != nil {
			return nil, err
		}
		duration, _ := time.ParseDuration(config.GConfig.URLExpires)
		url, err := ali.OssClient.URL(key, duration)
		if err != nil {
			return nil, err
		}
		result.Key = key
		result.URL = url
		record.StorageSupplierName = config.GConfig.StorageSupplier
		record.Key = key
		record.URL = url
		if thumbKey, err := uploadThumbnail(imgBytes); err != nil {
			logs.Logger.Warn().Err(err).Str("result_id", result.Id).Msg("thumbnail upload failed")
		} else {
			record.ThumbnailKey = thumbKey
		}
	} else {
		result.URL = originURL
		record.URL = originURL
	}

	if mysql.DB != nil {
		if err := mysql.DB.Model(&model.MockupImage{}).Create(&record).Error; err != nil {
			return nil, err
		}
	}
	_ = cache.ImageCacheManager().SetWithExpiration(result.Id, imgBytes, 30*time.Minute)
	return &result, nil
}

func uploadThumbnail(imgBytes []byte) (string, error) {
	format, err := imaging.FormatFromExtension(tools.DetectImageType(imgBytes).String())
	if err != nil {
		format = imaging.PNG
	}
	thumb, err := tools.Thumbnail(bytes.NewReader(imgBytes), 0.25, format)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(thumb)
	if err != nil {
		return "", err
	}
	return ali.OssClient.UploadImage(data)
}

func resolveBytes(response image.Response) (imgBytes []byte, originURL string, err error) {
	if b64s := response.GetB64s(); len(b64s) > 0 {
		imgBytes, err = base64.StdEncoding.DecodeString(b64s[0])
		return
	}
	urls := response.GetURLs()
	if len(urls) == 0 {
		return nil, "", fmt.Errorf("no image data in response")
	}
	originURL = urls[0]
	imgBytes, _, err = tools.GetOnlineImage(originURL)
	return
}

func recordAttempt(batchID string, medium consts.Medium, attempt gemini.Attempt) {
	if mysql.DB == nil {
		return
	}
	failedBody := attempt.FailedBody
	if len(failedBody) > 2000 {
		failedBody = failedBody[:2000]
	}
	record := model.SupplierInvokeHistory{
		BatchId:        batchID,
		Medium:         medium.String(),
		SupplierName:   attempt.Supplier,
		TokenDesc:      attempt.TokenDesc,
		ModelName:      attempt.Model,
		StatusCode:     attempt.StatusCode,
		FailedRespBody: failedBody,
		DurationMs:     attempt.DurationMs,
	}
	if err := mysql.DB.Model(&model.SupplierInvokeHistory{}).Create(&record).Error; err != nil {
		logs.Logger.Err(err).Msg("record supplier invoke history failed")
	}
}
