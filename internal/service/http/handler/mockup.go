package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reusedev/mockup-hub/internal/components/mysql"
	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
	"github.com/reusedev/mockup-hub/internal/modules/batch"
	"github.com/reusedev/mockup-hub/internal/modules/dao"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/queue"
	"github.com/reusedev/mockup-hub/internal/modules/store"
	"github.com/reusedev/mockup-hub/internal/service/http/handler/request"
	"github.com/reusedev/mockup-hub/internal/service/http/handler/response"
	"github.com/reusedev/mockup-hub/tools"
)

// Generate runs the orchestration loop for the requested mediums, or the
// current selection when none are given.
func Generate(c *gin.Context) {
	form := request.Generate{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	imageRecord, err := dao.SourceImageById(form.ImageId)
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	sourceBytes, err := loadSourceBytes(imageRecord)
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	GStore.SetSourceImage(imageRecord.Id)

	mediums := make([]consts.Medium, 0, len(form.Mediums))
	for _, m := range form.Mediums {
		mediums = append(mediums, consts.Medium(m))
	}
	if len(mediums) == 0 {
		mediums = GStore.Selection()
	} else {
		GStore.SetSelection(mediums)
	}
	if len(mediums) == 0 {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("no mediums selected"))
		return
	}
	if form.AspectRatio != "" {
		GStore.SetAspectRatio(consts.AspectRatio(form.AspectRatio))
	}
	if form.Sampling != nil {
		GStore.SetSampling(image.SamplingConfig{
			Temperature: form.Sampling.Temperature,
			TopK:        form.Sampling.TopK,
			TopP:        form.Sampling.TopP,
			Seed:        form.Sampling.Seed,
		})
	}

	spec := batch.Spec{
		BatchID:     uuid.New().String(),
		SourceImage: sourceBytes,
		Mediums:     mediums,
		AspectRatio: GStore.AspectRatio(),
		Sampling:    GStore.Sampling(),
	}
	var skipped []consts.Medium
	for _, m := range mediums {
		if GStore.InFlight(m) {
			skipped = append(skipped, m)
		}
	}
	queue.BatchTaskQueue <- &batch.Task{Runner: GRunner, Spec: spec}
	c.Set("batch_id", spec.BatchID)
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"batch_id": spec.BatchID,
		"mediums":  mediums,
		"skipped":  skipped,
	}))
}

// Retry re-runs the loop for a subset of failed mediums, or every failed
// medium when the subset is empty.
func Retry(c *gin.Context) {
	form := request.Retry{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	failed := make(map[consts.Medium]struct{})
	for _, f := range GStore.Failures() {
		failed[f.Medium] = struct{}{}
	}
	var mediums []consts.Medium
	if len(form.Mediums) == 0 {
		for m := range failed {
			mediums = append(mediums, m)
		}
	} else {
		for _, m := range form.Mediums {
			medium := consts.Medium(m)
			if _, ok := failed[medium]; !ok {
				c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(fmt.Sprintf("medium not in failure list: %s", m)))
				return
			}
			mediums = append(mediums, medium)
		}
	}
	if len(mediums) == 0 {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("nothing to retry"))
		return
	}
	sourceId := GStore.SourceImage()
	if sourceId == 0 {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("no source image uploaded"))
		return
	}
	imageRecord, err := dao.SourceImageById(sourceId)
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	sourceBytes, err := loadSourceBytes(imageRecord)
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	spec := batch.Spec{
		BatchID:     uuid.New().String(),
		SourceImage: sourceBytes,
		Mediums:     mediums,
		AspectRatio: GStore.AspectRatio(),
		Sampling:    GStore.Sampling(),
	}
	queue.BatchTaskQueue <- &batch.Task{Runner: GRunner, Spec: spec}
	c.Set("batch_id", spec.BatchID)
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"batch_id": spec.BatchID,
		"mediums":  mediums,
	}))
}

// State returns the whole studio snapshot in one response: selection, aspect
// ratio, sampling config, results, failures and in-flight progress.
func State(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessWithData(GStore.Snapshot()))
}

func Progress(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"progress": GStore.Progress(),
		"failures": GStore.Failures(),
	}))
}

func Results(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessWithData(GStore.Results()))
}

func ClearResults(c *gin.Context) {
	cleared := GStore.ClearResults()
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{"cleared": len(cleared)}))
}

func Selection(c *gin.Context) {
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{
		"selection":    GStore.Selection(),
		"aspect_ratio": GStore.AspectRatio(),
		"sampling":     GStore.Sampling(),
	}))
}

func SetSelection(c *gin.Context) {
	form := request.Selection{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	mediums := make([]consts.Medium, 0, len(form.Mediums))
	for _, m := range form.Mediums {
		mediums = append(mediums, consts.Medium(m))
	}
	GStore.SetSelection(mediums)
	c.JSON(http.StatusOK, response.SuccessWithData(GStore.Selection()))
}

// DownloadResult serves one result's image. Results cleared from the session
// are still reachable through their persisted record.
func DownloadResult(c *gin.Context) {
	id := c.Param("id")
	var result *store.Result
	for _, r := range GStore.Results() {
		if r.Id == id {
			result = &r
			break
		}
	}
	if result == nil && mysql.DB != nil {
		record, err := dao.MockupImageByResultId(id)
		if err == nil {
			result = &store.Result{
				Id:     record.ResultId,
				Medium: consts.Medium(record.Medium),
				Key:    record.Key,
				URL:    record.URL,
			}
		}
	}
	if result == nil {
		c.JSON(http.StatusNotFound, response.ParamErrorWithMessage("result not found"))
		return
	}
	data, err := GPackager.Fetch(c.Request.Context(), *result)
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	contentType := "application/octet-stream"
	if imgType := tools.DetectImageType(data); imgType != tools.ImageTypeUnknown {
		contentType = "image/" + imgType.String()
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s-%s.png\"", result.Medium.String(), id))
	c.Data(http.StatusOK, contentType, data)
}

// Export bundles every result into one zip. Any fetch failure aborts the
// whole archive, individual downloads stay available.
func Export(c *gin.Context) {
	results := GStore.Results()
	if len(results) == 0 {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage("no results to export"))
		return
	}
	buf := &bytes.Buffer{}
	// Oldest first so ordinals follow generation order.
	ordered := make([]store.Result, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		ordered = append(ordered, results[i])
	}
	if err := GPackager.Archive(c.Request.Context(), ordered, buf); err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.ExportError)
		return
	}
	filename := fmt.Sprintf("mockups-%s.zip", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}
