package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/service/http/handler/request"
	"github.com/reusedev/mockup-hub/internal/service/http/handler/response"
)

func ListPresets(c *gin.Context) {
	bundles, err := GPresets.List()
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(bundles))
}

// SavePreset names the current selection, aspect ratio and sampling config.
func SavePreset(c *gin.Context) {
	form := request.SavePreset{}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamError)
		return
	}
	if err := form.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	bundle, err := GPresets.Save(form.Name, GStore.Selection(), GStore.AspectRatio(), GStore.Sampling())
	if err != nil {
		logs.Logger.Err(err)
		c.JSON(http.StatusInternalServerError, response.InternalError)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(bundle))
}

func DeletePreset(c *gin.Context) {
	id := c.Param("id")
	if err := GPresets.Delete(id); err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(gin.H{"deleted": id}))
}

// LoadPreset overwrites the current selection state with the bundle's.
func LoadPreset(c *gin.Context) {
	id := c.Param("id")
	bundle, err := GPresets.Load(id, GStore)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ParamErrorWithMessage(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithData(bundle))
}
