package http

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/mockup-hub/internal/service/http/handler"
	"github.com/reusedev/mockup-hub/internal/service/http/middleware"
)

func Serve(port string) {
	e := gin.New()
	initRouter(e)
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())
	v1 := e.Group("/v1")
	v1.GET("/state", handler.State)
	images := v1.Group("/images")
	{
		images.POST("", handler.UploadImage)
	}
	mockups := v1.Group("/mockups")
	{
		mockups.POST("", handler.Generate)
		mockups.POST("/retry", handler.Retry)
		mockups.GET("/progress", handler.Progress)
		mockups.GET("/results", handler.Results)
		mockups.GET("/results/:id", handler.DownloadResult)
		mockups.DELETE("/results", handler.ClearResults)
		mockups.GET("/export", handler.Export)
	}
	selection := v1.Group("/selection")
	{
		selection.GET("", handler.Selection)
		selection.PUT("", handler.SetSelection)
	}
	presets := v1.Group("/presets")
	{
		presets.GET("", handler.ListPresets)
		presets.POST("", handler.SavePreset)
		presets.DELETE("/:id", handler.DeletePreset)
		presets.POST("/:id/load", handler.LoadPreset)
	}
}
