// Package api provides the REST API server for drummap2notes
package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/james-see/drummap2notes/pkg/converter"
	"github.com/james-see/drummap2notes/pkg/drummap"
)

// @title DrumMap2Notes API
// @version 1.0
// @description API for converting Cubase drum maps to piano-roll note name files
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert", handleConvert)
		v1.POST("/preview", handlePreview)
		v1.GET("/formats", listFormats)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "drummap2notes",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns the supported input and output formats
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"input":  []string{"drm"},
		"output": []string{"txt", "mid"},
	})
}

// handleConvert godoc
// @Summary Convert a drum map to note name text
// @Description Upload a .drm file and receive the note name text payload
// @Tags convert
// @Accept multipart/form-data
// @Produce text/plain
// @Param file formData file true ".drm file to convert"
// @Param grouped query bool false "Infer order from bracketed family tags"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert [post]
func handleConvert(c *gin.Context) {
	data, name, ok := readUpload(c)
	if !ok {
		return
	}

	conv := converter.New(c.Query("grouped") == "true")
	result, err := conv.Convert(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName(name, converter.NoteNameExt)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", result)
}

// handlePreview godoc
// @Summary Render a drum map as an audition MIDI file
// @Description Upload a .drm file and receive a Standard MIDI File hitting each mapped note in resolver order
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true ".drm file to render"
// @Param grouped query bool false "Infer order from bracketed family tags"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/preview [post]
func handlePreview(c *gin.Context) {
	data, name, ok := readUpload(c)
	if !ok {
		return
	}

	m, err := drummap.Parse(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := converter.NewPreviewWriter().Generate(m, c.Query("grouped") == "true")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName(name, ".mid")))
	c.Data(http.StatusOK, "audio/midi", result)
}

func readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, "", false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, "", false
	}
	return data, header.Filename, true
}

func outputName(uploadName, ext string) string {
	if idx := strings.LastIndex(uploadName, "."); idx > 0 {
		return uploadName[:idx] + ext
	}
	return "converted" + ext
}
