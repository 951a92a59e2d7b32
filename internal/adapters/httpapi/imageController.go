package httpapi

import (
	"errors"
	"io"
	"net/http"

	imageapp "codepulse/internal/core/image/service"

	"github.com/gin-gonic/gin"
)

type ImageController struct{ uc ImageUseCase }

func NewImageController(uc ImageUseCase) *ImageController { return &ImageController{uc: uc} }

func (ctl *ImageController) GetAllImages(c *gin.Context) {
	res, err := ctl.uc.GetAllImages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list images"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *ImageController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	fileName := c.PostForm("fileName")
	title := c.PostForm("title")
	if fileName == "" || title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName and title are required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, imageapp.MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}

	res, err := ctl.uc.Upload(c.Request.Context(), content, fileHeader.Filename, fileName, title)
	if errors.Is(err, imageapp.ErrUnsupportedFileFormat) || errors.Is(err, imageapp.ErrFileTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not upload image"})
		return
	}
	c.JSON(http.StatusCreated, res)
}
