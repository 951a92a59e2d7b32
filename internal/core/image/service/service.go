package imageapp

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	imageEntity "codepulse/internal/core/image"
	imagePort "codepulse/internal/ports/image"

	"github.com/gofrs/uuid"
)

// MaxUploadSize is the hard cap on an uploaded image, 10 MiB.
const MaxUploadSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var (
	ErrUnsupportedFileFormat = errors.New("unsupported file format")
	ErrFileTooLarge          = errors.New("file size cannot be more than 10mb")
)

type ImageService struct {
	ImageRepository imagePort.ImageRepository
	ImageStore      imagePort.ImageStore
}

func NewImageService(repo imagePort.ImageRepository, store imagePort.ImageStore) *ImageService {
	return &ImageService{ImageRepository: repo, ImageStore: store}
}

// Upload validates the file, writes the bytes through the store and
// persists the metadata row. originalName carries the extension;
// fileName is the caller-chosen name the image is stored under.
func (s *ImageService) Upload(ctx context.Context, content []byte, originalName, fileName, title string) (*imagePort.ImageDTO, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedFileFormat
	}
	if len(content) > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	url, err := s.ImageStore.Save(ctx, fileName+ext, content)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	img := &imageEntity.BlogImage{
		ID:            uuid.Must(uuid.NewV4()),
		Title:         title,
		FileName:      fileName,
		FileExtension: ext,
		URL:           url,
	}

	created, err := s.ImageRepository.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}
	return toDTO(created), nil
}

func (s *ImageService) GetAllImages(ctx context.Context) ([]*imagePort.ImageDTO, error) {
	images, err := s.ImageRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	dtos := make([]*imagePort.ImageDTO, 0, len(images))
	for _, img := range images {
		dtos = append(dtos, toDTO(img))
	}
	return dtos, nil
}

func toDTO(img *imageEntity.BlogImage) *imagePort.ImageDTO {
	return &imagePort.ImageDTO{
		ID:            img.ID.String(),
		Title:         img.Title,
		FileName:      img.FileName,
		FileExtension: img.FileExtension,
		URL:           img.URL,
		DateCreated:   img.DateCreated,
	}
}
