package httpapi

import (
	"context"

	"codepulse/internal/adapters/httpapi/middleware"
	"codepulse/internal/core/auth"
	blogpostPort "codepulse/internal/ports/blogpost"
	categoryPort "codepulse/internal/ports/category"
	imagePort "codepulse/internal/ports/image"
	userPort "codepulse/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Role required on every mutating route.
const WriterRole = "Writer"

// Inbound ports: the interfaces the controllers need, implemented by
// the application services and injected from the outside.

type UserUseCase interface {
	RegisterUser(ctx context.Context, email, password string, roles []string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
}

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, name, urlHandle string) (*categoryPort.CategoryDTO, error)
	GetAllCategories(ctx context.Context) ([]*categoryPort.CategoryDTO, error)
	GetCategoryByID(ctx context.Context, id string) (*categoryPort.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id, name, urlHandle string) (*categoryPort.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id string) (*categoryPort.CategoryDTO, error)
}

type BlogPostUseCase interface {
	CreateBlogPost(ctx context.Context, in blogpostPort.PostInput, categoryIDs []string) (*blogpostPort.BlogPostDTO, error)
	GetAllBlogPosts(ctx context.Context) ([]*blogpostPort.BlogPostDTO, error)
	GetBlogPostByID(ctx context.Context, id string) (*blogpostPort.BlogPostDTO, error)
	GetBlogPostByURLHandle(ctx context.Context, handle string) (*blogpostPort.BlogPostDTO, error)
	GetRecentBlogPosts(ctx context.Context, limit int64) ([]*blogpostPort.BlogPostDTO, error)
	UpdateBlogPost(ctx context.Context, id string, in blogpostPort.PostInput, categoryIDs []string) (*blogpostPort.BlogPostDTO, error)
	DeleteBlogPost(ctx context.Context, id string) (*blogpostPort.BlogPostDTO, error)
}

type ImageUseCase interface {
	Upload(ctx context.Context, content []byte, originalName, fileName, title string) (*imagePort.ImageDTO, error)
	GetAllImages(ctx context.Context) ([]*imagePort.ImageDTO, error)
}

// SetupRoutes wires the controllers; use cases are injected from main.
func SetupRoutes(
	userUC UserUseCase,
	categoryUC CategoryUseCase,
	postUC BlogPostUseCase,
	imageUC ImageUseCase,
	issuer *auth.TokenIssuer,
	imageDir string,
) *gin.Engine {
	r := gin.Default()
	ac := NewAuthController(userUC)
	cc := NewCategoryController(categoryUC)
	pc := NewBlogPostController(postUC)
	ic := NewImageController(imageUC)

	writer := middleware.JWTAuth(issuer, WriterRole)

	api := r.Group("/api")

	api.POST("/auth/register", ac.Register)
	api.POST("/auth/login", ac.Login)

	api.GET("/categories", cc.GetAllCategories)
	api.GET("/categories/:id", cc.GetCategoryByID)
	api.POST("/categories", writer, cc.CreateCategory)
	api.PUT("/categories/:id", writer, cc.UpdateCategory)
	api.DELETE("/categories/:id", writer, cc.DeleteCategory)

	api.GET("/blogposts", pc.GetAllBlogPosts)
	api.GET("/blogposts/recent", pc.GetRecentBlogPosts)
	api.GET("/blogposts/handle/:urlHandle", pc.GetBlogPostByURLHandle)
	api.GET("/blogposts/:id", pc.GetBlogPostByID)
	api.POST("/blogposts", writer, pc.CreateBlogPost)
	api.PUT("/blogposts/:id", writer, pc.UpdateBlogPost)
	api.DELETE("/blogposts/:id", writer, pc.DeleteBlogPost)

	api.GET("/images", ic.GetAllImages)
	api.POST("/images", writer, ic.UploadImage)

	// uploaded images are served straight from disk
	r.Static("/images", imageDir)

	return r
}
