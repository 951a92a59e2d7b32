package httpapi

import (
	"net/http"
	"strconv"
	"time"

	blogpostPort "codepulse/internal/ports/blogpost"

	"github.com/gin-gonic/gin"
)

type BlogPostController struct{ uc BlogPostUseCase }

func NewBlogPostController(uc BlogPostUseCase) *BlogPostController {
	return &BlogPostController{uc: uc}
}

// blogPostRequest is the full record; updates are wholesale, so every
// call must carry the complete state of the post.
type blogPostRequest struct {
	Title            string    `json:"title" binding:"required"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content" binding:"required"`
	FeaturedImageURL string    `json:"featuredImageUrl"`
	URLHandle        string    `json:"urlHandle" binding:"required"`
	Author           string    `json:"author" binding:"required"`
	IsVisible        bool      `json:"isVisible"`
	PublishedDate    time.Time `json:"publishedDate"`
	Categories       []string  `json:"categories"`
}

func (r *blogPostRequest) toInput() blogpostPort.PostInput {
	return blogpostPort.PostInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Content:          r.Content,
		FeaturedImageURL: r.FeaturedImageURL,
		URLHandle:        r.URLHandle,
		Author:           r.Author,
		IsVisible:        r.IsVisible,
		PublishedDate:    r.PublishedDate,
	}
}

func (ctl *BlogPostController) CreateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.CreateBlogPost(c.Request.Context(), req.toInput(), req.Categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create blog post"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *BlogPostController) GetAllBlogPosts(c *gin.Context) {
	res, err := ctl.uc.GetAllBlogPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list blog posts"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *BlogPostController) GetRecentBlogPosts(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	res, err := ctl.uc.GetRecentBlogPosts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list recent blog posts"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *BlogPostController) GetBlogPostByID(c *gin.Context) {
	res, err := ctl.uc.GetBlogPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load blog post"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *BlogPostController) GetBlogPostByURLHandle(c *gin.Context) {
	res, err := ctl.uc.GetBlogPostByURLHandle(c.Request.Context(), c.Param("urlHandle"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load blog post"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *BlogPostController) UpdateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.UpdateBlogPost(c.Request.Context(), c.Param("id"), req.toInput(), req.Categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update blog post"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *BlogPostController) DeleteBlogPost(c *gin.Context) {
	res, err := ctl.uc.DeleteBlogPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete blog post"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}
