package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ uc UserUseCase }

func NewAuthController(uc UserUseCase) *AuthController { return &AuthController{uc: uc} }

func (ctl *AuthController) Register(c *gin.Context) {
	var req struct {
		Email    string   `json:"email" binding:"required,email"`
		Password string   `json:"password" binding:"required,min=6"`
		Roles    []string `json:"roles"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if len(req.Roles) == 0 {
		req.Roles = []string{"Reader"}
	}
	u, err := ctl.uc.RegisterUser(c.Request.Context(), req.Email, req.Password, req.Roles)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already taken"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, res)
}
