package controllers

import (
	"errors"
	"net/http"
	"strings"

	"agenda-salao-backend/models"
	"agenda-salao-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB *gorm.DB
}

// Login issues the admin credential. Unknown email and wrong password are
// reported distinctly (404 vs 401). The token is valid for a fixed window
// and cannot be revoked before expiry; there is no server-side session.
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var admin models.AdminUser
	result := ctl.DB.Where("email = ?", email).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "User not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, admin.PasswordHash) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"auth": false, "error": "Invalid password"})
		return
	}

	token, err := utils.GenerateToken(admin.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"auth": true, "token": token})
}
