package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func SignupHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	user, err := userService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			utils.Conflict(c, "username already exists")
			return
		}
		log.Error().Err(err).Msg("signup failed")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	utils.Created(c, dto.ToUserResponse(user))
}

func LoginHandler(c *gin.Context, userService *usecase.UserService, tokens *services.TokenService) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Invalid credentials")
			return
		}
		log.Error().Err(err).Msg("login failed")
		utils.InternalError(c, "Internal Server Error")
		return
	}

	token, err := tokens.Issue(model.Identity{UserID: user.UserID, Username: user.Username})
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.Success(c, gin.H{"token": token})
}
