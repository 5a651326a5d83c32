package controllers

import (
	"time"

	"visa-console-backend/config"
	"visa-console-backend/db/models"
	"visa-console-backend/middleware"
	"visa-console-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const refreshTokenPrefix = "refresh_token:"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func accessTokenDuration() time.Duration {
	d, err := time.ParseDuration(config.GetEnvOrDefault("ACCESS_TOKEN_DURATION", "15m"))
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

func refreshTokenDuration() time.Duration {
	d, err := time.ParseDuration(config.GetEnvOrDefault("REFRESH_TOKEN_DURATION", "168h"))
	if err != nil {
		return 168 * time.Hour
	}
	return d
}

// LoginController verifies credentials and issues an access/refresh token
// pair. The refresh token is stored in redis so it can be revoked on logout.
func LoginController(appCtx *middleware.AppContext, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		user, err := userRepo.GetUserByEmail(req.Email)
		if err != nil || !repositories.CheckPasswordHash(req.Password, user.Password) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Account is deactivated",
			})
		}

		accessToken, err := appCtx.PasetoMaker.CreateToken(user.Email, string(user.Role), accessTokenDuration())
		if err != nil {
			config.Logger.Error("Failed to create access token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create session",
			})
		}

		refreshToken, err := appCtx.PasetoMaker.CreateToken(user.Email, string(user.Role), refreshTokenDuration())
		if err != nil {
			config.Logger.Error("Failed to create refresh token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create session",
			})
		}

		if err := appCtx.RedisClient.Set(appCtx.Ctx,
			refreshTokenPrefix+refreshToken,
			user.ID.String(),
			refreshTokenDuration()).Err(); err != nil {
			config.Logger.Error("Failed to store refresh token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create session",
			})
		}

		config.Logger.Info("User logged in", zap.String("email", user.Email))

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Login successful",
			"data": fiber.Map{
				"access_token":  accessToken,
				"refresh_token": refreshToken,
				"user":          user,
			},
		})
	}
}

// RefreshController exchanges a stored refresh token for a new access token
func RefreshController(appCtx *middleware.AppContext, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req refreshRequest
		if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Refresh token is required",
			})
		}

		payload, err := appCtx.PasetoMaker.VerifyToken(req.RefreshToken)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Session expired or invalid. Please log in again.",
			})
		}

		// The token must still be present in redis; logout removes it.
		if err := appCtx.RedisClient.Get(appCtx.Ctx, refreshTokenPrefix+req.RefreshToken).Err(); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Session has been revoked. Please log in again.",
			})
		}

		user, err := userRepo.GetUserByEmail(payload.Email)
		if err != nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Account is no longer active",
			})
		}

		accessToken, err := appCtx.PasetoMaker.CreateToken(user.Email, string(user.Role), accessTokenDuration())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to refresh session",
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Token refreshed successfully",
			"data": fiber.Map{
				"access_token": accessToken,
			},
		})
	}
}

// LogoutController revokes the refresh token
func LogoutController(appCtx *middleware.AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req refreshRequest
		if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Refresh token is required",
			})
		}

		if err := appCtx.RedisClient.Del(appCtx.Ctx, refreshTokenPrefix+req.RefreshToken).Err(); err != nil {
			config.Logger.Warn("Failed to delete refresh token", zap.Error(err))
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Logged out successfully",
		})
	}
}

// RegisterController creates a new console user. Admin only.
func RegisterController(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}

		if req.Email == "" || req.Password == "" || req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Name, email and password are required",
			})
		}
		if len(req.Password) < 8 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Password must be at least 8 characters",
			})
		}

		hashed, err := repositories.HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to create user",
			})
		}

		role := models.UserRole(req.Role)
		if role != models.RoleAdmin && role != models.RoleStaff {
			role = models.RoleStaff
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: hashed,
			Role:     role,
			IsActive: true,
		}

		created, err := userRepo.CreateUser(&user)
		if err != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Failed to create user",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User created successfully",
			"data":    created,
		})
	}
}

func GetAllUsersController(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userRepo.GetAllUsers()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to retrieve users",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Users retrieved successfully",
			"data":    users,
		})
	}
}

func DeleteUserController(userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid user ID",
			})
		}

		if err := userRepo.DeleteUser(id); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete user",
				"error":   err.Error(),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "User deleted successfully",
		})
	}
}
