package controller

import (
	"log"
	"net/http"

	"sales/src/auth/application/request"
	"sales/src/auth/infrastructure/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthController maneja login y emisión de tokens
type AuthController struct {
	tokenService *token.JWTTokenService
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(tokenService *token.JWTTokenService) *AuthController {
	return &AuthController{
		tokenService: tokenService,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
	}

	log.Println("Rutas Auth disponibles:")
	log.Println("  POST   /api/v1/auth/login")
}

// Login valida credenciales y emite un token de acceso.
// Credenciales demo: la validación contra base de usuarios queda fuera
// de este servicio.
func (c *AuthController) Login(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != "admin" || req.Password != "admin" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := c.tokenService.GenerateToken(uuid.New(), req.Username, []string{"Admin"})
	if err != nil {
		log.Printf("Error generating token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": accessToken})
}
