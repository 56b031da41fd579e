package delivery

import (
	"net/http"

	authdto "parkhub-backend/internal/auth/dto"
	"parkhub-backend/internal/auth/usecase"
	"parkhub-backend/pkg/googleauth"
	"parkhub-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	google      *googleauth.Verifier
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, google *googleauth.Verifier) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		google:      google,
	}
}

// respond maps the service envelope onto HTTP: 200 on success, 400 otherwise.
func respond(c *gin.Context, res *response.Result) {
	if res.Success {
		c.JSON(http.StatusOK, res)
		return
	}
	c.JSON(http.StatusBadRequest, res)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.authUsecase.Register(&req))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.authUsecase.Login(&req))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req authdto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.authUsecase.Refresh(req.UserID, req.RefreshToken))
}

// GoogleAuth accepts either an authorization code (exchanged and verified
// server-side) or an already verified profile from the client SDK.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req authdto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	email, firstName, lastName := req.Email, req.FirstName, req.LastName
	if req.Code != "" {
		profile, err := h.google.ExchangeAndVerify(c.Request.Context(), req.Code)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Fail("Invalid ID token"))
			return
		}
		email, firstName, lastName = profile.Email, profile.FirstName, profile.LastName
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid ID token"))
		return
	}

	respond(c, h.authUsecase.AuthenticateGoogle(email, firstName, lastName))
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	token := extractBearer(c.GetHeader("Authorization"))
	if token == "" {
		c.JSON(http.StatusUnauthorized, response.Fail("authorization header required"))
		return
	}
	respond(c, h.authUsecase.GetUser(token))
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.authUsecase.ForgotPassword(req.Email))
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}
	respond(c, h.authUsecase.ResetPassword(&req))
}
