package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	user, err := s.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "User created successfully", user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	user, err := s.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	token, err := s.signToken(user.ID.Hex())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Login successful", gin.H{"user": user, "token": token})
}
