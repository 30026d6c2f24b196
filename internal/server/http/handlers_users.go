package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.List(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Users found", users)
}

func (s *Server) getUser(c *gin.Context) {
	user, err := s.users.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "User found", user)
}

type renameRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
}

func (s *Server) renameUser(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	if err := s.userSvc.Rename(c.Request.Context(), c.Param("userId"), req.Username); err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Username updated successfully", nil)
}

func (s *Server) deleteUser(c *gin.Context) {
	if err := s.userSvc.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "User deleted successfully", nil)
}
