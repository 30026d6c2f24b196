package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
	"github.com/LucasSMartins/SmartKitchen/internal/model"
	"github.com/LucasSMartins/SmartKitchen/internal/repository"
)

type pantryItemRequest struct {
	ItemName string     `json:"item_name" binding:"required,min=2,max=15"`
	Quantity int        `json:"quantity" binding:"gte=0"`
	Unit     model.Unit `json:"unit" binding:"required,oneof=un L ml g kg"`
}

func (r pantryItemRequest) input() repository.ItemInput {
	return repository.ItemInput{ItemName: r.ItemName, Quantity: r.Quantity, Unit: r.Unit}
}

func (s *Server) listPantries(c *gin.Context) {
	pantries, err := s.pantry.All(c.Request.Context())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	if len(pantries) == 0 {
		s.respondErr(c, errs.ErrUserNotFound)
		return
	}
	respond(c, http.StatusOK, "Pantry found", pantries)
}

func (s *Server) getPantry(c *gin.Context) {
	doc, err := s.pantry.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Pantry found", doc)
}

func (s *Server) addPantryItem(c *gin.Context) {
	categoryName := c.Query("category_name")
	if !model.IsCategoryName(categoryName) {
		s.respondErr(c, errs.ErrCategoryNotFound)
		return
	}
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	res, err := s.pantry.AddItem(c.Request.Context(), c.Param("userId"), categoryName, req.input())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "The item was successfully added", res.Item)
}

func (s *Server) replacePantryItem(c *gin.Context) {
	categoryName := c.Query("category_name")
	if !model.IsCategoryName(categoryName) {
		s.respondErr(c, errs.ErrCategoryNotFound)
		return
	}
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	res, err := s.pantry.ReplaceItem(c.Request.Context(), c.Param("userId"), categoryName, c.Param("itemId"), req.input())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Item updated successfully", res.Item)
}

func (s *Server) removePantryItem(c *gin.Context) {
	categoryName := c.Query("category_name")
	if !model.IsCategoryName(categoryName) {
		s.respondErr(c, errs.ErrCategoryNotFound)
		return
	}
	_, err := s.pantry.RemoveItem(c.Request.Context(), c.Param("userId"), categoryName, c.Param("itemId"))
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Item deleted successfully", nil)
}
