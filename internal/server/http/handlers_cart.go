package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/LucasSMartins/SmartKitchen/internal/errs"
	"github.com/LucasSMartins/SmartKitchen/internal/model"
	"github.com/LucasSMartins/SmartKitchen/internal/repository"
)

// cartItemRequest differs from the pantry one in carrying a price.
type cartItemRequest struct {
	ItemName string           `json:"item_name" binding:"required,min=2,max=15"`
	Quantity int              `json:"quantity" binding:"gte=0"`
	Unit     model.Unit       `json:"unit" binding:"required,oneof=un L ml g kg"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
}

func (r cartItemRequest) input() repository.ItemInput {
	return repository.ItemInput{ItemName: r.ItemName, Quantity: r.Quantity, Unit: r.Unit, Price: r.Price}
}

// cartCategory resolves the category_value query parameter, a 3-digit code
// 101..115 in taxonomy order, to the category name the repository filters
// on.
func cartCategory(c *gin.Context) (string, bool) {
	value, err := strconv.Atoi(c.Query("category_value"))
	if err != nil {
		return "", false
	}
	name, ok := model.CategoryNameByValue(value)
	return name, ok
}

func (s *Server) getCart(c *gin.Context) {
	doc, err := s.cart.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Shopping cart found", doc)
}

func (s *Server) getCartCategory(c *gin.Context) {
	name, ok := cartCategory(c)
	if !ok {
		respondInvalid(c, "invalid category value")
		return
	}
	doc, err := s.cart.CategoryItems(c.Request.Context(), c.Param("userId"), name)
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Shopping cart items found", doc)
}

func (s *Server) addCartItem(c *gin.Context) {
	name, ok := cartCategory(c)
	if !ok {
		s.respondErr(c, errs.ErrCategoryNotFound)
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	res, err := s.cart.AddItem(c.Request.Context(), c.Param("userId"), name, req.input())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Item created successfully", res.Item)
}

func (s *Server) replaceCartItem(c *gin.Context) {
	name, ok := cartCategory(c)
	if !ok {
		s.respondErr(c, errs.ErrCategoryNotFound)
		return
	}
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid input")
		return
	}
	res, err := s.cart.ReplaceItem(c.Request.Context(), c.Param("userId"), name, c.Param("itemId"), req.input())
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Item updated successfully", res.Item)
}

func (s *Server) removeCartItem(c *gin.Context) {
	name, ok := cartCategory(c)
	if !ok {
		s.respondErr(c, errs.ErrCategoryNotFound)
		return
	}
	_, err := s.cart.RemoveItem(c.Request.Context(), c.Param("userId"), name, c.Param("itemId"))
	if err != nil {
		s.respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Item deleted successfully", nil)
}
