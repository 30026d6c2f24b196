// Package httpserver is the gin routing layer over the repositories and
// the user service.
package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/LucasSMartins/SmartKitchen/internal/repository"
	"github.com/LucasSMartins/SmartKitchen/internal/service"
)

type Server struct {
	log       *logrus.Logger
	jwtSecret []byte

	userSvc *service.Users
	users   *repository.Users
	pantry  *repository.Inventory
	cart    *repository.Inventory
}

func New(log *logrus.Logger, jwtSecret []byte, userSvc *service.Users, users *repository.Users, pantry, cart *repository.Inventory) *Server {
	return &Server{
		log:       log,
		jwtSecret: jwtSecret,
		userSvc:   userSvc,
		users:     users,
		pantry:    pantry,
		cart:      cart,
	}
}

// Router builds the gin engine. Reads are public; every mutating route
// sits behind the bearer-token middleware.
func (s *Server) Router(corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/users", s.register)
	r.POST("/api/login", s.login)
	r.GET("/api/users", s.listUsers)
	r.GET("/api/users/:userId", s.getUser)

	r.GET("/api/pantry", s.listPantries)
	r.GET("/api/pantry/:userId", s.getPantry)
	r.GET("/api/shopping_cart/:userId", s.getCart)
	r.GET("/api/shopping_cart/:userId/category", s.getCartCategory)

	auth := r.Group("/api", s.authRequired())
	{
		auth.PUT("/users/:userId", s.renameUser)
		auth.DELETE("/users/:userId", s.deleteUser)

		auth.POST("/pantry/:userId", s.addPantryItem)
		auth.PUT("/pantry/:userId/:itemId", s.replacePantryItem)
		auth.DELETE("/pantry/:userId/:itemId", s.removePantryItem)

		auth.POST("/shopping_cart/:userId", s.addCartItem)
		auth.PUT("/shopping_cart/:userId/:itemId", s.replaceCartItem)
		auth.DELETE("/shopping_cart/:userId/:itemId", s.removeCartItem)
	}

	return r
}
