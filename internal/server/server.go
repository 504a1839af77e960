package server

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/herbpot/shoppingmol/internal/models"
)

type Repository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id uint) (models.Product, error)
	GetUserByID(ctx context.Context, id uint) (models.User, error)
	GetUserByNick(ctx context.Context, nick string) (models.User, error)
	NickTaken(ctx context.Context, nick string) (bool, error)
	CreateUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
	Ping(ctx context.Context) error
}

type Server struct {
	repo Repository
	log  *zerolog.Logger
}

func New(repo Repository, zlog *zerolog.Logger) *Server {
	return &Server{repo: repo, log: zlog}
}

// Router собирает gin-роутер: сессии, статика, шаблоны, маршруты.
func (s *Server) Router(store sessions.Store, templatesGlob, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(sessions.Sessions(sessionName, store))
	r.Static("/static", staticDir)

	r.SetFuncMap(template.FuncMap{
		"price": func(cents int) string { return fmt.Sprintf("%.2f", float64(cents)/100.0) },
		"imgs": func(csv string) []string {
			if csv == "" {
				return nil
			}
			return strings.Split(csv, ",")
		},
	})
	r.LoadHTMLGlob(templatesGlob)

	r.GET("/health", s.Health)
	r.GET("/products", s.ProductsJSON)

	r.GET("/", s.Index)
	r.GET("/login", s.LoginForm)
	r.POST("/login", s.Login)
	r.GET("/signup", s.SignupForm)
	r.POST("/signup", s.Signup)
	r.GET("/logout", s.Logout)

	r.GET("/product/:id", s.ProductDetail)
	r.GET("/user/:id", s.UserInfo)
	r.POST("/user/:id", s.UserUpdate)
	r.GET("/buket/:id", s.Buket)
	r.POST("/buket/:id", s.BuketAdd)

	return r
}
