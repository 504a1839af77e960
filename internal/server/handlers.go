package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/herbpot/shoppingmol/internal/models"
	"github.com/herbpot/shoppingmol/internal/repository"
)

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (s *Server) Health(c *gin.Context) {
	if err := s.repo.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) ProductsJSON(c *gin.Context) {
	items, err := s.repo.ListProducts(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) Index(c *gin.Context) {
	items, err := s.repo.ListProducts(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list products")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "main.tmpl", withUser(c, ViewData{
		"Groups": chunk(items, productRowSize),
	}))
}

func (s *Server) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", withUser(c, nil))
}

func (s *Server) Login(c *gin.Context) {
	nick := strings.TrimSpace(c.PostForm("idid"))
	pw := c.PostForm("pwpw")
	if nick == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", withUser(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	u, err := s.repo.GetUserByNick(c.Request.Context(), nick)
	if errors.Is(err, repository.ErrNotFound) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withUser(c, ViewData{"Error": "User not found"}))
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("nick", nick).Msg("login lookup")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if !models.CheckPassword(u.PW, pw) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", withUser(c, ViewData{"Error": "Wrong password"}))
		return
	}

	if err := setSessionUser(c, u); err != nil {
		s.log.Error().Err(err).Msg("save session")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", withUser(c, nil))
}

func (s *Server) Signup(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	nick := strings.TrimSpace(c.PostForm("idid"))
	phone := strings.TrimSpace(c.PostForm("phoneNumber"))
	pw := c.PostForm("pwpw")
	if name == "" || nick == "" || pw == "" {
		c.HTML(http.StatusBadRequest, "signup.tmpl", withUser(c, ViewData{"Error": "Fill all fields"}))
		return
	}

	taken, err := s.repo.NickTaken(c.Request.Context(), nick)
	if err != nil {
		s.log.Error().Err(err).Msg("check nick")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if taken {
		c.HTML(http.StatusBadRequest, "signup.tmpl", withUser(c, ViewData{"Error": "Nick taken"}))
		return
	}

	hash, err := models.HashPassword(pw)
	if err != nil {
		s.log.Error().Err(err).Msg("hash password")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	u := models.User{Name: name, Nick: nick, PhoneNumber: phone, PW: hash}
	if err := s.repo.CreateUser(c.Request.Context(), &u); err != nil {
		s.log.Error().Err(err).Msg("create user")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if err := setSessionUser(c, u); err != nil {
		s.log.Error().Err(err).Msg("save session")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) ProductDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad product id")
		return
	}
	item, err := s.repo.GetProductByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Uint("id", id).Msg("get product")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "product.tmpl", withUser(c, ViewData{"Item": item}))
}

func (s *Server) UserInfo(c *gin.Context) {
	// guard до любого запроса к БД
	if _, _, ok := currentUser(c); !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad user id")
		return
	}
	u, err := s.repo.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Uint("id", id).Msg("get user")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "userinfo.tmpl", withUser(c, ViewData{"Data": u}))
}

func (s *Server) UserUpdate(c *gin.Context) {
	uid, _, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad user id")
		return
	}
	// редактировать можно только свою строку
	if id != uid {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	u, err := s.repo.GetUserByID(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.String(http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		s.log.Error().Err(err).Uint("id", id).Msg("get user")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		u.Name = name
	}
	if phone := strings.TrimSpace(c.PostForm("phoneNumber")); phone != "" {
		u.PhoneNumber = phone
	}
	if pw := c.PostForm("pwpw"); pw != "" {
		hash, err := models.HashPassword(pw)
		if err != nil {
			s.log.Error().Err(err).Msg("hash password")
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		u.PW = hash
	}

	if err := s.repo.UpdateUser(c.Request.Context(), &u); err != nil {
		s.log.Error().Err(err).Uint("id", id).Msg("update user")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/user/%d", id))
}

func (s *Server) Buket(c *gin.Context) {
	if _, _, ok := currentUser(c); !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	type Row struct {
		Product models.Product
		// место под количество, пока корзина append-only
	}
	var rows []Row
	total := 0
	for _, id := range getBuket(c) {
		p, err := s.repo.GetProductByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			continue // товар успели удалить — строку пропускаем
		}
		if err != nil {
			s.log.Error().Err(err).Uint("id", id).Msg("get product")
			c.String(http.StatusInternalServerError, "internal error")
			return
		}
		rows = append(rows, Row{Product: p})
		total += p.Price
	}
	c.HTML(http.StatusOK, "buket.tmpl", withUser(c, ViewData{"Rows": rows, "Total": total}))
}

func (s *Server) BuketAdd(c *gin.Context) {
	uid, _, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	id, err := parseID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "bad product id")
		return
	}
	// товар должен существовать
	if _, err := s.repo.GetProductByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "product not found")
			return
		}
		s.log.Error().Err(err).Uint("id", id).Msg("get product")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if err := saveBuket(c, append(getBuket(c), id)); err != nil {
		s.log.Error().Err(err).Msg("save session")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/buket/%d", uid))
}
