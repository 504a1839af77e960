package server

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/herbpot/shoppingmol/internal/models"
)

const (
	sessionName = "sm_session"

	// MaxAge сессионной куки: простой таймаут 30 минут,
	// Save при активности сдвигает его.
	SessionMaxAge = 30 * 60

	userIDKey   = "user_id"
	userNickKey = "user_nick"
	buketKey    = "buket" // []uint — product id, append-only
)

func init() {
	gob.Register([]uint{})
}

type ViewData map[string]any

// currentUser возвращает id и ник пользователя из сессии.
// isLogin всегда выводится из присутствия user, не хранится отдельно.
func currentUser(c *gin.Context) (uint, string, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get(userIDKey).(uint)
	if !ok {
		return 0, "", false
	}
	nick, _ := sess.Get(userNickKey).(string)
	return id, nick, true
}

func setSessionUser(c *gin.Context, u models.User) error {
	sess := sessions.Default(c)
	sess.Set(userIDKey, u.ID)
	sess.Set(userNickKey, u.Nick)
	return sess.Save()
}

func getBuket(c *gin.Context) []uint {
	sess := sessions.Default(c)
	ids, ok := sess.Get(buketKey).([]uint)
	if !ok {
		return nil
	}
	return ids
}

func saveBuket(c *gin.Context, ids []uint) error {
	sess := sessions.Default(c)
	sess.Set(buketKey, ids)
	return sess.Save()
}

// withUser добавляет в контекст шаблона флаг логина, пользователя и размер
// корзины, и сохраняет сессию (сдвигает idle-таймаут).
func withUser(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	id, nick, ok := currentUser(c)
	data["IsLogin"] = ok
	if ok {
		data["UserID"] = id
		data["UserNick"] = nick
	}
	data["BuketCount"] = len(getBuket(c))
	_ = sessions.Default(c).Save()
	return data
}
