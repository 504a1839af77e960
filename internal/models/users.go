package models

import "golang.org/x/crypto/bcrypt"

// User — таблица users
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Nick        string `gorm:"uniqueIndex;not null"` // ← никнейм (логин)
	PhoneNumber string
	PW          string `gorm:"not null"` // bcrypt-дайджест, никогда plaintext
}

// HashPassword превращает обычный пароль в безопасный хэш
func HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword проверяет пароль на совпадение с хэшем
func CheckPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
