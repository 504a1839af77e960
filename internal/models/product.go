package models

// Product — таблица products
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Price       int    `gorm:"not null"` // минорные единицы валюты
	TitleImg    string // относительный путь, напр. "/static/img/abc.jpg"
	MainImgs    string // список путей через запятую
	SubImgs     string // список путей через запятую
	Tag         string
}
