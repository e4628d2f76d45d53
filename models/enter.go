package models

import (
	"blogcms/models/ctypes"
	"blogcms/utils"

	"gorm.io/gorm"
)

type PageInfo struct {
	Page     int `json:"page" form:"page" validate:"omitempty,gt=0"`
	PageSize int `json:"limit" form:"limit" validate:"omitempty,gt=0,lte=100"`
}

// Normalize 填充分页默认值
func (p *PageInfo) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
}

type MODEL struct {
	ID        int64         `gorm:"primaryKey;autoIncrement:false;comment:id" json:"id"`
	CreatedAt ctypes.MyTime `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:创建时间" json:"created_at"`
	UpdatedAt ctypes.MyTime `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP;comment:更新时间" json:"updated_at"`
}

// BeforeCreate 统一分配雪花ID
func (m *MODEL) BeforeCreate(tx *gorm.DB) error {
	if m.ID == 0 {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	return nil
}

type IDRequest struct {
	ID int64 `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}
