package db

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 线索类型
const (
	LeadTypeService  = "service"
	LeadTypeEstimate = "estimate"
	LeadTypeContact  = "contact"
)

// 线索处理状态
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// Lead 保存前台表单提交的服务请求。
// PublicID 对外暴露，避免泄露自增主键。
type Lead struct {
	ID                 uint           `gorm:"primaryKey" json:"-"`
	PublicID           string         `gorm:"size:36;uniqueIndex;not null" json:"id"`
	LeadType           string         `gorm:"size:20;index;not null" json:"leadType"`
	Status             string         `gorm:"size:20;index;not null;default:new" json:"status"`
	FirstName          string         `gorm:"size:80;not null" json:"firstName"`
	LastName           string         `gorm:"size:80" json:"lastName"`
	Email              string         `gorm:"size:255" json:"email"`
	Phone              string         `gorm:"size:40" json:"phone"`
	ServiceAddress     string         `gorm:"size:255" json:"serviceAddress"`
	NumSystems         string         `gorm:"size:20" json:"numSystems"`
	ProblemDescription string         `gorm:"type:text" json:"problemDescription"`
	SourcePage         string         `gorm:"size:255" json:"sourcePage"`
	UserAgent          string         `gorm:"size:255" json:"-"`
	ClientIP           string         `gorm:"size:64" json:"-"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 返回自定义表名。
func (Lead) TableName() string {
	return "leads"
}

// BeforeCreate 在缺省时补全对外 ID 与状态。
func (l *Lead) BeforeCreate(*gorm.DB) error {
	if strings.TrimSpace(l.PublicID) == "" {
		l.PublicID = uuid.NewString()
	}
	if strings.TrimSpace(l.Status) == "" {
		l.Status = LeadStatusNew
	}
	return nil
}

// FullName 拼接姓名，供通知邮件与后台列表使用。
func (l Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}
