package db

import "time"

// ReviewSnapshot 记录每次同步到的 Google 评分，用于外部接口不可用时兜底。
type ReviewSnapshot struct {
	ID           uint    `gorm:"primaryKey"`
	BusinessName string  `gorm:"size:120"`
	Rating       float64 `gorm:"not null"`
	ReviewCount  int     `gorm:"not null"`
	CMSUpdated   bool
	FetchedAt    time.Time `gorm:"index"`
	CreatedAt    time.Time
}

// TableName 指定自定义表名。
func (ReviewSnapshot) TableName() string {
	return "review_snapshots"
}
