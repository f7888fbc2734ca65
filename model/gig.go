package model

import "strings"

// Category 零工类别，封闭枚举
// 越界的值（例如从存储里读出的旧数据）按 Other 展示
type Category int

const (
	CategoryOther Category = iota
	CategoryPlumbing
	CategoryElectrical
	CategoryPainting
	CategoryCarpentry
	CategoryMaintenance
	CategoryGardening
)

// AllCategories 按固定顺序列出全部类别
var AllCategories = []Category{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryPainting,
	CategoryCarpentry,
	CategoryMaintenance,
	CategoryGardening,
	CategoryOther,
}

func (c Category) String() string {
	switch c {
	case CategoryPlumbing:
		return "Plumbing"
	case CategoryElectrical:
		return "Electrical"
	case CategoryPainting:
		return "Painting"
	case CategoryCarpentry:
		return "Carpentry"
	case CategoryMaintenance:
		return "Maintenance"
	case CategoryGardening:
		return "Gardening"
	default:
		return "Other"
	}
}

// Emoji 类别图标
func (c Category) Emoji() string {
	switch c {
	case CategoryPlumbing:
		return "🚽"
	case CategoryElectrical:
		return "⚡"
	case CategoryPainting:
		return "🎨"
	case CategoryCarpentry:
		return "🔨"
	case CategoryMaintenance:
		return "🔧"
	case CategoryGardening:
		return "🌱"
	default:
		return "🛠️"
	}
}

// Color 类别标签配色
func (c Category) Color() string {
	switch c {
	case CategoryPlumbing:
		return "bg-blue-100 text-blue-800"
	case CategoryElectrical:
		return "bg-yellow-100 text-yellow-800"
	case CategoryPainting:
		return "bg-green-100 text-green-800"
	case CategoryCarpentry:
		return "bg-red-100 text-red-800"
	case CategoryMaintenance:
		return "bg-purple-100 text-purple-800"
	case CategoryGardening:
		return "bg-emerald-100 text-emerald-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// ParseCategory 未知类别显式归为 Other
func ParseCategory(s string) Category {
	for _, c := range AllCategories {
		if strings.EqualFold(c.String(), strings.TrimSpace(s)) {
			return c
		}
	}
	return CategoryOther
}

// Gig 零工任务
type Gig struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Pay         int      `json:"pay"`
	RoziCoins   int      `json:"roziCoins"`
	Duration    string   `json:"duration"`
	Location    string   `json:"location"`
	IsRecurring bool     `json:"isRecurring"`
}

// GigType 任务类型筛选
type GigType string

const (
	GigTypeAll       GigType = "all"
	GigTypeRecurring GigType = "recurring"
	GigTypeOneTime   GigType = "one-time"
)
