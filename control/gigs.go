package control

import "Rozi/model"

// GigFilter 零工筛选条件，Category 为 nil 表示全部类别
type GigFilter struct {
	Category *model.Category
	MinPay   int
	Type     model.GigType
}

// FilterGigs 按类别、最低报酬、是否周期性筛选，保持原顺序
func FilterGigs(gigs []model.Gig, f GigFilter) []model.Gig {
	out := make([]model.Gig, 0, len(gigs))
	for _, g := range gigs {
		if f.Category != nil && g.Category != *f.Category {
			continue
		}
		if g.Pay < f.MinPay {
			continue
		}
		switch f.Type {
		case model.GigTypeRecurring:
			if !g.IsRecurring {
				continue
			}
		case model.GigTypeOneTime:
			if g.IsRecurring {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}

// GigCategories 目录中出现过的类别，按首次出现顺序
func GigCategories(gigs []model.Gig) []model.Category {
	seen := make(map[model.Category]bool)
	var out []model.Category
	for _, g := range gigs {
		if !seen[g.Category] {
			seen[g.Category] = true
			out = append(out, g.Category)
		}
	}
	return out
}

// ParseGigType 空字符串视为 all
func ParseGigType(s string) (model.GigType, error) {
	switch model.GigType(s) {
	case "", model.GigTypeAll:
		return model.GigTypeAll, nil
	case model.GigTypeRecurring, model.GigTypeOneTime:
		return model.GigType(s), nil
	}
	return "", invalid("type", "must be all, recurring or one-time")
}
