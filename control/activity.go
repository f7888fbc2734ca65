package control

import (
	"math/rand"
	"sync"
	"time"

	"Rozi/model"
)

// ActivityGenerator 生成日历视图的每日接单数据。随机源由外部注入，固定种子结果可复现
type ActivityGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewActivityGenerator(src rand.Source) *ActivityGenerator {
	return &ActivityGenerator{rnd: rand.New(src)}
}

// Month 每天 0~3 单，收入 500~2499
func (g *ActivityGenerator) Month(year int, month time.Month) model.MonthActivity {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	m := model.MonthActivity{
		Year:  first.Year(),
		Month: first.Month(),
		Days:  make([]model.DailyActivity, 0, days),
	}
	for d := 0; d < days; d++ {
		day := model.DailyActivity{
			Date:     first.AddDate(0, 0, d).Format(time.DateOnly),
			Gigs:     g.rnd.Intn(4),
			Earnings: g.rnd.Intn(2000) + 500,
		}
		m.TotalGigs += day.Gigs
		m.TotalEarnings += day.Earnings
		m.Days = append(m.Days, day)
	}
	return m
}

// ActivityLevel 日历格子的颜色档位
func ActivityLevel(gigs int) int {
	switch {
	case gigs >= 3:
		return 3
	case gigs <= 0:
		return 0
	}
	return gigs
}

// DayOf 查某一天，没有数据时返回只带日期的零值
func DayOf(m model.MonthActivity, date time.Time) model.DailyActivity {
	key := date.Format(time.DateOnly)
	for _, d := range m.Days {
		if d.Date == key {
			return d
		}
	}
	return model.DailyActivity{Date: key}
}

// CanAdvance 只能翻到当前月为止
func CanAdvance(current, now time.Time) bool {
	cy, cm, _ := current.Date()
	ny, nm, _ := now.Date()
	return cy < ny || (cy == ny && cm < nm)
}
