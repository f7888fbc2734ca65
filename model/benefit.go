package model

// Milestone 福利下的一档，满足条件后解锁
type Milestone struct {
	Icon            string `json:"icon"`
	Title           string `json:"title"`
	IsUnlocked      bool   `json:"isUnlocked"`
	UnlockCondition string `json:"unlockCondition,omitempty"` // 已解锁时为空
	Amount          string `json:"amount"`                    // 展示文本，如 "₹2 Lakh"、"20% off"
}

// Benefit 一类福利（保险、贷款、补贴）
type Benefit struct {
	Title      string      `json:"title"`
	Emoji      string      `json:"emoji"`
	Milestones []Milestone `json:"milestones"`
}

// Unlocked 已解锁的档数
func (b Benefit) Unlocked() int {
	n := 0
	for _, m := range b.Milestones {
		if m.IsUnlocked {
			n++
		}
	}
	return n
}

// ImportSource 可导入工作记录的外部平台
type ImportSource struct {
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	IsImported bool   `json:"isImported"`
}
